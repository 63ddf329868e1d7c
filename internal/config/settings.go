package config

import (
	"fmt"

	"github.com/go-git/go-billy/v5"
)

// Settings are the configuration values of a single invocation. They are
// computed once and passed down explicitly.
type Settings struct {
	// SlashedBranches selects the revision grammar that allows "/" in branch names
	SlashedBranches bool
	// Backend names the revision backend, BackendGoGit or BackendCommand
	Backend string
}

// LoadSettings reads the repository config in gitDir. probe is called only
// when the grammar is not pinned in the config.
func LoadSettings(gitDir billy.Filesystem, probe func() (bool, error)) (Settings, error) {
	grammar, err := Get(gitDir, KeyGrammar)
	if err != nil {
		return Settings{}, err
	}
	backend, err := Get(gitDir, KeyBackend)
	if err != nil {
		return Settings{}, err
	}

	settings := Settings{Backend: backend}
	switch grammar {
	case GrammarSlashed:
		settings.SlashedBranches = true
	case GrammarPlain:
		settings.SlashedBranches = false
	case GrammarAuto:
		slashed, err := probe()
		if err != nil {
			return Settings{}, fmt.Errorf("failed to probe branch names: %w", err)
		}
		settings.SlashedBranches = slashed
	default:
		return Settings{}, fmt.Errorf("invalid grammar %q in repo config", grammar)
	}

	switch backend {
	case BackendGoGit, BackendCommand:
	default:
		return Settings{}, fmt.Errorf("invalid backend %q in repo config", backend)
	}

	return settings, nil
}
