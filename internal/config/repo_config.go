package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// configFileName is the config file, relative to the git directory
const configFileName = ".pstack_config"

// Grammar choices for the "grammar" key
const (
	GrammarAuto    = "auto"
	GrammarSlashed = "slashed"
	GrammarPlain   = "plain"
)

// Backend choices for the "backend" key
const (
	BackendGoGit   = "go-git"
	BackendCommand = "git"
)

// Config keys accepted by Get and Set
const (
	KeyGrammar = "grammar"
	KeyBackend = "backend"
)

var allowedValues = map[string][]string{
	KeyGrammar: {GrammarAuto, GrammarSlashed, GrammarPlain},
	KeyBackend: {BackendGoGit, BackendCommand},
}

// RepoConfig represents the repository configuration
type RepoConfig struct {
	Grammar *string `json:"grammar,omitempty"`
	Backend *string `json:"backend,omitempty"`
}

// GetRepoConfig reads the repository configuration from the git directory
func GetRepoConfig(gitDir billy.Filesystem) (*RepoConfig, error) {
	data, err := util.ReadFile(gitDir, configFileName)
	if errors.Is(err, os.ErrNotExist) {
		// Config doesn't exist - return default
		return &RepoConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read repo config: %w", err)
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}

	return &config, nil
}

func writeRepoConfig(gitDir billy.Filesystem, config *RepoConfig) error {
	configJSON, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return util.WriteFile(gitDir, configFileName, configJSON, 0600)
}

// Keys returns the config keys in display order
func Keys() []string {
	return []string{KeyGrammar, KeyBackend}
}

// Get returns the value of key, or its default if unset
func Get(gitDir billy.Filesystem, key string) (string, error) {
	config, err := GetRepoConfig(gitDir)
	if err != nil {
		return "", err
	}

	switch key {
	case KeyGrammar:
		return valueOr(config.Grammar, GrammarAuto), nil
	case KeyBackend:
		return valueOr(config.Backend, BackendGoGit), nil
	default:
		return "", fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(Keys(), ", "))
	}
}

// Set validates value and stores it under key
func Set(gitDir billy.Filesystem, key, value string) error {
	allowed, ok := allowedValues[key]
	if !ok {
		return fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(Keys(), ", "))
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid value %q for %s (valid values: %s)", value, key, strings.Join(allowed, ", "))
	}

	config, err := GetRepoConfig(gitDir)
	if err != nil {
		config = &RepoConfig{}
	}

	switch key {
	case KeyGrammar:
		config.Grammar = &value
	case KeyBackend:
		config.Backend = &value
	}

	return writeRepoConfig(gitDir, config)
}

func valueOr(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}
