package runtime

import (
	"errors"
	"fmt"

	"github.com/go-git/go-billy/v5"

	"pstack.dev/pstack/internal/config"
	pserrors "pstack.dev/pstack/internal/errors"
	"pstack.dev/pstack/internal/git"
	"pstack.dev/pstack/internal/output"
	"pstack.dev/pstack/internal/revision"
	"pstack.dev/pstack/internal/series"
)

// Context provides access to the repository and output for commands
type Context struct {
	Splog    *output.Splog
	RepoRoot string
	Repo     *git.Repository
	GitDir   billy.Filesystem
	Settings config.Settings
	Resolver *revision.Resolver

	// Branch is the checked out branch, empty when HEAD is detached
	Branch string
	// Series is the series of Branch, nil when there is none
	Series *series.Series
}

// NewContext creates a context that does not touch a repository, for commands
// that only transform their input.
func NewContext(splog *output.Splog) *Context {
	return &Context{Splog: splog}
}

// NewRepoContext opens the repository containing dir without reading its
// config, for commands that edit the config itself.
func NewRepoContext(dir string, splog *output.Splog) (*Context, error) {
	repo, err := git.OpenRepository(dir)
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}
	gitDir, err := repo.GitDir()
	if err != nil {
		return nil, err
	}

	return &Context{
		Splog:    splog,
		RepoRoot: repo.GetRepoRoot(),
		Repo:     repo,
		GitDir:   gitDir,
	}, nil
}

// GetContext opens the repository containing dir and prepares everything a
// revision-resolving command needs.
func GetContext(dir string, splog *output.Splog) (*Context, error) {
	ctx, err := NewRepoContext(dir, splog)
	if err != nil {
		return nil, err
	}
	repo, gitDir := ctx.Repo, ctx.GitDir

	settings, err := config.LoadSettings(gitDir, func() (bool, error) {
		return git.ProbeSlashedBranches(gitDir)
	})
	if err != nil {
		return nil, err
	}
	splog.Debug("slashed branches: %t, backend: %s", settings.SlashedBranches, settings.Backend)

	ctx.Settings = settings
	ctx.Resolver = revision.NewResolver(
		revision.NewGrammar(settings.SlashedBranches),
		series.Opener{GitDir: gitDir},
		newBackend(settings.Backend, repo),
	)

	branch, err := repo.GetCurrentBranch()
	switch {
	case errors.Is(err, pserrors.ErrNotOnBranch):
		splog.Debug("HEAD is detached")
		return ctx, nil
	case err != nil:
		return nil, err
	}
	ctx.Branch = branch

	s, err := series.Open(gitDir, branch)
	switch {
	case errors.Is(err, pserrors.ErrSeriesNotInitialized):
		splog.Debug("branch %s has no series", branch)
	case err != nil:
		return nil, err
	default:
		ctx.Series = s
	}

	return ctx, nil
}

func newBackend(name string, repo *git.Repository) revision.VcsBackend {
	if name == config.BackendCommand {
		return git.NewCommandBackend(git.NewCommandRunner(repo.GetRepoRoot()))
	}
	return git.NewGoGitBackend(repo)
}

// CurrentStack returns the series of the current branch as a stack query, or
// nil when there is none.
func (c *Context) CurrentStack() revision.StackQuery {
	if c.Series == nil {
		return nil
	}
	return c.Series
}

// RequireSeries returns the series of the current branch or an error
// explaining why there is none.
func (c *Context) RequireSeries() (*series.Series, error) {
	if c.Branch == "" {
		return nil, pserrors.ErrNotOnBranch
	}
	if c.Series == nil {
		return nil, pserrors.NewSeriesNotInitializedError(c.Branch)
	}
	return c.Series, nil
}
