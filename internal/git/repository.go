package git

import (
	"fmt"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage/filesystem"

	pserrors "pstack.dev/pstack/internal/errors"
)

// Repository wraps a go-git repository
type Repository struct {
	*git.Repository
	path string
}

// OpenRepository opens a git repository at the given path
func OpenRepository(path string) (*Repository, error) {
	// Resolve to absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	// Linked worktrees keep refs and objects in the common git directory
	repo, err := git.PlainOpenWithOptions(absPath, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	// Prefer the worktree root over a sub-directory we were started in
	root := absPath
	if worktree, err := repo.Worktree(); err == nil {
		root = worktree.Filesystem.Root()
	}

	return &Repository{
		Repository: repo,
		path:       root,
	}, nil
}

// GetRepoRoot returns the root directory of the repository's worktree
func (r *Repository) GetRepoRoot() string {
	return r.path
}

// GitDir returns the git directory as a filesystem. Refs, packed-refs and the
// patch series all live below it.
func (r *Repository) GitDir() (billy.Filesystem, error) {
	storage, ok := r.Storer.(*filesystem.Storage)
	if !ok {
		return nil, fmt.Errorf("repository at %s is not stored on disk", r.path)
	}
	return storage.Filesystem(), nil
}

// GetBranchNames returns all branch names
func (r *Repository) GetBranchNames() ([]string, error) {
	branches, err := r.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to get branches: %w", err)
	}

	var names []string
	err = branches.ForEach(func(ref *plumbing.Reference) error {
		if ref.Name().IsBranch() {
			names = append(names, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate branches: %w", err)
	}

	return names, nil
}

// GetCurrentBranch returns the current branch name. An unborn branch counts as
// current; a detached HEAD returns errors.ErrNotOnBranch.
func (r *Repository) GetCurrentBranch() (string, error) {
	head, err := r.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}

	if head.Type() != plumbing.SymbolicReference || !head.Target().IsBranch() {
		return "", pserrors.ErrNotOnBranch
	}

	return head.Target().Short(), nil
}
