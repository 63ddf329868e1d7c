package git

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/cache"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

const branchRefsDir = "refs/heads"

// ProbeSlashedBranches reports whether any branch name contains a "/".
// gitDir is the git directory. Loose refs of such branches live in a
// sub-directory of refs/heads; packed ones are only seen through the
// reference storage.
func ProbeSlashedBranches(gitDir billy.Filesystem) (bool, error) {
	entries, err := gitDir.ReadDir(branchRefsDir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("failed to list %s: %w", branchRefsDir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			return true, nil
		}
	}

	return storedBranchesHaveSlash(gitDir)
}

// storedBranchesHaveSlash walks loose and packed refs alike
func storedBranchesHaveSlash(gitDir billy.Filesystem) (bool, error) {
	refs, err := filesystem.NewStorage(gitDir, cache.NewObjectLRUDefault()).IterReferences()
	if err != nil {
		return false, fmt.Errorf("failed to read references: %w", err)
	}
	defer refs.Close()

	found := false
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		if ref.Name().IsBranch() && strings.Contains(ref.Name().Short(), "/") {
			found = true
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to read references: %w", err)
	}
	return found, nil
}
