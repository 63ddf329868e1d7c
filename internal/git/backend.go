package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	pserrors "pstack.dev/pstack/internal/errors"
)

// commitSuffix asks for a revision to be dereferenced to a commit
const commitSuffix = "^{commit}"

// GoGitBackend resolves revisions in-process with go-git
type GoGitBackend struct {
	repo *Repository
}

// NewGoGitBackend creates a backend reading from repo
func NewGoGitBackend(repo *Repository) *GoGitBackend {
	return &GoGitBackend{repo: repo}
}

// ResolveObject returns the commit id spec refers to. A trailing "^{commit}"
// is accepted; the result is always peeled to a commit.
func (b *GoGitBackend) ResolveObject(spec string) (string, error) {
	rev := strings.TrimSuffix(spec, commitSuffix)

	hash, err := b.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return "", pserrors.NewResolutionError(rev, err)
	}

	commit, err := peelToCommit(b.repo, *hash)
	if err != nil {
		return "", pserrors.NewResolutionError(rev, err)
	}
	return commit.Hash.String(), nil
}

// peelToCommit follows annotated tags until it reaches a commit
func peelToCommit(repo *Repository, hash plumbing.Hash) (*object.Commit, error) {
	obj, err := repo.Object(plumbing.AnyObject, hash)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", hash, err)
	}

	for {
		switch o := obj.(type) {
		case *object.Commit:
			return o, nil
		case *object.Tag:
			obj, err = o.Object()
			if err != nil {
				return nil, fmt.Errorf("failed to read target of tag %s: %w", o.Name, err)
			}
		default:
			return nil, fmt.Errorf("object %s is a %s, not a commit", hash, obj.Type())
		}
	}
}

// CommandBackend resolves revisions with git rev-parse, which understands the
// full revision syntax.
type CommandBackend struct {
	runner *CommandRunner
}

// NewCommandBackend creates a backend running git through runner
func NewCommandBackend(runner *CommandRunner) *CommandBackend {
	return &CommandBackend{runner: runner}
}

// ResolveObject returns the object id spec refers to
func (b *CommandBackend) ResolveObject(spec string) (string, error) {
	rev := strings.TrimSuffix(spec, commitSuffix)
	if strings.HasPrefix(spec, "-") {
		return "", pserrors.NewResolutionError(rev, fmt.Errorf("revision cannot start with '-'"))
	}

	sha, err := b.runner.Run(context.Background(), "rev-parse", "--verify", "-q", spec)
	if err != nil {
		return "", pserrors.NewResolutionError(rev, err)
	}
	return sha, nil
}
