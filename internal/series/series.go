// Package series reads the patch series of a branch from the git directory.
//
// Layout, relative to the git directory:
//
//	patches/<branch>/applied          applied patch names, bottom first
//	patches/<branch>/unapplied        unapplied patch names, next to push first
//	patches/<branch>/patches/<name>/  top, bottom, top.old, bottom.old object ids
//	refs/bases/<branch>               object id the series is built on
//
// The package only reads; series mutation belongs to other commands.
package series

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	pserrors "pstack.dev/pstack/internal/errors"
	"pstack.dev/pstack/internal/revision"
)

// Series is the patch series of one branch
type Series struct {
	fs        billy.Filesystem
	branch    string
	applied   []string
	unapplied []string
}

// Open reads the series of branch from gitDir
func Open(gitDir billy.Filesystem, branch string) (*Series, error) {
	dir := seriesDir(branch)
	if _, err := gitDir.Stat(dir); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, pserrors.NewSeriesNotInitializedError(branch)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", dir, err)
	}

	applied, err := readNames(gitDir, path.Join(dir, "applied"))
	if err != nil {
		return nil, err
	}
	unapplied, err := readNames(gitDir, path.Join(dir, "unapplied"))
	if err != nil {
		return nil, err
	}

	return &Series{
		fs:        gitDir,
		branch:    branch,
		applied:   applied,
		unapplied: unapplied,
	}, nil
}

// Branch returns the branch the series belongs to
func (s *Series) Branch() string {
	return s.branch
}

// CurrentPatch returns the topmost applied patch
func (s *Series) CurrentPatch() (string, bool) {
	if len(s.applied) == 0 {
		return "", false
	}
	return s.applied[len(s.applied)-1], true
}

// AppliedPatches returns the applied patches, bottom first
func (s *Series) AppliedPatches() []string {
	return s.applied
}

// UnappliedPatches returns the unapplied patches in push order
func (s *Series) UnappliedPatches() []string {
	return s.unapplied
}

// PatchTop returns the current tip of a patch
func (s *Series) PatchTop(name string) (string, error) {
	return s.readPatchID(name, "top")
}

// PatchBottom returns the commit a patch is applied on
func (s *Series) PatchBottom(name string) (string, error) {
	return s.readPatchID(name, "bottom")
}

// PatchOldTop returns the tip of a patch before its last refresh
func (s *Series) PatchOldTop(name string) (string, error) {
	return s.readPatchID(name, "top.old")
}

// PatchOldBottom returns the bottom of a patch before its last refresh
func (s *Series) PatchOldBottom(name string) (string, error) {
	return s.readPatchID(name, "bottom.old")
}

// BaseObjectID returns the recorded base of the series
func (s *Series) BaseObjectID() (string, error) {
	return readID(s.fs, path.Join("refs", "bases", s.branch))
}

func (s *Series) readPatchID(name, facet string) (string, error) {
	id, err := readID(s.fs, path.Join(seriesDir(s.branch), "patches", name, facet))
	if err != nil {
		return "", fmt.Errorf("patch %s has no %s: %w", name, facet, err)
	}
	return id, nil
}

func seriesDir(branch string) string {
	return path.Join("patches", branch)
}

// readID reads a file holding a single object id
func readID(fs billy.Filesystem, name string) (string, error) {
	data, err := util.ReadFile(fs, name)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	id := strings.TrimSpace(string(data))
	if id == "" {
		return "", fmt.Errorf("%s is empty", name)
	}
	return id, nil
}

// readNames reads one patch name per line; a missing file is an empty list
func readNames(fs billy.Filesystem, name string) ([]string, error) {
	data, err := util.ReadFile(fs, name)
	if errors.Is(err, os.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	names := []string{}
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			names = append(names, line)
		}
	}
	return names, nil
}

// Opener opens series from one git directory
type Opener struct {
	GitDir billy.Filesystem
}

// OpenStack opens the series of branch
func (o Opener) OpenStack(branch string) (revision.StackQuery, error) {
	s, err := Open(o.GitDir, branch)
	if err != nil {
		return nil, err
	}
	return s, nil
}

var _ revision.StackQuery = (*Series)(nil)
