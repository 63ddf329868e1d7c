// Package git provides low-level Git operations.
//
// It wraps go-git and git command execution and provides:
//   - Repository discovery and access to the git directory
//   - Branch listing and the slashed branch name probe
//   - Revision resolution backends (go-git and git rev-parse)
//
// This package should be the only place where direct git commands are executed.
package git
