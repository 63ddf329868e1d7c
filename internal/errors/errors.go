// Package errors provides sentinel errors and custom error types for the pstack application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNotOnBranch indicates that HEAD is not on a branch
	ErrNotOnBranch = errors.New("not on a branch")

	// ErrRevisionParse indicates that a string is not a patch revision specification
	ErrRevisionParse = errors.New("not a patch revision")

	// ErrResolution indicates that no object id could be produced for a revision
	ErrResolution = errors.New("cannot resolve revision")

	// ErrRange indicates a malformed or inconsistent list of patch ranges
	ErrRange = errors.New("invalid patch range")

	// ErrAddressFormat indicates a malformed author string
	ErrAddressFormat = errors.New("invalid address")

	// ErrNoPatchApplied indicates that the current patch was requested on an empty stack
	ErrNoPatchApplied = errors.New("no patches applied")

	// ErrSeriesNotInitialized indicates that a branch has no patch series
	ErrSeriesNotInitialized = errors.New("series not initialized")
)

// RevisionParseError is returned when a revision string matches none of the
// patch revision forms. Callers usually fall back to plain git resolution.
type RevisionParseError struct {
	Text string
}

func (e *RevisionParseError) Error() string {
	return fmt.Sprintf("%q is not a patch revision", e.Text)
}

// Is returns true if the target error is ErrRevisionParse
func (e *RevisionParseError) Is(target error) bool {
	return target == ErrRevisionParse
}

// NewRevisionParseError creates a new RevisionParseError
func NewRevisionParseError(text string) *RevisionParseError {
	return &RevisionParseError{Text: text}
}

// ResolutionError represents a revision that could not be turned into an object id
type ResolutionError struct {
	Revision string
	Err      error
}

func (e *ResolutionError) Error() string {
	if e.Revision == "" {
		if e.Err != nil {
			return fmt.Sprintf("nothing to resolve: %v", e.Err)
		}
		return "nothing to resolve"
	}
	if e.Err != nil {
		return fmt.Sprintf("unknown revision %s: %v", e.Revision, e.Err)
	}
	return fmt.Sprintf("unknown revision %s", e.Revision)
}

// Is returns true if the target error is ErrResolution
func (e *ResolutionError) Is(target error) bool {
	return target == ErrResolution
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// NewResolutionError creates a new ResolutionError
func NewResolutionError(revision string, err error) *ResolutionError {
	return &ResolutionError{Revision: revision, Err: err}
}

// RangeErrorKind tells which check a range token failed
type RangeErrorKind int

const (
	// RangeUnknownPatch indicates a name that is not in the patch list
	RangeUnknownPatch RangeErrorKind = iota
	// RangeMalformed indicates a token with more than one ".."
	RangeMalformed
	// RangeDuplicate indicates a patch selected more than once
	RangeDuplicate
)

// RangeError represents a patch name or range that cannot be resolved
type RangeError struct {
	Kind RangeErrorKind
	Name string
}

func (e *RangeError) Error() string {
	switch e.Kind {
	case RangeMalformed:
		return fmt.Sprintf("malformed patch name: %s", e.Name)
	case RangeDuplicate:
		return fmt.Sprintf("duplicate patch name: %s", e.Name)
	default:
		return fmt.Sprintf("unknown patch name: %s", e.Name)
	}
}

// Is returns true if the target error is ErrRange
func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}

// NewRangeError creates a new RangeError
func NewRangeError(kind RangeErrorKind, name string) *RangeError {
	return &RangeError{Kind: kind, Name: name}
}

// AddressFormatError represents an author string that matches no accepted form
type AddressFormatError struct {
	Address string
	Format  string
}

func (e *AddressFormatError) Error() string {
	return fmt.Sprintf("incorrect %q string: %s", e.Format, e.Address)
}

// Is returns true if the target error is ErrAddressFormat
func (e *AddressFormatError) Is(target error) bool {
	return target == ErrAddressFormat
}

// NewAddressFormatError creates a new AddressFormatError
func NewAddressFormatError(address, format string) *AddressFormatError {
	return &AddressFormatError{Address: address, Format: format}
}

// SeriesNotInitializedError represents a branch without a patch series
type SeriesNotInitializedError struct {
	BranchName string
}

func (e *SeriesNotInitializedError) Error() string {
	return fmt.Sprintf("branch %s is not initialized for patch management", e.BranchName)
}

// Is returns true if the target error is ErrSeriesNotInitialized
func (e *SeriesNotInitializedError) Is(target error) bool {
	return target == ErrSeriesNotInitialized
}

// NewSeriesNotInitializedError creates a new SeriesNotInitializedError
func NewSeriesNotInitializedError(branchName string) *SeriesNotInitializedError {
	return &SeriesNotInitializedError{BranchName: branchName}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
