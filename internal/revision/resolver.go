package revision

import (
	"errors"

	pserrors "pstack.dev/pstack/internal/errors"
	"pstack.dev/pstack/internal/utils"
)

// StackQuery is the read-only view of one branch's patch series
type StackQuery interface {
	// CurrentPatch returns the topmost applied patch, false if none is applied
	CurrentPatch() (string, bool)
	AppliedPatches() []string
	UnappliedPatches() []string

	PatchTop(name string) (string, error)
	PatchBottom(name string) (string, error)
	PatchOldTop(name string) (string, error)
	PatchOldBottom(name string) (string, error)

	// BaseObjectID returns the commit the bottom-most patch is built on
	BaseObjectID() (string, error)
}

// StackOpener opens the series of a named branch
type StackOpener interface {
	OpenStack(branch string) (StackQuery, error)
}

// VcsBackend resolves plain git revisions. Appending "^{commit}" to a
// revision asks for it to be dereferenced to a commit.
type VcsBackend interface {
	ResolveObject(spec string) (string, error)
}

// Resolver turns revision strings into object ids
type Resolver struct {
	grammar *Grammar
	stacks  StackOpener
	backend VcsBackend
}

// NewResolver creates a Resolver using the given grammar and collaborators
func NewResolver(grammar *Grammar, stacks StackOpener, backend VcsBackend) *Resolver {
	return &Resolver{
		grammar: grammar,
		stacks:  stacks,
		backend: backend,
	}
}

// Grammar returns the grammar used to parse revisions
func (r *Resolver) Grammar() *Grammar {
	return r.grammar
}

// Resolve returns the object id text refers to. current is the series of the
// checked out branch, nil when there is none; it is used when text names no
// branch. Strings that are not patch revisions, or name no known patch, are
// resolved as commits by the backend.
func (r *Resolver) Resolve(current StackQuery, text string) (string, error) {
	if text == "" {
		return "", pserrors.NewResolutionError("", nil)
	}

	spec, err := r.grammar.Parse(text)
	switch {
	case err == nil:
		id, ok, err := r.resolvePatch(current, text, spec)
		if err != nil {
			return "", err
		}
		if ok {
			return id, nil
		}
	case !errors.Is(err, pserrors.ErrRevisionParse):
		return "", err
	}

	return r.resolveCommit(text)
}

// resolvePatch returns false when spec does not address a patch of the selected series
func (r *Resolver) resolvePatch(current StackQuery, text string, spec Spec) (string, bool, error) {
	stack := current
	if spec.Branch != "" {
		opened, err := r.stacks.OpenStack(spec.Branch)
		if err != nil {
			return "", false, pserrors.NewResolutionError(text, err)
		}
		stack = opened
	}

	if stack == nil {
		if spec.Patch == "" {
			return "", false, pserrors.NewResolutionError(text, pserrors.ErrNotOnBranch)
		}
		return "", false, nil
	}

	patch := spec.Patch
	if patch == "" {
		name, ok := stack.CurrentPatch()
		if !ok {
			return "", false, pserrors.NewResolutionError(text, pserrors.ErrNoPatchApplied)
		}
		patch = name
	}

	if utils.ContainsString(stack.AppliedPatches(), patch) || utils.ContainsString(stack.UnappliedPatches(), patch) {
		var accessor func(string) (string, error)
		switch spec.ID() {
		case "", PatchTop:
			accessor = stack.PatchTop
		case PatchBottom:
			accessor = stack.PatchBottom
		case PatchOldTop:
			accessor = stack.PatchOldTop
		case PatchOldBottom:
			accessor = stack.PatchOldBottom
		}
		if accessor != nil {
			id, err := accessor(patch)
			if err != nil {
				return "", false, pserrors.NewResolutionError(text, err)
			}
			return id, true, nil
		}
	}

	// A patch called "base" shadows the series base.
	if patch == "base" && spec.PatchID == nil {
		id, err := stack.BaseObjectID()
		if err != nil {
			return "", false, pserrors.NewResolutionError(text, err)
		}
		return id, true, nil
	}

	return "", false, nil
}

func (r *Resolver) resolveCommit(text string) (string, error) {
	id, err := r.backend.ResolveObject(text + "^{commit}")
	if err != nil {
		var resErr *pserrors.ResolutionError
		if errors.As(err, &resErr) {
			return "", err
		}
		return "", pserrors.NewResolutionError(text, err)
	}
	return id, nil
}
