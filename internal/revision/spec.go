package revision

import (
	"fmt"
	"regexp"

	pserrors "pstack.dev/pstack/internal/errors"
)

// PatchID selects which object id of a patch a revision refers to
type PatchID string

const (
	// PatchTop is the current tip of the patch. The empty id means the same.
	PatchTop PatchID = "top"
	// PatchBottom is the commit the patch is applied on
	PatchBottom PatchID = "bottom"
	// PatchOldTop is the tip before the last refresh
	PatchOldTop PatchID = "top.old"
	// PatchOldBottom is the bottom before the last refresh
	PatchOldBottom PatchID = "bottom.old"
)

// Spec is a parsed, not yet resolved patch revision.
// Empty Patch or Branch means the part was not given. PatchID is nil when no
// patch id suffix was given, which is different from an empty suffix.
type Spec struct {
	Patch   string
	Branch  string
	PatchID *PatchID
}

// ID returns the patch id, or the empty id when none was given
func (s Spec) ID() PatchID {
	if s.PatchID == nil {
		return ""
	}
	return *s.PatchID
}

// String formats the spec back into the unambiguous "//" form
func (s Spec) String() string {
	out := s.Patch
	if s.Branch != "" {
		out += "@" + s.Branch
	}
	if s.PatchID != nil {
		out += "//" + string(*s.PatchID)
	}
	return out
}

// Grammar parses revision strings. Which of the two grammars is used depends
// on whether any branch name contains a slash, and is fixed for the lifetime
// of the Grammar.
type Grammar struct {
	slashedBranches bool
	idOnly          *regexp.Regexp
	full            *regexp.Regexp
	short           *regexp.Regexp
}

const patchPattern = `(?P<patch>[^@/]+)`

// NewGrammar compiles the revision grammar. slashedBranches must be true when
// some branch name contains a "/": branch names may then contain slashes and
// the patch id separator has to be "//".
func NewGrammar(slashedBranches bool) *Grammar {
	branchChars := `[^@/]`
	idMark := `(?:/|//)`
	if slashedBranches {
		branchChars = `[^@]`
		idMark = `//`
	}
	branchPattern := fmt.Sprintf(`@(?P<branch>%s+)`, branchChars)
	idPattern := fmt.Sprintf(`%s(?P<id>[a-z.]*)`, idMark)

	return &Grammar{
		slashedBranches: slashedBranches,
		idOnly:          regexp.MustCompile(`^` + idPattern + `$`),
		full:            regexp.MustCompile(fmt.Sprintf(`^%s(?:%s)?%s$`, patchPattern, branchPattern, idPattern)),
		short:           regexp.MustCompile(fmt.Sprintf(`^%s(?:%s)?$`, patchPattern, branchPattern)),
	}
}

// SlashedBranches reports which grammar variant is in use
func (g *Grammar) SlashedBranches() bool {
	return g.slashedBranches
}

// Parse splits text into its patch, branch and patch id parts.
// The forms are tried in order: "//id", "patch[@branch]//id", "patch[@branch]".
// A *errors.RevisionParseError is returned when none matches the whole string.
func (g *Grammar) Parse(text string) (Spec, error) {
	if m := g.idOnly.FindStringSubmatch(text); m != nil {
		return Spec{PatchID: idPtr(m[g.idOnly.SubexpIndex("id")])}, nil
	}

	if m := g.full.FindStringSubmatch(text); m != nil {
		return Spec{
			Patch:   m[g.full.SubexpIndex("patch")],
			Branch:  m[g.full.SubexpIndex("branch")],
			PatchID: idPtr(m[g.full.SubexpIndex("id")]),
		}, nil
	}

	if m := g.short.FindStringSubmatch(text); m != nil {
		return Spec{
			Patch:  m[g.short.SubexpIndex("patch")],
			Branch: m[g.short.SubexpIndex("branch")],
		}, nil
	}

	return Spec{}, pserrors.NewRevisionParseError(text)
}

func idPtr(s string) *PatchID {
	id := PatchID(s)
	return &id
}
