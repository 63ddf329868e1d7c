package actions

import (
	"fmt"

	"pstack.dev/pstack/internal/output"
	"pstack.dev/pstack/internal/runtime"
)

// Series listing markers
const (
	appliedMarker   = "+"
	currentMarker   = ">"
	unappliedMarker = "-"
)

// SeriesAction lists the patches of the current branch. Applied patches are
// marked "+", the current one ">" and unapplied ones "-".
func SeriesAction(ctx *runtime.Context) error {
	s, err := ctx.RequireSeries()
	if err != nil {
		return err
	}

	ctx.Splog.Debug("series of %s: %d applied, %d unapplied", s.Branch(), len(s.AppliedPatches()), len(s.UnappliedPatches()))

	current, hasCurrent := s.CurrentPatch()
	for _, name := range s.AppliedPatches() {
		if hasCurrent && name == current {
			ctx.Splog.Info(output.ColorCurrent(fmt.Sprintf("%s %s", currentMarker, name)))
			continue
		}
		ctx.Splog.Info(output.ColorApplied(fmt.Sprintf("%s %s", appliedMarker, name)))
	}
	for _, name := range s.UnappliedPatches() {
		ctx.Splog.Info(output.ColorUnapplied(fmt.Sprintf("%s %s", unappliedMarker, name)))
	}
	return nil
}
