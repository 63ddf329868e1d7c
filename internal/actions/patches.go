package actions

import (
	"pstack.dev/pstack/internal/patchrange"
	"pstack.dev/pstack/internal/runtime"
)

// PatchesOptions contains options for the patches command
type PatchesOptions struct {
	Ranges []string
	// Unapplied resolves the ranges against the unapplied patches instead of
	// the applied ones
	Unapplied bool
}

// PatchesAction prints the patches selected by a list of names and ranges
func PatchesAction(ctx *runtime.Context, opts PatchesOptions) error {
	s, err := ctx.RequireSeries()
	if err != nil {
		return err
	}

	universe := s.AppliedPatches()
	if opts.Unapplied {
		universe = s.UnappliedPatches()
	}

	names, err := patchrange.Resolve(opts.Ranges, universe)
	if err != nil {
		return err
	}
	for _, name := range names {
		ctx.Splog.Info(name)
	}
	return nil
}
