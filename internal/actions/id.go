package actions

import (
	"pstack.dev/pstack/internal/runtime"
)

// DefaultIDRevision is resolved when no revision is given: the top of the
// current patch.
const DefaultIDRevision = "//top"

// IDOptions contains options for the id command
type IDOptions struct {
	Revision string
}

// IDAction prints the object id a revision resolves to
func IDAction(ctx *runtime.Context, opts IDOptions) error {
	rev := opts.Revision
	if rev == "" {
		rev = DefaultIDRevision
	}

	sha, err := ctx.Resolver.Resolve(ctx.CurrentStack(), rev)
	if err != nil {
		return err
	}

	ctx.Splog.Debug("%s resolved to %s", rev, sha)
	ctx.Splog.Info(sha)
	return nil
}
