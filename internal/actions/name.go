package actions

import (
	"fmt"

	"pstack.dev/pstack/internal/runtime"
	"pstack.dev/pstack/internal/utils"
)

// NameOptions contains options for the name command
type NameOptions struct {
	Message string
}

// NameAction prints the patch name derived from a commit message
func NameAction(ctx *runtime.Context, opts NameOptions) error {
	name, ok := utils.DeriveName(opts.Message)
	if !ok {
		return fmt.Errorf("cannot derive a patch name from an empty message")
	}
	if name == "" {
		return fmt.Errorf("cannot derive a patch name: the first line of the message has no letters or digits")
	}
	ctx.Splog.Info(name)
	return nil
}
