package actions

import (
	"fmt"

	"gitlab.com/esr/fqme"

	"pstack.dev/pstack/internal/runtime"
	"pstack.dev/pstack/internal/utils"
)

// AddressOptions contains options for the address command
type AddressOptions struct {
	// Address is the string to parse; empty means the user's own identity
	Address string
	// WithDate parses a trailing date after the email
	WithDate bool
	// WhoAmI looks up the user's identity; defaults to fqme.WhoAmI
	WhoAmI func() (string, string, error)
}

// AddressAction splits an author string into its name, email and date
func AddressAction(ctx *runtime.Context, opts AddressOptions) error {
	address := opts.Address
	if address == "" {
		whoAmI := opts.WhoAmI
		if whoAmI == nil {
			whoAmI = fqme.WhoAmI
		}
		name, email, err := whoAmI()
		if err != nil {
			return fmt.Errorf("failed to determine user identity: %w", err)
		}
		address = fmt.Sprintf("%s <%s>", name, email)
		ctx.Splog.Debug("using identity %s", address)
	}

	if opts.WithDate {
		name, email, date, err := utils.ParseAddressWithDate(address)
		if err != nil {
			return err
		}
		ctx.Splog.Info("name: %s", name)
		ctx.Splog.Info("email: %s", email)
		ctx.Splog.Info("date: %s", date)
		return nil
	}

	name, email, err := utils.ParseAddress(address)
	if err != nil {
		return err
	}
	ctx.Splog.Info("name: %s", name)
	ctx.Splog.Info("email: %s", email)
	return nil
}
