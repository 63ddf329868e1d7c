package actions

import (
	"fmt"

	"pstack.dev/pstack/internal/config"
	"pstack.dev/pstack/internal/output"
	"pstack.dev/pstack/internal/runtime"
)

// ConfigListAction prints all configuration values
func ConfigListAction(ctx *runtime.Context) error {
	for _, key := range config.Keys() {
		value, err := config.Get(ctx.GitDir, key)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		ctx.Splog.Info("%s: %s", output.ColorApplied(key), value)
	}
	return nil
}

// ConfigGetAction prints a single configuration value
func ConfigGetAction(ctx *runtime.Context, key string) error {
	value, err := config.Get(ctx.GitDir, key)
	if err != nil {
		return err
	}
	ctx.Splog.Info(value)
	return nil
}

// ConfigSetAction stores a configuration value
func ConfigSetAction(ctx *runtime.Context, key, value string) error {
	if err := config.Set(ctx.GitDir, key, value); err != nil {
		return err
	}
	ctx.Splog.Debug("set %s to %s", key, value)
	return nil
}
