// Package actions provides the business logic behind pstack commands.
//
// Each action corresponds to a pstack command (id, series, patches, etc.) and
// works against a runtime.Context, which carries the resolver, the current
// series and the logger that all output goes through.
package actions
