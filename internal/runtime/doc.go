// Package runtime provides the execution context for pstack commands.
//
// It encapsulates what a single invocation needs: the logger, the opened
// repository, the settings derived from its config, the revision resolver and
// the series of the current branch, if any.
package runtime
