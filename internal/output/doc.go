// Package output provides logging and terminal styling for pstack commands.
package output
