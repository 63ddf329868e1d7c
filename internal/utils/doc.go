// Package utils provides shared utility functions.
//
// These utilities are used across multiple packages and include:
//   - Patch naming from commit messages
//   - Author address parsing
//   - Reading piped standard input
package utils
