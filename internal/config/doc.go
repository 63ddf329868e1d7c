// Package config manages pstack repository configuration.
//
// It handles:
//   - The JSON repository config stored in the git directory
//   - Per-invocation settings derived from the config and the repository
package config
