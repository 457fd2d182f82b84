// Package config resolves gflow configuration.
//
// It handles:
//   - The optional .g_flowrc file of KEY=VALUE pairs layered over built-in defaults
//   - Branch categories and the labels used as branch name prefixes
//   - The optional VERSION marker, parsed as a semantic version
package config
