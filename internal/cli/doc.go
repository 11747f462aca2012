// Package cli defines the Cobra command tree for the snipreg CLI. Each file
// in this package registers one top-level command (resolve, list, layers,
// etc.) with the root command. Commands build a registry through the
// registry package and only handle flag parsing and output formatting.
package cli
