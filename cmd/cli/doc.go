// Package cli wires the modflat root command, configuration loading, and
// structured logging, and registers the flatten subcommand.
package cli
