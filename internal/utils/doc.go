// Package utils exposes reusable helpers consumed by the CLI entrypoint and
// commands.
//
// It houses the ConfigurationLoader and LoggerFactory abstractions that
// integrate Viper, environment variables, and zap logging, plus small
// writer and context helpers.
package utils
