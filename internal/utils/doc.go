// Package utils exposes reusable helpers consumed by multiple commands.
//
// It houses the viper-backed ConfigurationLoader, the zap LoggerFactory, the
// FlushingWriter used for streamed child output, and ExitCodeError, which
// carries a process exit code from a command back to main.
package utils
