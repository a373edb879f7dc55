package execshell

import (
	"errors"
	"strings"
)

const (
	positionalParametersConstant      = `"$@"`
	positionalSeparatorConstant       = "--"
	windowsTokenSeparatorConstant     = " "
	windowsQuoteConstant              = `"`
	windowsEscapedQuoteConstant       = `""`
	windowsQuoteTriggerSetConstant    = " \t\r\n\"&|"
	verbatimCommandLineFormatPrefix   = `"`
	verbatimCommandLineFormatSuffix   = `"`
	verbatimArgumentSeparatorConstant = " "
)

// ErrEmptyCommand indicates that no command tokens were provided.
var ErrEmptyCommand = errors.New("execshell: command tokens are empty")

// ShellInvocation is the concrete process specification for one repository.
type ShellInvocation struct {
	Program          string
	Arguments        []string
	WorkingDirectory string
	CommandTokens    []string
	// CommandLine, when non-empty, is handed to the operating system verbatim on Windows.
	CommandLine string
}

// BuildInvocation maps command tokens onto the resolved shell.
//
// A single token is passed to the shell as a complete command string. Several
// tokens become positional parameters on POSIX shells, so the shell sees each
// token exactly once and without re-parsing. Windows shells have no positional
// parameters, so tokens are joined with minimal quoting.
func BuildInvocation(resolution ShellResolution, commandTokens []string, workingDirectory string) (ShellInvocation, error) {
	if len(commandTokens) == 0 {
		return ShellInvocation{}, ErrEmptyCommand
	}

	arguments := append([]string{}, resolution.FixedArguments...)
	var commandString string
	switch {
	case len(commandTokens) == 1:
		commandString = commandTokens[0]
		arguments = append(arguments, commandString)
	case resolution.PosixLike():
		arguments = append(arguments, positionalParametersConstant, positionalSeparatorConstant)
		arguments = append(arguments, commandTokens...)
	default:
		commandString = JoinWindowsTokens(commandTokens)
		arguments = append(arguments, commandString)
	}

	invocation := ShellInvocation{
		Program:          resolution.Program,
		Arguments:        arguments,
		WorkingDirectory: workingDirectory,
		CommandTokens:    append([]string{}, commandTokens...),
	}

	if resolution.VerbatimCommandLine {
		invocation.CommandLine = buildVerbatimCommandLine(resolution, commandString)
	}

	return invocation, nil
}

// JoinWindowsTokens joins tokens into one command string for PowerShell or cmd.exe.
func JoinWindowsTokens(commandTokens []string) string {
	quotedTokens := make([]string, 0, len(commandTokens))
	for _, token := range commandTokens {
		quotedTokens = append(quotedTokens, quoteWindowsToken(token))
	}
	return strings.Join(quotedTokens, windowsTokenSeparatorConstant)
}

func quoteWindowsToken(token string) string {
	if len(token) > 0 && !strings.ContainsAny(token, windowsQuoteTriggerSetConstant) {
		return token
	}
	escapedToken := strings.ReplaceAll(token, windowsQuoteConstant, windowsEscapedQuoteConstant)
	return windowsQuoteConstant + escapedToken + windowsQuoteConstant
}

func buildVerbatimCommandLine(resolution ShellResolution, commandString string) string {
	segments := []string{quoteWindowsToken(resolution.Program)}
	segments = append(segments, resolution.FixedArguments...)
	segments = append(segments, verbatimCommandLineFormatPrefix+commandString+verbatimCommandLineFormatSuffix)
	return strings.Join(segments, verbatimArgumentSeparatorConstant)
}
