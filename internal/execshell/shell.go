package execshell

import (
	"os"
	"runtime"
	"strings"
)

const (
	shellEnvironmentVariableConstant      = "SHELL"
	powerShellMarkerVariableConstant      = "PSModulePath"
	commandInterpreterVariableConstant    = "ComSpec"
	windowsOperatingSystemConstant        = "windows"
	posixCommandFlagConstant              = "-c"
	posixFallbackShellConstant            = "/bin/sh"
	powerShellProgramConstant             = "powershell"
	powerShellNoLogoFlagConstant          = "-NoLogo"
	powerShellCommandFlagConstant         = "-c"
	commandInterpreterProgramConstant     = "cmd.exe"
	commandInterpreterStripQuotesConstant = "/s"
	commandInterpreterCommandFlagConstant = "/c"
	shellKindPosixLabelConstant           = "posix"
	shellKindWindowsLabelConstant         = "windows"
	shellKindUnknownLabelConstant         = "unknown"
)

// ShellKind distinguishes shells that understand positional parameters.
type ShellKind int

const (
	// ShellKindPosix marks sh-compatible shells that expand "$@".
	ShellKindPosix ShellKind = iota
	// ShellKindWindows marks PowerShell and cmd.exe.
	ShellKindWindows
)

// String returns a short label for the shell kind.
func (kind ShellKind) String() string {
	switch kind {
	case ShellKindPosix:
		return shellKindPosixLabelConstant
	case ShellKindWindows:
		return shellKindWindowsLabelConstant
	default:
		return shellKindUnknownLabelConstant
	}
}

// ShellResolution is the shell chosen for the whole run.
type ShellResolution struct {
	Program        string
	FixedArguments []string
	Kind           ShellKind
	// VerbatimCommandLine is set for cmd.exe, whose /s /c parsing needs the
	// command line passed through unescaped.
	VerbatimCommandLine bool
}

// PosixLike reports whether the shell supports positional parameters.
func (resolution ShellResolution) PosixLike() bool {
	return resolution.Kind == ShellKindPosix
}

// EnvironmentLookup reads one environment variable.
type EnvironmentLookup func(key string) (string, bool)

// ShellResolver chooses the shell from an environment snapshot.
type ShellResolver struct {
	lookupEnvironment EnvironmentLookup
	operatingSystem   string
}

// NewShellResolver constructs a resolver over the provided environment and GOOS value.
func NewShellResolver(lookupEnvironment EnvironmentLookup, operatingSystem string) ShellResolver {
	if lookupEnvironment == nil {
		lookupEnvironment = os.LookupEnv
	}
	if len(operatingSystem) == 0 {
		operatingSystem = runtime.GOOS
	}
	return ShellResolver{lookupEnvironment: lookupEnvironment, operatingSystem: operatingSystem}
}

// NewEnvironmentMapLookup adapts a fixed map to EnvironmentLookup.
func NewEnvironmentMapLookup(environment map[string]string) EnvironmentLookup {
	return func(key string) (string, bool) {
		value, present := environment[key]
		return value, present
	}
}

// ResolveProcessShell resolves the shell from the live process environment.
func ResolveProcessShell() ShellResolution {
	return NewShellResolver(os.LookupEnv, runtime.GOOS).Resolve()
}

// Resolve applies, in order: $SHELL, PowerShell on Windows when a PowerShell
// session is detected, cmd.exe on Windows, and finally /bin/sh.
func (resolver ShellResolver) Resolve() ShellResolution {
	if preferredShell, present := resolver.lookupNonEmpty(shellEnvironmentVariableConstant); present {
		return ShellResolution{
			Program:        preferredShell,
			FixedArguments: []string{posixCommandFlagConstant},
			Kind:           ShellKindPosix,
		}
	}

	if resolver.operatingSystem == windowsOperatingSystemConstant {
		if _, powerShellSession := resolver.lookupNonEmpty(powerShellMarkerVariableConstant); powerShellSession {
			return ShellResolution{
				Program:        powerShellProgramConstant,
				FixedArguments: []string{powerShellNoLogoFlagConstant, powerShellCommandFlagConstant},
				Kind:           ShellKindWindows,
			}
		}

		commandInterpreter, present := resolver.lookupNonEmpty(commandInterpreterVariableConstant)
		if !present {
			commandInterpreter = commandInterpreterProgramConstant
		}
		return ShellResolution{
			Program:             commandInterpreter,
			FixedArguments:      []string{commandInterpreterStripQuotesConstant, commandInterpreterCommandFlagConstant},
			Kind:                ShellKindWindows,
			VerbatimCommandLine: true,
		}
	}

	return ShellResolution{
		Program:        posixFallbackShellConstant,
		FixedArguments: []string{posixCommandFlagConstant},
		Kind:           ShellKindPosix,
	}
}

func (resolver ShellResolver) lookupNonEmpty(key string) (string, bool) {
	value, present := resolver.lookupEnvironment(key)
	if !present {
		return "", false
	}
	trimmedValue := strings.TrimSpace(value)
	if len(trimmedValue) == 0 {
		return "", false
	}
	return trimmedValue, true
}
