package execshell

import "strings"

const (
	displayTokenSeparatorConstant   = " "
	displayQuoteTriggerSetConstant  = " \t\r\n|&;<>()$`\\\"'*?[]{}!#"
	displaySingleQuoteConstant      = "'"
	displayDoubleQuoteConstant      = `"`
	displayBackslashConstant        = `\`
	displayEscapedBackslashConstant = `\\`
	displayEscapedQuoteConstant     = `\"`
	displayEmptyTokenConstant       = "''"
	longFlagPrefixConstant          = "--"
	flagValueSeparatorConstant      = "="
)

// FormatForDisplay renders command tokens the way a user would type them in a
// POSIX shell. The result is only echoed and never executed.
func FormatForDisplay(commandTokens []string) string {
	renderedTokens := make([]string, 0, len(commandTokens))
	for _, token := range commandTokens {
		renderedTokens = append(renderedTokens, formatDisplayToken(token))
	}
	return strings.Join(renderedTokens, displayTokenSeparatorConstant)
}

func formatDisplayToken(token string) string {
	if strings.HasPrefix(token, longFlagPrefixConstant) {
		flagName, flagValue, hasValue := strings.Cut(token, flagValueSeparatorConstant)
		if hasValue && !displayNeedsQuoting(flagName) {
			return flagName + flagValueSeparatorConstant + quoteDisplayValue(flagValue)
		}
	}
	return quoteDisplayValue(token)
}

func quoteDisplayValue(value string) string {
	if len(value) == 0 {
		return displayEmptyTokenConstant
	}
	if !displayNeedsQuoting(value) {
		return value
	}
	if !strings.Contains(value, displaySingleQuoteConstant) {
		return displaySingleQuoteConstant + value + displaySingleQuoteConstant
	}
	escapedValue := strings.ReplaceAll(value, displayBackslashConstant, displayEscapedBackslashConstant)
	escapedValue = strings.ReplaceAll(escapedValue, displayDoubleQuoteConstant, displayEscapedQuoteConstant)
	return displayDoubleQuoteConstant + escapedValue + displayDoubleQuoteConstant
}

func displayNeedsQuoting(value string) bool {
	return strings.ContainsAny(value, displayQuoteTriggerSetConstant)
}
