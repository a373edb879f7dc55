package flags

import (
	"fmt"
	"strings"
)

const (
	choiceListOpeningConstant            = "<"
	choiceListClosingConstant            = ">"
	choiceListSeparatorConstant          = "|"
	choiceUsageTemplateConstant          = "`%s`"
	choiceUsageDescribedTemplateConstant = "`%s` %s"
)

// Choices is the closed set of values an enumerated string flag accepts.
type Choices struct {
	defaultChoice string
	options       []string
}

// NewChoices normalizes options to lower case and drops blanks and repeats while keeping order.
func NewChoices(defaultChoice string, options ...string) Choices {
	normalizedOptions := make([]string, 0, len(options))
	seenOptions := make(map[string]struct{}, len(options))
	for _, option := range options {
		normalizedOption := normalizeChoice(option)
		if len(normalizedOption) == 0 {
			continue
		}
		if _, seen := seenOptions[normalizedOption]; seen {
			continue
		}
		seenOptions[normalizedOption] = struct{}{}
		normalizedOptions = append(normalizedOptions, normalizedOption)
	}
	return Choices{defaultChoice: normalizeChoice(defaultChoice), options: normalizedOptions}
}

// Options returns the accepted values in declaration order.
func (choices Choices) Options() []string {
	return append([]string(nil), choices.options...)
}

// Usage renders the choices as `<a|B|c>` with the default upper-cased, followed by description.
func (choices Choices) Usage(description string) string {
	renderedOptions := make([]string, len(choices.options))
	for optionIndex, option := range choices.options {
		renderedOptions[optionIndex] = option
		if option == choices.defaultChoice {
			renderedOptions[optionIndex] = strings.ToUpper(option)
		}
	}
	placeholder := choiceListOpeningConstant + strings.Join(renderedOptions, choiceListSeparatorConstant) + choiceListClosingConstant

	trimmedDescription := strings.TrimSpace(description)
	if len(trimmedDescription) == 0 {
		return fmt.Sprintf(choiceUsageTemplateConstant, placeholder)
	}
	return fmt.Sprintf(choiceUsageDescribedTemplateConstant, placeholder, trimmedDescription)
}

func normalizeChoice(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
