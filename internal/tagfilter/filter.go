package tagfilter

import (
	"strings"

	"github.com/temirov/gitopolis/internal/repos/shared"
)

const (
	tagGroupSeparatorConstant = ","
)

// Filter is an OR of AND-groups of tags.
type Filter struct {
	tagGroups [][]string
}

// All returns a Filter that matches every repository.
func All() Filter {
	return Filter{}
}

// NewFromArguments builds a Filter from repeated tag arguments.
// Each argument forms one AND-group; whitespace around each tag is trimmed.
// An empty argument yields a group holding the empty tag, which matches nothing.
func NewFromArguments(tagArguments []string) Filter {
	if len(tagArguments) == 0 {
		return All()
	}

	tagGroups := make([][]string, 0, len(tagArguments))
	for _, tagArgument := range tagArguments {
		rawTags := strings.Split(tagArgument, tagGroupSeparatorConstant)
		tagGroup := make([]string, 0, len(rawTags))
		for _, rawTag := range rawTags {
			tagGroup = append(tagGroup, strings.TrimSpace(rawTag))
		}
		tagGroups = append(tagGroups, tagGroup)
	}

	return Filter{tagGroups: tagGroups}
}

// IsAll reports whether the filter matches every repository.
func (filter Filter) IsAll() bool {
	return len(filter.tagGroups) == 0
}

// Groups returns a copy of the AND-groups held by the filter.
func (filter Filter) Groups() [][]string {
	duplicatedGroups := make([][]string, 0, len(filter.tagGroups))
	for _, tagGroup := range filter.tagGroups {
		duplicatedGroups = append(duplicatedGroups, append([]string{}, tagGroup...))
	}
	return duplicatedGroups
}

// Matches reports whether at least one group is fully contained in repositoryTags.
func (filter Filter) Matches(repositoryTags []string) bool {
	if filter.IsAll() {
		return true
	}

	presentTags := make(map[string]struct{}, len(repositoryTags))
	for _, repositoryTag := range repositoryTags {
		presentTags[repositoryTag] = struct{}{}
	}

	for _, tagGroup := range filter.tagGroups {
		if groupSatisfied(tagGroup, presentTags) {
			return true
		}
	}
	return false
}

// Select returns the records matched by the filter, preserving their order.
func (filter Filter) Select(records []shared.RepositoryRecord) []shared.RepositoryRecord {
	selectedRecords := make([]shared.RepositoryRecord, 0, len(records))
	for _, record := range records {
		if filter.Matches(record.Tags) {
			selectedRecords = append(selectedRecords, record)
		}
	}
	return selectedRecords
}

func groupSatisfied(tagGroup []string, presentTags map[string]struct{}) bool {
	for _, requiredTag := range tagGroup {
		if _, present := presentTags[requiredTag]; !present {
			return false
		}
	}
	return true
}
