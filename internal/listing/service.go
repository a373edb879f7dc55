package listing

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/temirov/gitopolis/internal/repos/shared"
	"github.com/temirov/gitopolis/internal/utils"
)

const (
	noRepositoriesMessageConstant         = "No repos"
	longRecordTemplateConstant            = "%s\t%s\t%s\n"
	shortRecordTemplateConstant           = "%s\n"
	listValueSeparatorConstant            = ","
	repositoryStoreMissingMessageConstant = "listing: repository store not configured"
	repositoryLoadErrorTemplateConstant   = "unable to load repositories: %w"
)

// ErrRepositoryStoreNotConfigured indicates that no repository store was supplied.
var ErrRepositoryStoreNotConfigured = errors.New(repositoryStoreMissingMessageConstant)

// Options configures a list run.
type Options struct {
	TagArguments []string
	Long         bool
}

// Selector narrows repository records.
type Selector interface {
	Select(records []shared.RepositoryRecord) []shared.RepositoryRecord
}

// Service prints repository records.
type Service struct {
	repositoryStore shared.RepositoryStore
	reporter        shared.Reporter
}

// NewService constructs a listing service. A nil writer prints to standard output.
func NewService(repositoryStore shared.RepositoryStore, outputWriter io.Writer) (*Service, error) {
	if repositoryStore == nil {
		return nil, ErrRepositoryStoreNotConfigured
	}
	return &Service{repositoryStore: repositoryStore, reporter: shared.NewWriterReporter(outputWriter)}, nil
}

// Run loads, filters and prints repositories sorted by path. An empty
// selection prints "No repos" and returns an exit code 2 error.
func (service *Service) Run(selector Selector, options Options) error {
	records, loadError := service.repositoryStore.LoadRepositories()
	if loadError != nil {
		return fmt.Errorf(repositoryLoadErrorTemplateConstant, loadError)
	}

	selectedRecords := selector.Select(records)
	if len(selectedRecords) == 0 {
		service.reporter.Println(noRepositoriesMessageConstant)
		return utils.NewExitCodeError(utils.ExitCodeNoRepositories, "")
	}

	sortedRecords := append([]shared.RepositoryRecord{}, selectedRecords...)
	sort.SliceStable(sortedRecords, func(leftIndex int, rightIndex int) bool {
		return sortedRecords[leftIndex].Path < sortedRecords[rightIndex].Path
	})

	for _, record := range sortedRecords {
		if !options.Long {
			service.reporter.Printf(shortRecordTemplateConstant, record.Path)
			continue
		}
		service.reporter.Printf(longRecordTemplateConstant, record.Path, strings.Join(record.Tags, listValueSeparatorConstant), strings.Join(remoteURLs(record), listValueSeparatorConstant))
	}
	return nil
}

func remoteURLs(record shared.RepositoryRecord) []string {
	remoteNames := record.RemoteNames()
	urls := make([]string, 0, len(remoteNames))
	for _, remoteName := range remoteNames {
		urls = append(urls, record.Remotes[remoteName].URL)
	}
	return urls
}
