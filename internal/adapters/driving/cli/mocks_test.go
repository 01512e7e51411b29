package cli

import (
	"bytes"
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/lorequery/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.UnifiedSearchService.
type mockSearchService struct {
	result   *domain.UnifiedSearchResult
	err      error
	stats    domain.CacheStats
	clearErr error

	lastRequest domain.SearchRequest
	cleared     bool
}

func (m *mockSearchService) UnifiedSearch(
	_ context.Context,
	req domain.SearchRequest,
) (*domain.UnifiedSearchResult, error) {
	m.lastRequest = req
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *mockSearchService) ClearCache(_ context.Context) error {
	m.cleared = m.clearErr == nil
	return m.clearErr
}

func (m *mockSearchService) CacheStats(_ context.Context) (domain.CacheStats, error) {
	return m.stats, nil
}

func (m *mockSearchService) ContentTypes() []domain.ContentType {
	return domain.AllContentTypes()
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings domain.Settings
	setErr   error
	set      map[string]string
}

func (m *mockSettingsService) Get() (domain.Settings, error) {
	return m.settings, nil
}

func (m *mockSettingsService) Set(key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	if m.set == nil {
		m.set = make(map[string]string)
	}
	m.set[key] = value
	return nil
}

func (m *mockSettingsService) Keys() []string {
	return []string{"cache.backend", "cache.ttl_minutes"}
}

// fireballResult is a small aggregated result shared by the search tests.
func fireballResult() *domain.UnifiedSearchResult {
	fireball := domain.SearchResultItem{
		ID:             "spells-0",
		Name:           "Fireball",
		ContentType:    domain.ContentSpells,
		Description:    "A bright streak flashes from your pointing finger.",
		Preview:        "A bright streak flashes...",
		RelevanceScore: 156,
	}
	wizard := domain.SearchResultItem{
		ID:             "classes-0",
		Name:           "Wizard",
		ContentType:    domain.ContentClasses,
		RelevanceScore: 40,
	}
	return &domain.UnifiedSearchResult{
		Query:         "fireball",
		TotalResults:  2,
		ExecutionTime: 12 * time.Millisecond,
		Results: map[domain.ContentType]domain.ContentTypeResults{
			domain.ContentSpells:   {Count: 3, Items: []domain.SearchResultItem{fireball}, HasMore: true},
			domain.ContentClasses:  {Count: 1, Items: []domain.SearchResultItem{wizard}},
			domain.ContentMonsters: domain.EmptyResults(),
		},
		Suggestions: []string{"fire", "ball"},
		RelatedContent: []domain.RelatedContentItem{{
			Type:         domain.RelationSpellClass,
			Primary:      fireball,
			Secondary:    wizard,
			Relationship: "Fireball can be cast by Wizards",
		}},
	}
}

// setupTestServices installs mock services and returns a cleanup func.
func setupTestServices() (*mockSearchService, *mockSettingsService, func()) {
	oldSearch, oldSettings := searchService, settingsService
	search := &mockSearchService{result: fireballResult()}
	settings := &mockSettingsService{settings: domain.DefaultSettings("/tmp/lorequery-data")}
	searchService = search
	settingsService = settings

	return search, settings, func() {
		searchService, settingsService = oldSearch, oldSettings
		resetFlags(rootCmd)
	}
}

// resetFlags restores every flag of cmd and its children to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and returns its output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
