package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/lorequery/internal/core/domain"
)

var (
	searchTypes   []string
	searchLimit   int
	searchDetails bool
	searchFuzzy   float64
	searchSort    string
	searchJSON    bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search all D&D 5e content at once",
	Long: `Runs one query against every content type in parallel and prints the
ranked results grouped by type, with suggestions and related content.

Fuzzy matching tolerates typos: 0.0 is strict, 1.0 disables it.

Examples:
  lorequery search fireball
  lorequery search dragon -t monsters -t spells -n 10
  lorequery search "fireblal" --fuzzy 0.4 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringArrayVarP(&searchTypes, "type", "t", nil, "content type to search (repeatable, default all)")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", domain.DefaultLimit, "maximum results per content type")
	searchCmd.Flags().BoolVar(&searchDetails, "details", false, "show full descriptions")
	searchCmd.Flags().Float64Var(&searchFuzzy, "fuzzy", domain.DefaultFuzzyThreshold, "fuzzy match threshold (0.0-1.0)")
	searchCmd.Flags().StringVar(&searchSort, "sort", domain.DefaultSort.String(), "sort by relevance, name or type")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	req := domain.SearchRequest{
		Query:        args[0],
		ContentTypes: searchTypes,
		SortBy:       searchSort,
	}
	if cmd.Flags().Changed("limit") {
		req.Limit = &searchLimit
	}
	if cmd.Flags().Changed("details") {
		req.IncludeDetails = &searchDetails
	}
	if cmd.Flags().Changed("fuzzy") {
		req.FuzzyThreshold = &searchFuzzy
	}

	result, err := searchService.UnifiedSearch(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, result)
	}

	newPrinter(cmd.OutOrStdout()).unified(cmd.OutOrStdout(), result, searchService.ContentTypes())
	return nil
}

func outputSearchJSON(cmd *cobra.Command, result *domain.UnifiedSearchResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// printer renders results, styled only when writing to a terminal.
type printer struct {
	heading lipgloss.Style
	name    lipgloss.Style
	faint   lipgloss.Style
}

func newPrinter(w io.Writer) printer {
	if f, ok := w.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		plain := lipgloss.NewStyle()
		return printer{heading: plain, name: plain, faint: plain}
	}
	return printer{
		heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		name:    lipgloss.NewStyle().Bold(true),
		faint:   lipgloss.NewStyle().Faint(true),
	}
}

func (p printer) unified(w io.Writer, r *domain.UnifiedSearchResult, order []domain.ContentType) {
	fmt.Fprintf(w, "%d results for %q (%s)\n", r.TotalResults, r.Query, domain.FormatExecutionTime(r.ExecutionTime))

	for _, ct := range order {
		group, ok := r.Results[ct]
		if !ok || len(group.Items) == 0 {
			continue
		}
		more := ""
		if group.HasMore {
			more = ", more available"
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, p.heading.Render(fmt.Sprintf("%s (%d found%s)", ct, group.Count, more)))
		for i, item := range group.Items {
			fmt.Fprintf(w, "  [%d] %s %s\n", i+1, p.name.Render(item.Name), p.faint.Render(fmt.Sprintf("(%.1f)", item.RelevanceScore)))
			if text := itemText(item); text != "" {
				fmt.Fprintf(w, "      %s\n", text)
			}
		}
	}

	if len(r.Suggestions) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s %s\n", p.heading.Render("Did you mean:"), strings.Join(r.Suggestions, ", "))
	}

	if len(r.RelatedContent) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, p.heading.Render("Related:"))
		for _, rel := range r.RelatedContent {
			fmt.Fprintf(w, "  %s\n", rel.Relationship)
		}
	}
}

// itemText returns the preview, or the full description indented to the
// item column when details were requested.
func itemText(item domain.SearchResultItem) string {
	if item.Preview != "" {
		return item.Preview
	}
	return strings.ReplaceAll(strings.TrimSpace(item.Description), "\n", "\n      ")
}
