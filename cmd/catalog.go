package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/zhubert/aegis/internal/catalog"
	"github.com/zhubert/aegis/internal/config"
	"github.com/zhubert/aegis/internal/view"
)

var (
	catalogFilter string
	catalogSearch string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the file catalog",
	Long: `Prints the catalog as a table, applying the same search and filter
rules as the explorer. Recent is measured from the configured reference date.`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&catalogFilter, "filter", "all", "Filter: all, recent or starred")
	catalogCmd.Flags().StringVar(&catalogSearch, "search", "", "Case-insensitive name search")
	rootCmd.AddCommand(catalogCmd)
}

// parseFilter maps a flag value onto a view filter.
func parseFilter(s string) (view.Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return view.FilterAll, nil
	case "recent":
		return view.FilterRecent, nil
	case "starred":
		return view.FilterStarred, nil
	}
	return view.FilterAll, fmt.Errorf("unknown filter %q (want all, recent or starred)", s)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	filter, err := parseFilter(catalogFilter)
	if err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	cat, err := loadCatalog(catalogPath)
	if err != nil {
		return fmt.Errorf("error loading catalog: %w", err)
	}

	state := view.DefaultState()
	state.ActiveFilter = filter
	state.SearchQuery = catalogSearch

	entries := view.ComputeVisible(cat.ListAll(), state, cfg.Reference(time.Now()))
	return printCatalog(cmd.OutOrStdout(), entries)
}

// Plain cells so piped output stays free of escape codes.
var catalogCellStyle = lipgloss.NewStyle().PaddingRight(2)

func printCatalog(out io.Writer, entries []catalog.FileEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(out, "No files match.")
		return err
	}

	t := table.New().
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			return catalogCellStyle
		}).
		Headers("NAME", "TYPE", "SIZE", "MODIFIED", "STARRED")
	for _, e := range entries {
		typ := string(e.FileType)
		if e.IsFolder() {
			typ = e.Kind.String()
		}
		starred := ""
		if e.Starred {
			starred = "yes"
		}
		t.Row(e.Name, typ, catalog.FormatSize(e.SizeBytes), e.Modified.Format("2006-01-02"), starred)
	}
	_, err := fmt.Fprintln(out, t.String())
	return err
}
