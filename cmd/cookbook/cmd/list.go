package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/dbmrq/cookbook/internal/recipe"
	"github.com/dbmrq/cookbook/internal/saved"
	"github.com/dbmrq/cookbook/internal/tui"
	"github.com/dbmrq/cookbook/internal/tui/styles"
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Fetch and print recipes",
	Long: `Fetch recipes from the API and print them.

The search is a case-insensitive substring match on the recipe name.

Examples:
  cookbook list                    # Print every recipe
  cookbook list --search choc      # Only names containing "choc"
  cookbook list --order desc       # Sorted Z-A by the API
  cookbook list --json             # Print JSON`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	addListFlags(listCmd)
}

func addListFlags(c *cobra.Command) {
	c.Flags().StringP("search", "s", "", "Only show recipes whose name contains this text")
	c.Flags().StringP("order", "o", "", "Sort by name: asc or desc")
	c.Flags().Bool("json", false, "Print JSON")
}

// runList fetches, filters and prints the recipe list.
func runList(cmd *cobra.Command, args []string) error {
	search, _ := cmd.Flags().GetString("search")
	orderFlag, _ := cmd.Flags().GetString("order")
	asJSON, _ := cmd.Flags().GetBool("json")

	order, err := recipe.ParseSortOrder(orderFlag)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(cmd)
	defer cancel()

	ctx, e, err := openEnv(ctx, cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	all, err := e.client.List(ctx, order)
	if err != nil {
		return err
	}
	visible := recipe.Filter(all, search)
	e.logger.Debug("listed recipes", "total", len(all), "shown", len(visible), "search", search)

	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, visible)
	}

	if len(visible) == 0 {
		if search != "" {
			fmt.Fprintln(out, tui.NoResultsMessage(search))
		} else {
			fmt.Fprintln(out, tui.MsgNoRecipes)
		}
		return nil
	}
	fmt.Fprintln(out, recipeTable(visible, e.store, isTerminal(out)))
	return nil
}

// recipeTable renders recipes as a table. Colours are only used when color
// is true.
func recipeTable(recipes []recipe.Recipe, store *saved.Store, color bool) string {
	rows := make([][]string, 0, len(recipes))
	for _, r := range recipes {
		mark := ""
		if store != nil && store.Contains(r) {
			mark = "★"
		}
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			r.Name,
			r.Difficulty.String(),
			fmt.Sprintf("%.1f", r.Rating),
			mark,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "DIFFICULTY", "RATING", "SAVED").
		Rows(rows...)

	if color {
		t = t.BorderStyle(lipgloss.NewStyle().Foreground(styles.BorderColor)).
			StyleFunc(func(row, col int) lipgloss.Style {
				base := lipgloss.NewStyle().Padding(0, 1)
				switch {
				case row == table.HeaderRow:
					return base.Bold(true).Foreground(styles.Primary)
				case col == 1:
					return base.Foreground(styles.Foreground)
				case col == 3:
					return base.Foreground(styles.Warning)
				case col == 4:
					return base.Foreground(styles.Success)
				default:
					return base.Foreground(styles.Muted)
				}
			})
	} else {
		t = t.StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})
	}

	return t.String()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
