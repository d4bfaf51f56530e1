package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cberrors "github.com/dbmrq/cookbook/internal/errors"
	"github.com/dbmrq/cookbook/internal/recipe"
	"github.com/dbmrq/cookbook/internal/tui"
)

// savedCmd represents the saved command group.
var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "Manage saved recipes",
	Long: `Manage the saved-recipes collection without opening the browser.

Examples:
  cookbook saved list         # Print saved recipes
  cookbook saved add 12       # Save recipe 12
  cookbook saved remove 12    # Remove recipe 12
  cookbook saved has 12       # Exit non-zero unless 12 is saved`,
}

var savedListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved recipes",
	Args:  cobra.NoArgs,
	RunE:  runSavedList,
}

var savedAddCmd = &cobra.Command{
	Use:   "add <id>",
	Short: "Save a recipe by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runSavedAdd,
}

var savedRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a saved recipe by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runSavedRemove,
}

var savedHasCmd = &cobra.Command{
	Use:   "has <id>",
	Short: "Report whether a recipe is saved",
	Args:  cobra.ExactArgs(1),
	RunE:  runSavedHas,
}

func init() {
	rootCmd.AddCommand(savedCmd)
	savedCmd.AddCommand(savedListCmd, savedAddCmd, savedRemoveCmd, savedHasCmd)
	savedListCmd.Flags().Bool("json", false, "Print JSON")
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, cberrors.InvalidInput("id", fmt.Sprintf("invalid recipe id %q", arg))
	}
	return id, nil
}

func runSavedList(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	ctx, cancel := signalContext(cmd)
	defer cancel()

	_, e, err := openEnv(ctx, cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	recipes := e.store.Recipes()
	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, recipes)
	}
	if len(recipes) == 0 {
		fmt.Fprintln(out, tui.MsgNoSaved)
		return nil
	}
	fmt.Fprintln(out, recipeTable(recipes, e.store, isTerminal(out)))
	return nil
}

func runSavedAdd(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
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

	all, err := e.client.List(ctx, recipe.SortNone)
	if err != nil {
		return err
	}
	r, ok := recipe.Find(all, id)
	if !ok {
		return cberrors.RecipeNotFound(id)
	}

	added, err := e.store.Add(ctx, r)
	if err != nil {
		return err
	}
	if !added {
		cmd.Printf("%s is already saved\n", r.Name)
		return nil
	}
	cmd.Printf("Saved %s\n", r.Name)
	return nil
}

func runSavedRemove(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
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

	r, ok := recipe.Find(e.store.Recipes(), id)
	if !ok {
		cmd.Printf("Recipe %d is not saved\n", id)
		return nil
	}
	if _, err := e.store.Remove(ctx, r); err != nil {
		return err
	}
	cmd.Printf("Removed %s\n", r.Name)
	return nil
}

func runSavedHas(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(cmd)
	defer cancel()

	_, e, err := openEnv(ctx, cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	if !e.store.ContainsID(id) {
		return cberrors.New(cberrors.ErrNotFound, fmt.Sprintf("recipe %d is not saved", id))
	}
	cmd.Printf("Recipe %d is saved\n", id)
	return nil
}
