package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/signmaster/internal/enrich"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <sign name>",
	Short: "Look a sign up in the online encyclopedia",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd, os.Stderr)
		if err != nil {
			return err
		}
		defer e.Close()

		src, err := e.enrichClient()
		if err != nil {
			return err
		}
		if src == nil {
			return errors.New("online lookup is disabled (enrich.enabled=false)")
		}

		name := strings.Join(args, " ")
		page, err := src.Lookup(cmd.Context(), name)
		if errors.Is(err, enrich.ErrNotFound) {
			fmt.Fprintf(cmd.OutOrStdout(), "No article found for %q.\n", name)
			return nil
		}
		if err != nil {
			return fmt.Errorf("lookup %q: %w", name, err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, page.Title)
		fmt.Fprintln(out, strings.Repeat("=", len([]rune(page.Title))))
		fmt.Fprintln(out, page.Extract)
		fmt.Fprintln(out)
		fmt.Fprintln(out, page.URL)
		if page.Thumbnail != nil {
			fmt.Fprintln(out, "Image:", page.Thumbnail.Source)
		}
		return nil
	},
}
