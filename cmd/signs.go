package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/signmaster/internal/catalog"
)

var signsCmd = &cobra.Command{
	Use:   "signs",
	Short: "List the signs of a country",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd, os.Stderr)
		if err != nil {
			return err
		}
		defer e.Close()

		cat, err := e.registry.Get(e.cfg.DefaultDomain)
		if err != nil {
			return err
		}

		category := catalog.CategoryAll
		if c, _ := cmd.Flags().GetString("category"); c != "" {
			if category, err = catalog.ParseCategory(c); err != nil {
				return err
			}
		}
		query, _ := cmd.Flags().GetString("search")

		known := e.progress.Load(cmd.Context(), cat.Domain)
		signs := cat.Search(query, category)

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tLOCAL NAME\tCATEGORY\tKNOWN")
		for _, s := range signs {
			mark := ""
			if known.Has(s.ID) {
				mark = "✓"
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", s.ID, s.CanonicalName, s.LocalizedName, s.Category.DisplayName(), mark)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d signs\n", len(signs), cat.Len())
		return nil
	},
}

func init() {
	signsCmd.Flags().String("category", "", "Only list one category (warning, prohibition, mandatory, information, priority)")
	signsCmd.Flags().String("search", "", "Case-insensitive text to match in names and descriptions")
}
