package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/signmaster/internal/progress"
	"github.com/abhisek/signmaster/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	Long:  "Show known signs, mastery level and quiz history for every country, or only --domain.",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd, os.Stderr)
		if err != nil {
			return err
		}
		defer e.Close()

		domains := e.registry.Domains()
		if d, _ := cmd.Flags().GetString("domain"); d != "" {
			domains = []string{e.cfg.DefaultDomain}
		}

		ctx := cmd.Context()
		for _, d := range domains {
			cat, err := e.registry.Get(d)
			if err != nil {
				return err
			}
			attempts, err := e.store.AttemptRepo().Attempts(ctx, cat.Domain, store.QueryOpts{})
			if err != nil {
				return fmt.Errorf("load quiz history: %w", err)
			}
			writeStats(cmd.OutOrStdout(), cat.Name, e.progress.Stats(ctx, cat.Domain, cat.IDs(), attempts))
		}
		return nil
	},
}

func writeStats(w io.Writer, name string, st progress.Stats) {
	fmt.Fprintf(w, "%s (%s)\n", name, st.Domain)
	fmt.Fprintf(w, "  Known:    %d / %d (%.0f%%)\n", st.Known, st.Total, st.Percent)
	fmt.Fprintf(w, "  Level:    %s\n", st.Level)
	if st.ExamUnlocked {
		fmt.Fprintln(w, "  Exam:     unlocked")
	} else {
		fmt.Fprintf(w, "  Exam:     locked (%d more to go)\n", progress.ExamUnlockThreshold-st.Known)
	}
	if st.QuizzesTaken == 0 {
		fmt.Fprintln(w, "  Quizzes:  none yet")
	} else {
		fmt.Fprintf(w, "  Quizzes:  %d taken, %.0f%% average\n", st.QuizzesTaken, st.AverageScore*100)
	}
}
