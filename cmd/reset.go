package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsarev/lernio/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete a learner's progress, plans, and records",
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID, _ := cmd.Flags().GetString("learner")
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("refusing to delete data for learner %q without --yes", learnerID)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		if err := st.ProgressRepo().DeleteByLearner(ctx, learnerID); err != nil {
			return fmt.Errorf("delete lesson progress: %w", err)
		}
		if err := st.RecordRepo().DeleteByLearner(ctx, learnerID); err != nil {
			return fmt.Errorf("delete progress records: %w", err)
		}
		if err := st.PlanRepo().DeleteByLearner(ctx, learnerID); err != nil {
			return fmt.Errorf("delete learning plans: %w", err)
		}

		fmt.Printf("Deleted all data for learner %q\n", learnerID)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
