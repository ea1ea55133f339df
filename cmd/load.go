package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsarev/lernio/internal/curriculum"
	"github.com/tsarev/lernio/internal/store"
)

var loadCmd = &cobra.Command{
	Use:   "load <pack.yaml>",
	Short: "Load a curated lesson pack into the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pack, err := curriculum.ParseFile(args[0])
		if err != nil {
			return fmt.Errorf("parse lesson pack: %w", err)
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

		n, err := curriculum.Load(cmd.Context(), st.CatalogRepo(), pack)
		if err != nil {
			return fmt.Errorf("load lesson pack: %w", err)
		}
		fmt.Printf("Loaded %d lesson(s) from %s\n", n, args[0])
		return nil
	},
}
