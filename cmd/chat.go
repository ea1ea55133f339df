package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsarev/lernio/internal/app"
	"github.com/tsarev/lernio/internal/engine"
	"github.com/tsarev/lernio/internal/llm"
	"github.com/tsarev/lernio/internal/store"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive lesson chat",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd)
	},
}

func init() {
	chatCmd.Flags().String("mode", "static", `Content mode: "static" (catalog with dynamic fallback) or "dynamic"`)
}

// runChat opens the store, builds the provider chain, and runs the chat
// loop until EOF or exit.
func runChat(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := buildProvider(cmd, st)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Generated courses will be unavailable; catalog lessons still work.")
		provider = llm.NewMockProvider()
	}

	mode := engine.ModeStatic
	if m, _ := cmd.Flags().GetString("mode"); m == string(engine.ModeDynamic) {
		mode = engine.ModeDynamic
	}
	learnerID, _ := cmd.Flags().GetString("learner")

	a := app.New(app.Options{
		Store:     st,
		Provider:  provider,
		Mode:      mode,
		LearnerID: learnerID,
		EngineCfg: engine.DefaultConfig(),
	})
	return a.Run(ctx)
}

// buildProvider prefers explicit LERNIO_* configuration, then probes the
// standard API key variables.
func buildProvider(cmd *cobra.Command, st *store.Store) (llm.Provider, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err == nil {
		return llm.NewProvider(cmd.Context(), cfg, st.EventRepo())
	}

	cfg, ok := llm.DiscoverConfig()
	if !ok {
		return nil, fmt.Errorf("no API key found (set LERNIO_LLM_PROVIDER or a standard *_API_KEY variable)")
	}
	return llm.NewProvider(cmd.Context(), cfg, st.EventRepo())
}
