package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quizdeck/quizdeck/internal/generator"
	"github.com/quizdeck/quizdeck/internal/llm"
	"github.com/quizdeck/quizdeck/internal/server"
	"github.com/quizdeck/quizdeck/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the question supplier HTTP server",
	Long: "Serves question batches over HTTP: cached questions are reused " +
		"until worn out, then an LLM generates fresh ones.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := server.LoadConfig()
		log := server.SetupLogger(cfg.LogLevel, cfg.LogFormat)

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(cmd.Context(), st.Events())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			return err
		}

		gen := generator.New(provider, generator.DefaultConfig())
		handler := server.NewQuizHandler(st.Questions(), gen, cfg, log)

		return server.Run(cfg, handler, log)
	},
}
