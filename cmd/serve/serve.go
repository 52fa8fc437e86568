// Package serve handles the HTTP dashboard server command
package serve

import (
	"fjacquet/budget-csv/cmd/common"
	"fjacquet/budget-csv/cmd/root"
	"fjacquet/budget-csv/internal/logging"
	"fjacquet/budget-csv/internal/projection"
	"fjacquet/budget-csv/internal/server"

	"github.com/spf13/cobra"
)

// Addr overrides the listen address from configuration when non-empty.
var Addr string

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the budget dashboard API over HTTP",
	Long: `Start an HTTP server that accepts budget CSV uploads and returns the
aggregated report, chart data and savings projections as JSON.`,
	Run: serveFunc,
}

func serveFunc(cmd *cobra.Command, args []string) {
	pipeline, err := common.BuildPipeline(root.Cfg, root.Log)
	if err != nil {
		root.Log.Fatalf("Error loading classification rules: %v", err)
	}

	addr := Addr
	if addr == "" {
		addr = root.Cfg.Server.Addr
	}

	srv := server.New(server.Options{
		Parser:    pipeline.Parser,
		Generator: pipeline.Generator,
		Scenarios: projection.ScenariosFromRates(
			root.Cfg.Projection.StocksRate, root.Cfg.Projection.BankRate),
		HorizonYears:   root.Cfg.Projection.HorizonYears,
		MaxUploadBytes: int64(root.Cfg.Server.MaxUploadMB) << 20,
		Logger:         logging.NewLogrusAdapterFromLogger(root.Log),
	})

	if err := srv.ListenAndServe(addr); err != nil {
		root.Log.Fatalf("Server stopped: %v", err)
	}
}

func init() {
	Cmd.Flags().StringVar(&Addr, "addr", "", "Listen address (default from config)")
}
