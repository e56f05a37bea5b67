package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"flowcast/internal/server"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the forecast HTTP API",
	Long:  "Serve forecast and transaction data over a local HTTP API until interrupted.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&flagAddr, "addr", "a", "127.0.0.1:8390", "Listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc := server.New(server.Config{
		Addr:        flagAddr,
		HorizonDays: horizonDays(cfg),
		Currency:    cfg.General.Currency,
	}, db)

	return svc.Run(ctx)
}
