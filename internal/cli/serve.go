package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"skribe/internal/bootstrap"
	"skribe/internal/shared/config"
	"skribe/internal/shared/server"
)

func newServeCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and web form",
		Long: `Start an HTTP server with the web form and REST endpoints.

Available endpoints:
- GET  /                        Web form
- GET  /api/v1/health           Health check
- POST /api/v1/extract          Extract text from an uploaded file
- POST /api/v1/generations      Cover letter, suggestions and DOCX as JSON
- POST /api/v1/cover-letter     Cover letter DOCX download
- GET  /metrics                 Prometheus metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromViper(v)
			app, err := bootstrap.Build(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return server.Run(cmd.Context(), server.Addr(cfg.Port), app.Router)
		},
	}

	cmd.Flags().StringP("port", "p", "", "Port to listen on (default from PORT)")
	mustBind(v, "port", cmd.Flags().Lookup("port"))
	return cmd
}
