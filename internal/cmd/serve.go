package cmd

import (
	"context"

	"captura/internal/logging"
	"captura/internal/server"
)

// ServeCmd starts the capture API server
type ServeCmd struct {
	Addr string `help:"Listen address (overrides CAPTURA_LISTEN_ADDR and settings.json)"`
}

// Run starts the HTTP server and blocks until shutdown
func (s *ServeCmd) Run(cli *CLI) error {
	addr := s.Addr
	if addr == "" {
		addr = cli.Container.ListenAddr
	}

	handler := server.NewHandler(
		cli.Container.CaptureService,
		cli.Container.BlogService,
		cli.Container.TenantService,
	)

	logging.Logger.Info("Starting capture API server", "addr", addr)
	return server.New(addr, handler).Run(context.Background())
}
