package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/novaengine/shipwright/internal/config"
	oerrors "github.com/novaengine/shipwright/internal/errors"
	"github.com/novaengine/shipwright/internal/output"
	"github.com/novaengine/shipwright/internal/server"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	var addrFlag string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the designer WebSocket endpoint",
		Long: `Run the designer server: a WebSocket endpoint at /ws that external
editors use to assemble ships against the live catalogs, plus a /healthz
probe.

The server polls the content tree at the configured reload interval and
pushes a "reload" message to every connected client when a change bumps the
catalog generation.

The listen address resolves as --addr flag > SHIPWRIGHT_SERVE_ADDR >
config serve.addr > the built-in default.

Examples:
  # Serve on the default address
  shipwright serve

  # Custom port
  shipwright serve --addr :9000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), addrFlag)
		},
	}

	cmd.Flags().StringVar(&addrFlag, "addr", "", "Listen address (env: SHIPWRIGHT_SERVE_ADDR)")

	return cmd
}

func runServe(ctx context.Context, addrFlag string) error {
	addr := config.ResolveServeAddr(config.ResolveServeAddrOptions{
		FlagValue: addrFlag,
		Config:    GetConfig(),
	})
	if err := config.ValidateListenAddr(addr.Value); err != nil {
		return oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}

	ectx, err := newEngineContext(ctx)
	if err != nil {
		return err
	}
	defer ectx.Shutdown()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		output.Info("shutting down")
		cancel()
	}()

	if err := server.New(ectx, addr.Value).Run(ctx); err != nil {
		return oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}
	return nil
}
