package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/luma/seymour/httpapi"
)

var (
	// The host to listen on, overrides SEYMOUR_HOST
	host string

	// The port to listen for http requests on, overrides SEYMOUR_PORT
	httpPort int
)

func init() {
	flags := ServeCmd.PersistentFlags()

	flags.IntVarP(&httpPort, "port", "p", 0, "The port to listen to HTTP requests on")
	flags.StringVarP(&host, "host", "a", "", "The host to listen on")
}

var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the protocol playground HTTP service",
	Long: `Start the protocol playground HTTP service

The playground parses and renders protocol lines over HTTP, it does not
serve feeds.

Usage
	seymour serve
	curl -d 'MARKREAD 42' localhost:7362/commands/parse

`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		ctx, signalStop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer signalStop()

		fileLimit, err := setFileLimit()
		if err != nil {
			log.Warn("Could not raise the file limit", zap.Error(err))
		} else {
			log.Info("Set file limit", zap.Uint64("fileLimit", fileLimit))
		}

		if host == "" {
			host = conf.Host
		}

		if httpPort == 0 {
			httpPort = conf.Port
		}

		server := httpapi.NewServer(httpapi.Options{
			Host:      host,
			Port:      httpPort,
			Reuseport: conf.Reuseport,
			Debug:     conf.DebugHTTP,
			Log:       log.Named("http"),
		})

		if err := server.Start(ctx); err != nil {
			return err
		}

		log.Info("Started", zap.Any("config", conf))

		// Listen for the interrupt signal.
		<-ctx.Done()

		// Restore default behavior on the interrupt signal and notify user of shutdown.
		signalStop()
		log.Info("Shutting down gracefully, press Ctrl+C again to force")

		// The context is used to inform the server it has 5 seconds to finish
		// the request it is currently handling
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if serr := server.Shutdown(shutdownCtx); serr != nil {
			log.Error("Http server forced to shutdown", zap.Error(serr))
			err = multierr.Append(err, serr)
		}

		log.Info("Exiting")
		return err
	},
}

func setFileLimit() (uint64, error) {
	var rLimit syscall.Rlimit

	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		return 0, err
	}

	rLimit.Cur = rLimit.Max
	if err := syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		return 0, err
	}

	return rLimit.Cur, nil
}
