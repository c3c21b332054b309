package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/luma/seymour/cmd/gen"
	"github.com/luma/seymour/internal/env"
)

var (
	conf *env.Config
	log  *zap.Logger
)

var RootCmd = &cobra.Command{
	Use:   "seymour",
	Short: "Tools for the seymour feed subscription protocol",
	Long: `Tools for the seymour feed subscription protocol

Usage
	seymour decode 'MARKREAD 42'
	seymour render --responses < replies.jsonl
	seymour serve

`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		conf, err = env.LoadConfig(cmd.Context())
		if err != nil {
			return err
		}

		log, err = env.MakeLogger(conf.LogLevel, conf.LogEncoding)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func init() {
	RootCmd.AddCommand(ServeCmd, DecodeCmd, RenderCmd, VersionCmd, gen.RootCmd)
}

func Execute() {
	if err := RootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
