package cmd

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/luma/seymour/internal/inspect"
)

var (
	// Treat input as server responses rather than client commands
	responses bool
)

func init() {
	for _, c := range []*cobra.Command{DecodeCmd, RenderCmd} {
		c.Flags().BoolVarP(&responses, "responses", "r", false, "Treat lines as server responses instead of client commands")
	}
}

var DecodeCmd = &cobra.Command{
	Use:   "decode [line...]",
	Short: "Decode protocol lines into JSON",
	Long: `Decode protocol lines into JSON documents, one per line.

Lines are read from the arguments, or from stdin when there are none.
Lines that fail to parse are printed with their error and, for commands,
the 41 reply a server would send.

Usage
	seymour decode 'USER bob' 'MARKREAD 42'
	seymour decode --responses < session.log

`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect.Decode(input(cmd, args), cmd.OutOrStdout(), inspect.Options{
			Kind: kind(),
			Log:  log,
		})
	},
}

var RenderCmd = &cobra.Command{
	Use:   "render [document...]",
	Short: "Render JSON documents as protocol lines",
	Long: `Render JSON documents, as printed by decode, into protocol lines.

Usage
	seymour render '{"verb":"MARKREAD","id":42}'
	seymour render --responses < replies.jsonl

`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect.Render(input(cmd, args), cmd.OutOrStdout(), inspect.Options{
			Kind: kind(),
			Log:  log,
		})
	},
}

func input(cmd *cobra.Command, args []string) io.Reader {
	if len(args) == 0 {
		return cmd.InOrStdin()
	}

	return strings.NewReader(strings.Join(args, "\n") + "\n")
}

func kind() inspect.Kind {
	if responses {
		return inspect.Responses
	}

	return inspect.Commands
}
