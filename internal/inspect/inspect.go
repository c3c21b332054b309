// Package inspect runs the protocol codec over streams of lines, for the
// decode and render CLI commands.
package inspect

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/sjson"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/luma/seymour/internal/jsonview"
	"github.com/luma/seymour/protocol"
)

// MaxLineSize bounds a single input line.
const MaxLineSize = 64 * 1024

// Kind says which side of the protocol a stream holds.
type Kind int

const (
	Commands Kind = iota
	Responses
)

func (k Kind) String() string {
	if k == Responses {
		return "responses"
	}

	return "commands"
}

type Options struct {
	Kind Kind

	Log *zap.Logger
}

// Decode parses every line of r and writes one JSON document per line to w.
//
// A line that fails to parse is written as {"line":..,"error":..} and, for
// commands, the "reply" a server would send. Decode keeps going after a bad
// line and returns every failure combined.
func Decode(r io.Reader, w io.Writer, opts Options) (err error) {
	log := logger(opts).Named("decode")

	scanErr := scan(r, func(n int, line string) error {
		doc, perr := decodeLine(opts.Kind, line)
		if perr != nil {
			log.Warn("Failed to parse line",
				zap.Int("line", n),
				zap.String("kind", opts.Kind.String()),
				zap.String("data", line),
				zap.Error(perr))

			err = multierr.Append(err, fmt.Errorf("line %d: %w", n, perr))

			doc, perr = failureDoc(opts.Kind, line, perr)
			if perr != nil {
				return perr
			}
		}

		_, werr := fmt.Fprintf(w, "%s\n", doc)
		return werr
	})

	return multierr.Append(err, scanErr)
}

// Render reads one JSON document per line of r and writes the matching wire
// line to w. Blank lines are skipped.
func Render(r io.Reader, w io.Writer, opts Options) (err error) {
	log := logger(opts).Named("render")

	scanErr := scan(r, func(n int, line string) error {
		if strings.TrimSpace(line) == "" {
			return nil
		}

		out, rerr := renderLine(opts.Kind, []byte(line))
		if rerr != nil {
			log.Warn("Failed to render document",
				zap.Int("line", n),
				zap.String("kind", opts.Kind.String()),
				zap.Error(rerr))

			err = multierr.Append(err, fmt.Errorf("line %d: %w", n, rerr))
			return nil
		}

		_, werr := fmt.Fprintf(w, "%s\n", out)
		return werr
	})

	return multierr.Append(err, scanErr)
}

func decodeLine(kind Kind, line string) ([]byte, error) {
	if kind == Responses {
		resp, err := protocol.ParseResponse(line)
		if err != nil {
			return nil, err
		}

		return jsonview.MarshalResponse(resp)
	}

	cmd, err := protocol.ParseCommand(line)
	if err != nil {
		return nil, err
	}

	return jsonview.MarshalCommand(cmd)
}

func renderLine(kind Kind, doc []byte) (string, error) {
	if kind == Responses {
		resp, err := jsonview.UnmarshalResponse(doc)
		if err != nil {
			return "", err
		}

		return resp.String(), nil
	}

	cmd, err := jsonview.UnmarshalCommand(doc)
	if err != nil {
		return "", err
	}

	return cmd.String(), nil
}

func failureDoc(kind Kind, line string, cause error) ([]byte, error) {
	doc, err := sjson.SetBytes([]byte("{}"), "line", line)
	if err != nil {
		return nil, err
	}

	if doc, err = sjson.SetBytes(doc, "error", cause.Error()); err != nil {
		return nil, err
	}

	if kind == Commands {
		return sjson.SetBytes(doc, "reply", protocol.BadCommandFrom(cause).String())
	}

	return doc, nil
}

// scan calls fn for every line of r with line numbers starting at 1. A
// trailing '\r' is removed.
func scan(r io.Reader, fn func(n int, line string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), MaxLineSize)

	n := 0
	for scanner.Scan() {
		n++

		if err := fn(n, RemoveTrailingCR(scanner.Text())); err != nil {
			return err
		}
	}

	return scanner.Err()
}

func RemoveTrailingCR(line string) string {
	return strings.TrimSuffix(line, "\r")
}

func logger(opts Options) *zap.Logger {
	if opts.Log == nil {
		return zap.NewNop()
	}

	return opts.Log
}
