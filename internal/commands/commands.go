// Package commands exposes the behaviour-as-value operations as command line commands.
package commands

import (
	"context"
	"fmt"
	"io"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/funckit/internal/config"
)

const ErrInvalidNumber errorkit.Error = "ErrInvalidNumber"

// NewMux registers every command with its dependencies injected.
// Dependencies are kept in unexported fields, the flag and argument parsing of the cli package only touches exported ones.
func NewMux(c config.Config, logger *logging.Logger) *cli.Mux {
	var m cli.Mux
	m.Handle("sort", SortCommand{Stable: c.StableSort, logger: logger})
	m.Handle("filter", FilterCommand{logger: logger})
	m.Handle("upper", UpperCommand{Locale: c.Locale, logger: logger})
	m.Handle("combine", CombineCommand{})
	m.Handle("demo", DemoCommand{unstable: !c.StableSort, logger: logger})
	return &m
}

// badRequest reports an invalid input on the error output of the command.
func badRequest(ctx context.Context, logger *logging.Logger, w cli.Response, err error) {
	loggerOrDiscard(logger).Debug(ctx, "bad request", logging.ErrField(err))
	w.ExitCode(cli.ExitCodeBadRequest)
	fmt.Fprintln(errOut(w), err.Error())
}

func errOut(w cli.Response) io.Writer {
	if ew, ok := w.(cli.ErrorWriter); ok {
		return ew.Stderr()
	}
	return w
}

func loggerOrDiscard(l *logging.Logger) *logging.Logger {
	if l != nil {
		return l
	}
	return &logging.Logger{Out: io.Discard}
}
