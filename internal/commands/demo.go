package commands

import (
	"fmt"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/funckit/internal/walkthrough"
)

type DemoCommand struct {
	unstable bool
	logger   *logging.Logger
}

func (cmd DemoCommand) Summary() string {
	return "walk through the ways of passing behaviour as a value"
}

func (cmd DemoCommand) ServeCLI(w cli.Response, r *cli.Request) {
	wt := walkthrough.Walkthrough{
		Out:      w,
		Logger:   cmd.logger,
		Unstable: cmd.unstable,
	}
	if err := wt.Run(r.Context()); err != nil {
		w.ExitCode(cli.ExitCodeError)
		fmt.Fprintln(errOut(w), err.Error())
	}
}
