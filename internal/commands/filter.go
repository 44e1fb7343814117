package commands

import (
	"fmt"
	"strconv"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/funckit/pkg/slicekit"
)

type FilterCommand struct {
	Min     int  `flag:"min" default:"5" desc:"values less than this are removed"`
	Removed bool `flag:"removed" desc:"print the removed values instead of the kept ones"`

	logger *logging.Logger
}

func (cmd FilterCommand) Summary() string { return "remove the numbers less than the minimum" }

func (cmd FilterCommand) ServeCLI(w cli.Response, r *cli.Request) {
	ctx := r.Context()

	values, err := slicekit.Map[int](r.Args, func(raw string) (int, error) {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, ErrInvalidNumber.F("%q is not an integer", raw)
		}
		return n, nil
	})
	if err != nil {
		badRequest(ctx, cmd.logger, w, err)
		return
	}

	below := func(v int) bool { return v < cmd.Min }
	removedValues := slicekit.Filter(values, below)
	removed := slicekit.RemoveIf(&values, below)
	loggerOrDiscard(cmd.logger).Debug(ctx, "numbers filtered",
		logging.Field("min", cmd.Min),
		logging.Field("removed", removed))

	out := values
	if cmd.Removed {
		out = removedValues
	}
	slicekit.ForEach(out, func(v int) {
		fmt.Fprintln(w, v)
	})
}
