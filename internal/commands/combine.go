package commands

import (
	"fmt"

	"go.llib.dev/frameless/pkg/cli"

	"go.llib.dev/funckit/pkg/combinator"
)

var combinators = map[string]combinator.Interface{
	"firsthalves": combinator.FirstHalves,
	"concat":      combinator.Concat,
}

type CombineCommand struct {
	With string `flag:"with" default:"firsthalves" enum:"firsthalves,concat," desc:"how two values are merged"`

	A string `arg:"0" required:"true" desc:"first value"`
	B string `arg:"1" required:"true" desc:"second value"`
}

func (cmd CombineCommand) Summary() string { return "merge the values from left to right" }

func (cmd CombineCommand) ServeCLI(w cli.Response, r *cli.Request) {
	c, ok := combinators[cmd.With]
	if !ok {
		c = combinator.FirstHalves
	}
	// extra values after A and B are folded in as well
	vs := append([]string{cmd.A, cmd.B}, r.Args...)
	fmt.Fprintln(w, combinator.Fold(c, vs...))
}
