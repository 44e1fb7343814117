package commands

import (
	"fmt"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/funckit/pkg/compare"
	"go.llib.dev/funckit/pkg/slicekit"
)

type SortCommand struct {
	Stable   bool `flag:"stable" desc:"keep the input order of words that end with the same character"`
	Reverse  bool `flag:"reverse,r" desc:"sort in descending order"`
	TieBreak bool `flag:"tiebreak" desc:"order words with the same last character alphabetically"`

	logger *logging.Logger
}

func (cmd SortCommand) Summary() string { return "sort words by their last character" }

func (cmd SortCommand) ServeCLI(w cli.Response, r *cli.Request) {
	ctx := r.Context()
	words := append([]string(nil), r.Args...)

	for i, word := range words {
		if _, err := compare.LastRune(word); err != nil {
			badRequest(ctx, cmd.logger, w, compare.ErrEmptyText.F("word #%d has no last character", i+1))
			return
		}
	}

	var cmp = compare.Func[string](compare.LastChar)
	if cmd.TieBreak {
		cmp = thenBy(cmp, compare.Strings[string])
	}
	if cmd.Reverse {
		cmp = compare.Reverse(cmp)
	}
	if cmd.Stable {
		slicekit.StableSortBy(words, cmp)
	} else {
		slicekit.SortBy(words, cmp)
	}

	loggerOrDiscard(cmd.logger).Debug(ctx, "words sorted",
		logging.Field("count", len(words)),
		logging.Field("stable", cmd.Stable),
		logging.Field("reverse", cmd.Reverse),
		logging.Field("tiebreak", cmd.TieBreak))

	slicekit.ForEach(words, func(word string) {
		fmt.Fprintln(w, word)
	})
}

func thenBy(primary, secondary compare.Func[string]) compare.Func[string] {
	return func(a, b string) int {
		if c := primary(a, b); c != 0 {
			return c
		}
		return secondary(a, b)
	}
}
