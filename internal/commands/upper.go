package commands

import (
	"fmt"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/funckit/internal/config"
	"go.llib.dev/funckit/pkg/slicekit"
	"go.llib.dev/funckit/pkg/stringkit"
)

type UpperCommand struct {
	Locale string `flag:"locale" desc:"BCP 47 language tag for language specific case mapping"`

	logger *logging.Logger
}

func (cmd UpperCommand) Summary() string { return "upper case the words" }

func (cmd UpperCommand) ServeCLI(w cli.Response, r *cli.Request) {
	ctx := r.Context()

	tag, err := config.ParseLocale(cmd.Locale)
	if err != nil {
		badRequest(ctx, cmd.logger, w, err)
		return
	}

	words := append([]string(nil), r.Args...)
	slicekit.ReplaceAll(words, stringkit.Upper(tag))
	loggerOrDiscard(cmd.logger).Debug(ctx, "words upper cased",
		logging.Field("locale", tag.String()),
		logging.Field("count", len(words)))

	slicekit.ForEach(words, func(word string) {
		fmt.Fprintln(w, word)
	})
}
