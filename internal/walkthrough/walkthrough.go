// Package walkthrough prints a guided tour of passing behaviour as a value:
// the same ordering handed to a sort in several spellings,
// followed by consumers, a custom single-method contract, predicate removal and in-place replacement.
package walkthrough

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/funckit/pkg/combinator"
	"go.llib.dev/funckit/pkg/compare"
	"go.llib.dev/funckit/pkg/slicekit"
	"go.llib.dev/funckit/pkg/stringkit"
)

var (
	Foods   = []string{"Käse", "Semmel", "Aufstrich"}
	Numbers = []int{1, 4, 6, 8}
	Words   = []string{"Adam", "und", "Eva"}
)

type Walkthrough struct {
	Out    io.Writer
	Logger *logging.Logger
	// Upper is the unary operator applied to the words.
	// Defaults to stringkit.ToUpper.
	Upper func(string) string
	// Words replaces the package level Words when set.
	Words []string
	// Unstable switches the sorting steps to a sort that doesn't keep the order of equal elements.
	Unstable bool
}

func (wt Walkthrough) Run(ctx context.Context) error {
	p := &printer{w: wt.Out}

	foods := append([]string(nil), Foods...)
	for _, step := range wt.sortSteps() {
		wt.log(ctx, "sorting", logging.Field("step", step.Name))
		wt.sortBy(foods, step.Cmp)
		if step.Print {
			p.Println(step.Name+":", formatList(foods))
		}
	}

	// consumers: a closure, a function value, then a method value
	slicekit.ForEach(foods, func(food string) { p.Println(food) })
	printFood := func(food string) { p.Println(food) }
	slicekit.ForEach(foods, printFood)
	slicekit.ForEach(foods, p.Line)

	wt.log(ctx, "combining", logging.Field("combinator", "FirstHalves"))
	var c combinator.Interface = combinator.FirstHalves
	p.Println("Beispiel functional interface:", c.Combine("Katze", "Hund"))

	values := append([]int(nil), Numbers...)
	removed := slicekit.RemoveIf(&values, func(v int) bool { return v < 5 })
	wt.log(ctx, "removed values", logging.Field("count", removed))
	p.Println("Ergebnis nach removeIf:", formatList(slicekit.Must(slicekit.Map[string](values, strconv.Itoa))))

	words := append([]string(nil), wt.words()...)
	slicekit.ReplaceAll(words, wt.upper())
	p.Println(formatList(words))

	if p.err != nil {
		wt.logger().Error(ctx, "walkthrough output failed", logging.ErrField(p.err))
	}
	return p.err
}

type sortStep struct {
	Name  string
	Cmp   func(a, b string) int
	Print bool
}

func (wt Walkthrough) sortSteps() []sortStep {
	return []sortStep{
		{ // a named strategy value
			Name:  "Comparator v1",
			Cmp:   compare.LastCharComparator.Compare,
			Print: true,
		},
		{ // an anonymous implementation of the strategy contract
			Name: "Comparator v2",
			Cmp: compare.Func[string](func(s1, s2 string) int {
				return compare.LastChar(s1, s2)
			}).Compare,
			Print: true,
		},
		{ // a function literal
			Name: "Comparator v3",
			Cmp: func(s1, s2 string) int {
				return compare.Numbers(mustLastRune(s1), mustLastRune(s2))
			},
			Print: true,
		},
		{ // the function itself
			Name: "Comparator v4",
			Cmp:  compare.LastChar,
		},
		{ // an ordering derived from a key
			Name: "Comparator v5",
			Cmp:  compare.By(mustLastRune),
		},
	}
}

// mustLastRune panics on empty text the same way compare.LastChar does.
func mustLastRune(s string) rune {
	r, err := compare.LastRune(s)
	if err != nil {
		panic(err)
	}
	return r
}

func (wt Walkthrough) sortBy(vs []string, cmp func(a, b string) int) {
	if wt.Unstable {
		slicekit.SortBy(vs, cmp)
		return
	}
	slicekit.StableSortBy(vs, cmp)
}

func (wt Walkthrough) upper() func(string) string {
	if wt.Upper != nil {
		return wt.Upper
	}
	return stringkit.ToUpper
}

func (wt Walkthrough) words() []string {
	if wt.Words != nil {
		return wt.Words
	}
	return Words
}

func (wt Walkthrough) logger() *logging.Logger {
	if wt.Logger != nil {
		return wt.Logger
	}
	return &logging.Logger{Out: io.Discard}
}

func (wt Walkthrough) log(ctx context.Context, msg string, ds ...logging.Detail) {
	wt.logger().Debug(ctx, msg, ds...)
}

func formatList(vs []string) string {
	return "[" + strings.Join(vs, ", ") + "]"
}

// printer keeps the first write error, so the steps don't need to check after every line.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) Println(a ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, a...)
}

func (p *printer) Line(v string) { p.Println(v) }
