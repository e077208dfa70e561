package demo

import (
	"context"
	"unicode"

	"github.com/crimson-sun/debuglog/internal/fixed"
	"github.com/crimson-sun/debuglog/pkg/debuglog"
)

// Routine is one step of the demonstration sequence.
type Routine struct {
	Name string
	Run  func(l *debuglog.Logger)
}

// Sequence returns the demonstration routines in the order they run.
func Sequence() []Routine {
	return []Routine{
		{Name: "cpp03-vs-cpp11", Run: cpp03VersusCpp11},
		{Name: "cpp11-vs-cpp14", Run: func(*debuglog.Logger) {}},
		{Name: "cpp14-vs-cpp17", Run: func(*debuglog.Logger) {}},
		{Name: "cpp17-vs-cpp20", Run: func(*debuglog.Logger) {}},
	}
}

func cpp03VersusCpp11(l *debuglog.Logger) {
	l.Debug("--> Cpp03VersusCpp11")
	initializerLists(l)
	fixedArrays(l)
	closures(l)
}

type release struct {
	Language string
	Year     int
}

func initializerLists(l *debuglog.Logger) {
	languages := map[string][]release{
		"Dennis Ritchie":    {{"B", 1969}, {"C", 1973}},
		"Niklaus Wirth":     {{"Pascal", 1970}, {"Modula-2", 1973}, {"Oberon", 1986}},
		"Bjarne Stroustrup": {{"C++", 1983}},
		"Walter Bright":     {{"D", 1999}},
	}

	first, err := fixed.New(languages["Niklaus Wirth"]...).At(0)
	if err != nil {
		l.Debug("Caught exception: ", err)
		return
	}
	l.Debug(first.Language)

	languages["John McCarthy"] = []release{{"Lisp", 1958}}
}

func fixedArrays(l *debuglog.Logger) {
	rawChars := [...]byte{'A', 'b', 'c'}
	rawFloats := [...]float32{0.2, 33.33}
	chars := fixed.New(rawChars[:]...)
	floats := fixed.New(rawFloats[:]...)

	l.Debug(len(rawChars))
	l.Debug(len(rawFloats))
	l.Debug(chars.Len())
	l.Debug(floats.Len())

	if err := floats.Set(-5, 0.1); err != nil {
		l.Debug("Caught exception: ", err)
	}
}

func closures(l *debuglog.Logger) {
	l.Debug("Lambda")

	s := "Hello World!"
	uppercase := 0
	forEach(s, func(r rune) {
		if unicode.IsUpper(r) {
			uppercase++
		}
	})

	l.Debug(uppercase, " uppercase letters in: ", s)
}

func forEach(s string, fn func(rune)) {
	for _, r := range s {
		fn(r)
	}
}

// Runner executes the demonstration sequence against a Logger.
type Runner struct {
	logger   *debuglog.Logger
	routines []Routine
}

// New creates a Runner over the given routines.
func New(l *debuglog.Logger, routines []Routine) *Runner {
	return &Runner{logger: l, routines: routines}
}

// Run logs the start banner and runs each routine in order. It stops early
// only when ctx is cancelled and returns the context error in that case.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.Debug("==>Begin the test")
	for _, rt := range r.routines {
		if err := ctx.Err(); err != nil {
			return err
		}
		rt.Run(r.logger)
	}
	return nil
}
