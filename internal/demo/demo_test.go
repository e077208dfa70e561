package demo

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/crimson-sun/debuglog/pkg/debuglog"
)

func newLogger(t *testing.T) (*debuglog.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l, err := debuglog.New(debuglog.WithWriter(&buf))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return l, &buf
}

func TestRunFullSequence(t *testing.T) {
	l, buf := newLogger(t)

	if err := New(l, Sequence()).Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	want := []string{
		"==>Begin the test",
		"--> Cpp03VersusCpp11",
		"Pascal",
		"3",
		"2",
		"3",
		"2",
		"", // placeholder for the caught range violation, checked below
		"Lambda",
		"2 uppercase letters in: Hello World!",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i, w := range want {
		if i == 7 {
			continue
		}
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}

	caught := lines[7]
	if !strings.HasPrefix(caught, "Caught exception: ") {
		t.Fatalf("range violation line = %q", caught)
	}
	if !strings.Contains(caught, "-5") || !strings.Contains(caught, "out of range") {
		t.Errorf("range violation line not descriptive: %q", caught)
	}
}

func TestSequenceOrder(t *testing.T) {
	var names []string
	for _, r := range Sequence() {
		names = append(names, r.Name)
	}
	got := strings.Join(names, ",")
	want := "cpp03-vs-cpp11,cpp11-vs-cpp14,cpp14-vs-cpp17,cpp17-vs-cpp20"
	if got != want {
		t.Fatalf("sequence = %s, want %s", got, want)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	l, buf := newLogger(t)

	ran := 0
	routines := []Routine{
		{Name: "a", Run: func(*debuglog.Logger) { ran++ }},
		{Name: "b", Run: func(*debuglog.Logger) { ran++ }},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := New(l, routines).Run(ctx); err != context.Canceled {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
	if ran != 0 {
		t.Fatalf("ran %d routines after cancel", ran)
	}
	if buf.String() != "==>Begin the test\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestForEachVisitsRunesInOrder(t *testing.T) {
	var got []rune
	forEach("Hé!", func(r rune) { got = append(got, r) })

	if string(got) != "Hé!" {
		t.Fatalf("visited %q", string(got))
	}
}

func TestClosuresLine(t *testing.T) {
	l, buf := newLogger(t)

	closures(l)

	if buf.String() != "Lambda\n2 uppercase letters in: Hello World!\n" {
		t.Fatalf("got %q", buf.String())
	}
}
