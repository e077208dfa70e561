package normalizer

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrUnknownForm is returned by Parse for an unrecognised normalization name.
var ErrUnknownForm = errors.New("unknown normalization form")

// Normalizer rewrites rendered text before it reaches a sink.
type Normalizer interface {
	String(s string) string
	Name() string
}

type identity struct{}

func (identity) String(s string) string { return s }
func (identity) Name() string { return "none" }

// None returns the identity normalizer.
func None() Normalizer { return identity{} }

type form struct {
	f    norm.Form
	name string
}

func (n form) String(s string) string {
	if n.f.IsNormalString(s) {
		return s
	}
	return n.f.String(s)
}

func (n form) Name() string { return n.name }

// Parse maps "none", "nfc", "nfd", "nfkc" or "nfkd" (case-insensitive) to a
// Normalizer. The empty string means "none".
func Parse(name string) (Normalizer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return None(), nil
	case "nfc":
		return form{f: norm.NFC, name: "nfc"}, nil
	case "nfd":
		return form{f: norm.NFD, name: "nfd"}, nil
	case "nfkc":
		return form{f: norm.NFKC, name: "nfkc"}, nil
	case "nfkd":
		return form{f: norm.NFKD, name: "nfkd"}, nil
	default:
		return nil, fmt.Errorf("normalizer: %w: %q", ErrUnknownForm, name)
	}
}
