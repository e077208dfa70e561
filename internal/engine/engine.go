package engine

import (
	"fmt"
	"strings"

	"github.com/crimson-sun/debuglog/internal/engine/normalizer"
	"github.com/crimson-sun/debuglog/internal/model"
)

// Engine renders messages into output lines.
type Engine struct {
	normalizer normalizer.Normalizer
}

// New creates an Engine. A nil normalizer leaves rendered text unchanged.
func New(n normalizer.Normalizer) *Engine {
	if n == nil {
		n = normalizer.None()
	}
	return &Engine{normalizer: n}
}

// Render concatenates the textual form of every fragment in argument order,
// with no separator, and terminates the result with a single newline.
func (e *Engine) Render(msg model.Message) string {
	var b strings.Builder
	for _, f := range msg.Fragments {
		writeFragment(&b, f)
	}
	return e.normalizer.String(b.String()) + "\n"
}

// writeFragment appends the textual form of one fragment. fmt.Sprint would
// insert spaces between adjacent non-string operands, so each fragment is
// formatted on its own. fmt also turns nil-receiver panics from Error or
// String methods into "<nil>".
func writeFragment(b *strings.Builder, f any) {
	switch v := f.(type) {
	case string:
		b.WriteString(v)
	case []byte:
		b.Write(v)
	default:
		fmt.Fprint(b, v)
	}
}
