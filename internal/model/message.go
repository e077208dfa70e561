package model

// Message is a single debug line before rendering: an ordered sequence of
// printable fragments, consumed by one emit call and never stored.
type Message struct {
	Fragments []any
}
