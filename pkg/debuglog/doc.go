// Package debuglog writes diagnostic lines built from a sequence of
// printable fragments.
//
// Quick start:
//
//	debuglog.Debug("count=", 3) // writes "count=3\n" to stderr
//
// Fragments are concatenated in argument order with no separator and the
// line is terminated by exactly one newline. The line has reached its
// destination by the time the call returns.
//
// A Logger with its own destination:
//
//	l, err := debuglog.New(debuglog.WithWriter(&buf))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer l.Close()
//	l.Debug("value: ", x)
//
// A Logger is safe for concurrent use; lines from different goroutines are
// never split, but their relative order is unspecified.
package debuglog
