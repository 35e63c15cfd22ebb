// Package console renders log records as single colorized lines with
// columns that grow to fit the widest module and target seen so far.
//
// The line format is stable and deliberately terse. When a record's target
// equals its module (the common case) three fields are emitted:
//
//	ERROR|app/server|listen failed
//
// When the target diverges, it gets its own column:
//
//	WARN |app/server|app/metrics|scrape slow
//
// Column widths are measured in grapheme clusters, not bytes, so
// multi-byte scripts and emoji line up visually. Widths only ever grow;
// they are tracked with a lock-free running maximum so concurrent loggers
// never block each other on the hot path.
//
// Most programs call one of the Init functions exactly once at startup:
//
//	func main() {
//		if err := console.InitToDefaults(); err != nil {
//			panic(err)
//		}
//		logger.Info("ready")
//	}
//
// InitToDefaults picks the colored theme only when stderr is an
// interactive terminal, so redirected output stays free of escape
// sequences.
package console
