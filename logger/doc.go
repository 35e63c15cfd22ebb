// Package logger is the emit surface for application code. The
// severity-tagged functions Error, Warn, Info, Debug, and Trace (plus
// their formatted -f variants) attribute each record to the calling
// package and route it to the process-wide handler installed via the
// console package or core.Set.
//
// Before a handler is installed, and for records below the handler's
// threshold, every call returns after a level check without formatting
// its message, so disabled statements are cheap to leave in place.
//
// Records normally target the package they originate in. Target returns
// a logger for the cross-module case:
//
//	logger.Target("app/storage").Warnf("compaction lagging by %v", lag)
//
// emits a record whose module is the calling package and whose target is
// app/storage, which the console renderer surfaces as a fourth column.
package logger
