// Package logger is the public API of logtree. Most users only need to
// import this package.
//
// Loggers live in a Registry, which hands out exactly one Logger per
// name. A logger obtained for the first time is parented to the root
// logger, cascades into it, and copies the root's level at that moment.
// Later changes to the root's level do not reach existing children.
//
//	reg := logger.NewBuilder().
//	    WithRootLevel(logger.InfoLevel).
//	    Build()
//	db := reg.GetLogger("app.db")
//	db.Error("connection lost")
//
// A record accepted by a logger is formatted and written to the logger's
// sink, then offered to the parent. The parent re-emits it only if its
// own UseParent flag is set and its own level accepts the record, and
// the same test repeats further up the chain. The root's UseParent flag
// is always false, so records never cascade into the root; a logger's
// own flag only decides whether its children cascade into it.
//
// The package keeps a default Registry. GetLogger, RootLogger and the
// package-level severity functions use it, so simple programs can log
// without any setup:
//
//	logger.GetLogger("app").Warning("disk almost full")
//
// The formatted variants take a record pre-populated with a source
// location, usually from Here:
//
//	log.Infof(logger.Here(), "served %d requests", n)
//
// Sink failures never stop a cascade. Each failure is reported to the
// registry's zap fallback logger and returned as a *SinkError, combined
// with any others from the same call.
package logger
