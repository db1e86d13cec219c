// Package logging provides a minimal logging facade for the qhull
// wrapper.
//
// The Logger interface wraps a subset of log/slog. The wrapper logs
// phase transitions of a computation at Debug level; by default the
// library is silent (Discard). Pass a Logger through
// Builder.Logger to observe what the native library is doing:
//
//	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//		Level: slog.LevelDebug,
//	})
//	hull, err := qhull.New(2).
//		AddPoints(points).
//		Logger(logging.New(slog.New(handler))).
//		Compute()
package logging
