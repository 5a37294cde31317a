// Package logging provides concrete implementations of the gamedata.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Renders messages through log/slog with a tint handler
//     (stderr by default, optionally teed into a rotated log file)
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
