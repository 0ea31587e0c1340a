// Package logging constructs the slog logger used across mkvlive.
//
// Two formats exist: a compact colorized console handler for humans and a
// JSON handler for collectors. Everything is written to stderr (or the
// writer the caller supplies): in live mode stdout carries the rewritten
// Matroska stream and must never see a log line.
package logging
