// Package source abstracts where Matroska bytes come from: a regular file
// with a known size and free seeking, or a forward-only pipe of unbounded
// size where forward seeks are emulated by discard-reads and backward seeks
// are impossible.
//
// The two implementations are independent; callers program against the
// Source interface and never care which one they hold.
package source
