package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var (
	ebmlHeaderID = []byte{0x1a, 0x45, 0xdf, 0xa3}
	seekHeadID   = []byte{0x11, 0x4d, 0x9b, 0x74}
	// Void ID followed by the wide-form encoding of size 64.
	paddedVoid = []byte{0xec, 0x10, 0x00, 0x00, 0x40}
)

func TestStreamFromStdin(t *testing.T) {
	out, _, err := runCLI(t, bytes.NewReader(sampleStream(t)),
		"stream", "-", "--clusters-per-padding", "1", "--padding-size", "64")
	if err != nil {
		t.Fatalf("stream: %v", err)
	}

	raw := []byte(out)
	if !bytes.HasPrefix(raw, ebmlHeaderID) {
		t.Fatalf("output does not start with the EBML header: % x", raw[:min(8, len(raw))])
	}
	if bytes.Contains(raw, seekHeadID) {
		t.Error("SeekHead survived the rewrite")
	}
	if !bytes.Contains(raw, paddedVoid) {
		t.Error("no 64-byte Void padding in the output")
	}
}

func TestStreamToLockedOutputFile(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.mkv")

	_, _, err := runCLI(t, nil, "stream", sampleFile(t), "--output", outPath)
	if err != nil {
		t.Fatalf("stream --output: %v", err)
	}

	raw, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(raw, ebmlHeaderID) {
		t.Fatalf("output does not start with the EBML header")
	}
	if bytes.Contains(raw, seekHeadID) {
		t.Error("SeekHead survived the rewrite")
	}
}

func TestStreamRejectsUnwritableOutputDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses directory permissions")
	}
	dir := t.TempDir()
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	_, _, err := runCLI(t, nil, "stream", sampleFile(t), "--output", filepath.Join(dir, "out.mkv"))
	if err == nil {
		t.Fatal("expected an error for an unwritable output directory")
	}
	if !strings.Contains(err.Error(), "not writable") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStreamPaddingDisabled(t *testing.T) {
	out, _, err := runCLI(t, bytes.NewReader(sampleStream(t)),
		"stream", "-", "--clusters-per-padding", "0")
	if err != nil {
		t.Fatalf("stream: %v", err)
	}
	if bytes.Contains([]byte(out), []byte{0xec}) {
		t.Error("Void injected with padding disabled")
	}
}

func TestBareInvocationWithDashStreams(t *testing.T) {
	out, _, err := runCLI(t, bytes.NewReader(sampleStream(t)), "-")
	if err != nil {
		t.Fatalf("bare -: %v", err)
	}
	if !bytes.HasPrefix([]byte(out), ebmlHeaderID) {
		t.Fatal("bare - did not produce a rewritten stream")
	}
}
