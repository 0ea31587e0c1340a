package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, _, err := runCLI(t, nil, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, target) {
		t.Errorf("init output does not mention target: %q", out)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "clusters_per_padding") {
		t.Errorf("sample config missing filter knobs:\n%s", data)
	}

	// A second init without --overwrite must refuse.
	if _, _, err := runCLI(t, nil, "config", "init", "--path", target); err == nil {
		t.Fatal("expected refusal to overwrite")
	}
	if _, _, err := runCLI(t, nil, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestConfigShowDefaults(t *testing.T) {
	out, _, err := runCLI(t, nil, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "defaults shown") {
		t.Errorf("expected defaults notice:\n%s", out)
	}
	if !strings.Contains(out, "clusters_per_padding = 1") {
		t.Errorf("expected default padding interval:\n%s", out)
	}
}

func TestConfigShowReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[filter]\nclusters_per_padding = 7\npadding_size_bytes = 4096\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCommand()
	var stdout strings.Builder
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"--config", path, "config", "show"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(stdout.String(), "clusters_per_padding = 7") {
		t.Errorf("configured value missing:\n%s", stdout.String())
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := runCLI(t, nil, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "mkvlive "+version) {
		t.Errorf("unexpected version output: %q", out)
	}
}
