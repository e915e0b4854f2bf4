package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestEditionsCommand(t *testing.T) {
	out, err := execute(t, "editions", "--log-level", "error")
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header + 3 editions:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "NAME") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[3], "v3") || !strings.Contains(lines[3], "*") {
		t.Errorf("v3 should be marked default: %q", lines[3])
	}
}

func TestEditionsCommand_ConfiguredDefault(t *testing.T) {
	out, err := execute(t, "editions", "--log-level", "error", "--edition", "v1")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if !strings.Contains(lines[1], "*") {
		t.Errorf("v1 should be marked default: %q", lines[1])
	}
}

func TestBuildCommand(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "site")

	stdout, err := execute(t, "build", "v2",
		"--log-level", "error",
		"--out-dir", out,
		"--public-dir", filepath.Join(dir, "public"),
		"--timezone", "UTC",
	)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "wrote 2 files") {
		t.Errorf("output = %q", stdout)
	}

	data, err := os.ReadFile(filepath.Join(out, "editions", "v2", "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `data-edition="v2"`) {
		t.Error("v2 page not written")
	}
}

func TestBuildCommand_Help(t *testing.T) {
	out, err := execute(t, "build", "--help")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"date of the build", "accordions collapsed", "?open="} {
		if !strings.Contains(out, want) {
			t.Errorf("build help missing %q:\n%s", want, out)
		}
	}
}

func TestBuildCommand_UnknownEdition(t *testing.T) {
	_, err := execute(t, "build", "v9", "--log-level", "error", "--out-dir", t.TempDir())
	if err == nil {
		t.Fatal("expected error for unknown edition")
	}
}

func TestInvalidConfig(t *testing.T) {
	_, err := execute(t, "editions", "--log-format", "xml")
	if err == nil {
		t.Fatal("expected error for invalid log format")
	}
	if !strings.Contains(err.Error(), "log-format") {
		t.Errorf("error = %v", err)
	}
}
