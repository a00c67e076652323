package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bethropolis/tidecore/internal/config"
	"github.com/bethropolis/tidecore/internal/document"
	"github.com/bethropolis/tidecore/internal/workspace"
)

func TestRunScript(t *testing.T) {
	dir := t.TempDir()
	notes := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(notes, []byte("first line\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	ws := workspace.New(config.NewDefaultConfig(), workspace.Options{
		FileIO: document.OSFileIO{},
		Output: &out,
	})
	defer ws.Close()

	script := strings.Join([]string{
		"# edit and save",
		"open " + notes,
		"doc-end",
		`insert "second line"`,
		"bogus",
		"save",
		"text",
	}, "\n")
	failed := runScript(ws, "test", strings.NewReader(script), &out, &errOut)

	if failed != 1 || !strings.Contains(errOut.String(), "test:5:") {
		t.Errorf("expected one failure on line 5, got %d: %q", failed, errOut.String())
	}
	data, err := os.ReadFile(notes)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "first line\nsecond line" {
		t.Errorf("unexpected file content %q", data)
	}
	if !strings.Contains(out.String(), "-- Saved ") || !strings.HasSuffix(out.String(), "first line\nsecond line\n") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestRunExitCodes(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "tidecore.log")
	base := []string{"-config", filepath.Join(dir, "missing.toml"), "-logfile", logFile}

	tests := []struct {
		name   string
		args   []string
		script string
		code   int
	}{
		{"clean script", nil, "new\ninsert hi\ntext\n", 0},
		{"failing line", nil, "new\nbogus\n", 1},
		{"missing script file", []string{filepath.Join(dir, "nope.txt")}, "", 1},
		{"bad flag", []string{"-no-such-flag"}, "", 2},
	}
	for _, tt := range tests {
		var out, errOut bytes.Buffer
		args := append(append([]string{}, base...), tt.args...)
		if code := run(args, strings.NewReader(tt.script), &out, &errOut); code != tt.code {
			t.Errorf("%s: expected exit %d, got %d (stderr %q)", tt.name, tt.code, code, errOut.String())
		}
	}

	var out bytes.Buffer
	if code := run([]string{"-version"}, strings.NewReader(""), &out, &out); code != 0 || !strings.HasPrefix(out.String(), config.AppName+" ") {
		t.Errorf("unexpected version output %q (exit %d)", out.String(), code)
	}
	if _, err := os.Stat(logFile); err != nil {
		t.Errorf("expected log file to be written: %v", err)
	}
}
