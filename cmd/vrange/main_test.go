package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/vrange/internal/errors"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version", "--short")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("version = %q, want %q", out, version)
	}
}

func TestRenderApp(t *testing.T) {
	out, err := run(t, "render", "counter", "--app", "--config", t.TempDir())
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	if !strings.Contains(out, `<span id="count">1</span>`) {
		t.Errorf("render output = %q", out)
	}
}

func TestRenderHostFile(t *testing.T) {
	dir := t.TempDir()
	host := filepath.Join(dir, "page.html")
	if err := os.WriteFile(host, []byte(`<main><section id="app"></section></main>`), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "render", "todo", "--host", host, "--config", dir)
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	if !strings.Contains(out, `<section id="app"><div id="todo">`) {
		t.Errorf("render output = %q", out)
	}
}

func TestRenderSave(t *testing.T) {
	dir := t.TempDir()
	cfg := `{"snapshot": {"dir": "` + filepath.ToSlash(filepath.Join(dir, "out")) + `"}}`
	if err := os.WriteFile(filepath.Join(dir, "vrange.json"), []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "render", "counter", "--save", "--config", dir)
	if err != nil {
		t.Fatalf("render --save error = %v", err)
	}
	if !strings.Contains(out, "snapshot saved to") {
		t.Errorf("output = %q", out)
	}
	entries, err := os.ReadDir(filepath.Join(dir, "out"))
	if err != nil || len(entries) != 1 {
		t.Errorf("snapshot dir entries = %v, %v", entries, err)
	}
}

func TestDemo(t *testing.T) {
	out, err := run(t, "demo", "todo", "-n", "2", "-v", "--config", t.TempDir())
	if err != nil {
		t.Fatalf("demo error = %v", err)
	}
	for _, want := range []string{"<li>item 1</li><li>item 2</li>", "update", "append", "2 clicks on todo"} {
		if !strings.Contains(out, want) {
			t.Errorf("demo output missing %q:\n%s", want, out)
		}
	}
}

func TestDemoList(t *testing.T) {
	out, err := run(t, "demo")
	if err != nil {
		t.Fatalf("demo error = %v", err)
	}
	if !strings.Contains(out, "counter") || !strings.Contains(out, "todo") {
		t.Errorf("demo list = %q", out)
	}
}

func TestUnknownDemo(t *testing.T) {
	_, err := run(t, "render", "nope", "--config", t.TempDir())
	if errors.Code(err) != "E301" {
		t.Errorf("render nope error = %v, want E301", err)
	}
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := run(t, "demo", "counter", "--log-level", "loud", "--config", t.TempDir())
	if errors.Code(err) != "E203" {
		t.Errorf("error = %v, want E203", err)
	}
}
