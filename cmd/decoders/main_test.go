package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reoring/decoders/i18n"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestCheck_Valid(t *testing.T) {
	code, out, stderr := runCLI(t, `{"authorized":true}`, "check", "-schema", "session-response")
	if code != exitOK {
		t.Fatalf("code=%d stderr=%s", code, stderr)
	}
	if !strings.Contains(out, `"authorized": true`) {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestCheck_Invalid(t *testing.T) {
	code, _, stderr := runCLI(t, `{"id":"1","path":"p","name":"n"}`, "check", "-schema", "workflow-info")
	if code != exitInvalid || !strings.Contains(stderr, "Not a number") {
		t.Fatalf("code=%d stderr=%s", code, stderr)
	}
}

func TestCheck_Japanese(t *testing.T) {
	t.Cleanup(func() { i18n.SetLanguage("en") })
	code, _, stderr := runCLI(t, `{"authorized":true}`, "check", "-schema", "repo-info", "-lang", "ja")
	if code != exitInvalid || strings.Contains(stderr, "Not a string") {
		t.Fatalf("code=%d stderr=%s", code, stderr)
	}
}

func TestCheck_Path(t *testing.T) {
	doc := `{"workflows":[{"id":1,"path":".github/workflows/ci.yml","name":"CI"}]}`
	code, out, stderr := runCLI(t, doc, "check", "-schema", "workflows", "-path", "workflows")
	if code != exitOK || !strings.Contains(out, `"name": "CI"`) {
		t.Fatalf("code=%d out=%s stderr=%s", code, out, stderr)
	}
	code, _, _ = runCLI(t, doc, "check", "-schema", "workflows", "-path", "missing")
	if code != exitUsage {
		t.Fatalf("missing path: code=%d", code)
	}
}

func TestCheck_YAMLFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "deploy.yml")
	content := "on:\n  workflow_dispatch:\n    inputs:\n      dry_run:\n        type: boolean\n"
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	code, out, stderr := runCLI(t, "", "check", "-schema", "workflow-config", "-f", file)
	if code != exitOK || !strings.Contains(out, `"dry_run"`) {
		t.Fatalf("code=%d out=%s stderr=%s", code, out, stderr)
	}
}

func TestCheck_DuplicateKeys(t *testing.T) {
	doc := `{"authorized":true,"authorized":false}`
	code, _, stderr := runCLI(t, doc, "check", "-schema", "session-response")
	if code != exitUsage || !strings.Contains(stderr, "duplicate_key") {
		t.Fatalf("default: code=%d stderr=%s", code, stderr)
	}
	code, out, stderr := runCLI(t, doc, "check", "-schema", "session-response", "-dup", "warn")
	if code != exitOK || !strings.Contains(stderr, "warning:") || !strings.Contains(out, "false") {
		t.Fatalf("warn: code=%d out=%s stderr=%s", code, out, stderr)
	}
}

func TestCheck_VerboseLogs(t *testing.T) {
	code, _, stderr := runCLI(t, `{"authorized":false}`, "check", "-schema", "session-response", "-v")
	if code != exitOK || !strings.Contains(stderr, "input read") {
		t.Fatalf("code=%d stderr=%s", code, stderr)
	}
}

func TestUsageErrors(t *testing.T) {
	cases := [][]string{
		{},
		{"bogus"},
		{"check", "-schema", "nope"},
		{"check", "-schema", "repo-info", "-format", "toml"},
		{"check", "-schema", "repo-info", "-format", "yaml", "-path", "a"},
		{"check", "-schema", "repo-info", "-dup", "sometimes"},
	}
	for _, args := range cases {
		if code, _, _ := runCLI(t, "{}", args...); code != exitUsage {
			t.Fatalf("%v: code=%d want %d", args, code, exitUsage)
		}
	}
}

func TestList(t *testing.T) {
	code, out, _ := runCLI(t, "", "list")
	if code != exitOK || !strings.Contains(out, "workflow-config\n") {
		t.Fatalf("code=%d out=%s", code, out)
	}
}
