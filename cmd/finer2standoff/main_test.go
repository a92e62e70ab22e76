package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runTest(args ...string) (int, string, string) {
	var out, errOut bytes.Buffer
	code := run(append([]string{"finer2standoff"}, args...), UI{Out: &out, Err: &errOut})
	return code, out.String(), errOut.String()
}

func TestRunStdout(t *testing.T) {
	path := writeInput(t, "John\tB-PER\tO\nSmith\tI-PER\tO\n\nthe\tO\tO\ncat\tO\tO\n")

	code, out, errOut := runTest(path)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, errOut)
	}

	want := "John Smith\nT1\tPER 0 10\tJohn Smith\nthe cat\n\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestRunOutputDir(t *testing.T) {
	path := writeInput(t, "<HEADLINE>\nNokia\tB-ORG\tO\nOyj\tI-ORG\tB-SUFFIX\n\nMary\tB-PER\tO\n")
	dir := filepath.Join(t.TempDir(), "out")

	code, out, errOut := runTest("-o", dir, path)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, errOut)
	}
	if out != "" {
		t.Errorf("expected no standard output, got %q", out)
	}

	files := map[string]string{
		"sentence00001.txt": "Nokia Oyj",
		"sentence00001.ann": "T1\tORG 0 9\tNokia Oyj\nT2\tSUFFIX 6 9\tOyj",
		"sentence00002.txt": "Mary",
		"sentence00002.ann": "T1\tPER 0 4\tMary",
	}

	for name, want := range files {
		got, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		if string(got) != want {
			t.Errorf("%s: expected %q, got %q", name, want, got)
		}
	}

	// a second run, flag after FILE, produces the same files
	if code, _, errOut := runTest(path, "-o", dir); code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, errOut)
	}
	for name, want := range files {
		got, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != want {
			t.Errorf("%s changed on rerun: %q", name, got)
		}
	}
}

func TestRunTypeMismatch(t *testing.T) {
	path := writeInput(t, "Nokia\tB-ORG\tO\nEspoo\tI-LOC\tO\n")

	code, _, errOut := runTest(path)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}

	if !strings.Contains(errOut, "in sentence Nokia Espoo\n") {
		t.Errorf("expected sentence context, got %q", errOut)
	}
	if !strings.Contains(errOut, "finer2standoff: ORG continues as LOC\n") {
		t.Errorf("expected error message, got %q", errOut)
	}
}

func TestRunFieldCount(t *testing.T) {
	path := writeInput(t, "Nokia\tB-ORG\n")

	code, _, errOut := runTest(path)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(errOut, "got 2 on line 1 in "+path) {
		t.Errorf("unexpected error output %q", errOut)
	}
}

func TestRunOrphanWarning(t *testing.T) {
	path := writeInput(t, "Mary\tB-PER\tO\nand\tO\tO\nBob\tI-PER\tO\n")

	code, out, errOut := runTest(path)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, errOut)
	}

	if !strings.Contains(out, "T2\tPER 9 12\tBob") {
		t.Errorf("expected recovered span, got %q", out)
	}
	if !strings.Contains(errOut, "level=WARN") {
		t.Errorf("expected warning, got %q", errOut)
	}
}

func TestRunStatsAndJSON(t *testing.T) {
	path := writeInput(t, "John\tB-PER\tO\nSmith\tI-PER\tO\n")

	code, out, errOut := runTest("--format", "json", "--stats", path)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, errOut)
	}

	want := `{"index":1,"text":"John Smith","textbounds":[{"type":"PER","start":0,"end":10,"text":"John Smith"}]}` + "\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}

	if !strings.Contains(errOut, "Num sentences 1, num tokens 2") {
		t.Errorf("expected stats, got %q", errOut)
	}
}

func TestRunBadArgs(t *testing.T) {
	path := writeInput(t, "John\tB-PER\tO\n")

	tests := [][]string{
		{},
		{path, path},
		{"--format", "xml", path},
		{"--format", "json", "-o", t.TempDir(), path},
		{"--log-level", "loud", path},
		{filepath.Join(t.TempDir(), "missing.csv")},
	}

	for _, args := range tests {
		if code, _, _ := runTest(args...); code != 1 {
			t.Errorf("args %v: expected exit code 1, got %d", args, code)
		}
	}
}

func TestRunUsageOnErrorStream(t *testing.T) {
	code, out, errOut := runTest()
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if out != "" {
		t.Errorf("expected no standard output, got %q", out)
	}
	if !strings.Contains(errOut, "USAGE") {
		t.Errorf("expected usage on error stream, got %q", errOut)
	}
}

func TestFlagsFirst(t *testing.T) {
	app := newApp(UI{Out: &bytes.Buffer{}, Err: &bytes.Buffer{}})

	tests := []struct {
		in   []string
		want []string
	}{
		{[]string{"p", "in.csv", "-o", "out"}, []string{"p", "-o", "out", "--", "in.csv"}},
		{[]string{"p", "-o", "out", "in.csv"}, []string{"p", "-o", "out", "--", "in.csv"}},
		{[]string{"p", "in.csv", "--stats", "--format=json"}, []string{"p", "--stats", "--format=json", "--", "in.csv"}},
		{[]string{"p", "--", "-odd.csv"}, []string{"p", "--", "-odd.csv"}},
		{[]string{"p", "-h"}, []string{"p", "-h"}},
	}

	for _, tt := range tests {
		got := flagsFirst(app, tt.in)
		if strings.Join(got, " ") != strings.Join(tt.want, " ") {
			t.Errorf("%v: expected %v, got %v", tt.in, tt.want, got)
		}
	}
}
