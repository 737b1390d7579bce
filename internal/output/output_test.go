package output

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything written.
func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	if err := fn(); err != nil {
		t.Fatal(err)
	}
	w.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

type sample struct {
	Title string `yaml:"title" json:"title"`
	Width int    `yaml:"width" json:"width"`
}

func TestPrintJSON_Compact(t *testing.T) {
	got := captureStdout(t, func() error {
		return PrintJSON(sample{Title: "Untitled - Notepad", Width: 101})
	})
	want := `{"title":"Untitled - Notepad","width":101}` + "\n"
	if got != want {
		t.Errorf("PrintJSON = %q, want %q", got, want)
	}
}

func TestPrintPrettyJSON_Indented(t *testing.T) {
	got := captureStdout(t, func() error {
		return PrintPrettyJSON(sample{Title: "x", Width: 1})
	})
	if !strings.Contains(got, "\n  \"title\"") {
		t.Errorf("PrintPrettyJSON output not indented: %q", got)
	}
}

func TestPrintYAML(t *testing.T) {
	got := captureStdout(t, func() error {
		return PrintYAML(sample{Title: "Untitled - Notepad", Width: 101})
	})
	if !strings.Contains(got, "title: Untitled - Notepad") || !strings.Contains(got, "width: 101") {
		t.Errorf("PrintYAML output missing fields: %q", got)
	}
}

func TestPrint_FollowsOutputFormat(t *testing.T) {
	defer func() { OutputFormat = FormatYAML; PrettyOutput = false }()

	OutputFormat = FormatJSON
	got := captureStdout(t, func() error { return Print(sample{Title: "x"}) })
	if !strings.HasPrefix(got, "{") {
		t.Errorf("expected JSON output, got %q", got)
	}

	OutputFormat = Format("csv")
	if err := Print(sample{}); err == nil {
		t.Error("expected error for unsupported output format")
	}
}
