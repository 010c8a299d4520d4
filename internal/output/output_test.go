package output

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
)

func TestWithPrinter_FromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		FromContext(WithPrinter(context.Background(), &buf)).Println("main")
		if buf.String() != "main\n" {
			t.Errorf("printer from context wrote %q, want %q", buf.String(), "main\n")
		}
	})

	t.Run("default to stdout when not set", func(t *testing.T) {
		t.Parallel()
		if p := FromContext(context.Background()); p.w != os.Stdout {
			t.Error("printer should default to os.Stdout")
		}
	})
}

func TestPrinter_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf)
	p.Print("a", "b")
	p.Println(" done")

	if got := buf.String(); got != "ab done\n" {
		t.Errorf("output = %q", got)
	}
}

type row struct {
	Path   string `json:"path" yaml:"path"`
	Branch string `json:"branch" yaml:"branch"`
}

func TestPrinter_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := New(&buf).JSON([]row{{Path: "main", Branch: "main"}}); err != nil {
		t.Fatal(err)
	}
	want := "[\n  {\n    \"path\": \"main\",\n    \"branch\": \"main\"\n  }\n]\n"
	if got := buf.String(); got != want {
		t.Errorf("JSON() = %q, want %q", got, want)
	}
}

func TestPrinter_YAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := New(&buf).YAML([]row{{Path: "feature__login", Branch: "feature/login"}}); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.Contains(got, "- path: feature__login") || !strings.Contains(got, "branch: feature/login") {
		t.Errorf("YAML() = %q", got)
	}
}
