package greeting

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestGreeting(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no name", "", "Hello, World from Python! 🐍"},
		{"with name", "Alice", "Hello, Alice from Python! 🐍"},
		{"name with spaces", "Ada Lovelace", "Hello, Ada Lovelace from Python! 🐍"},
		{"unicode name", "Zoë", "Hello, Zoë from Python! 🐍"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Greeting(tt.input); got != tt.want {
				t.Errorf("Greeting(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGreetingContainsNameAndMarker(t *testing.T) {
	for _, name := range []string{"Bob", "x", "Dr. Who", "名前"} {
		got := Greeting(name)
		if !strings.Contains(got, name) {
			t.Errorf("Greeting(%q) = %q, missing name", name, got)
		}
		if !strings.HasSuffix(got, "🐍") {
			t.Errorf("Greeting(%q) = %q, missing trailing marker", name, got)
		}
	}
}

func TestDescription(t *testing.T) {
	got := Description()
	if got != Description() {
		t.Error("Description() is not constant")
	}
	for _, want := range []string{"Python console application", "nix-polyglot"} {
		if !strings.Contains(got, want) {
			t.Errorf("Description() = %q, missing %q", got, want)
		}
	}
}

var fixedNow = time.Date(2026, 10, 14, 9, 30, 0, 123456000, time.UTC)

func TestPrintDefault(t *testing.T) {
	var buf bytes.Buffer
	if err := Print(&buf, Request{Count: 1}, fixedNow); err != nil {
		t.Fatalf("Print() error: %v", err)
	}

	want := "Hello, World from Python! 🐍\n" +
		"This is a Python console application created with nix-polyglot.\n" +
		"Project created with nix-polyglot at 2026-10-14 09:30:00.123456\n"
	if buf.String() != want {
		t.Errorf("Print() =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestPrintRepeated(t *testing.T) {
	var buf bytes.Buffer
	if err := Print(&buf, Request{Name: "Bob", Count: 3}, fixedNow); err != nil {
		t.Fatalf("Print() error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "\n\nGreeting 3 times:\n") {
		t.Errorf("missing repetition header:\n%s", out)
	}
	for _, line := range []string{
		"1: Hello, Bob from Python! 🐍\n",
		"2: Hello, Bob from Python! 🐍\n",
		"3: Hello, Bob from Python! 🐍\n",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("missing line %q in:\n%s", line, out)
		}
	}
	if n := strings.Count(out, "Hello, Bob from Python!"); n != 4 {
		t.Errorf("greeting appears %d times, want 4", n)
	}
}

func TestPrintNonPositiveCount(t *testing.T) {
	for _, count := range []int{0, -1, -5} {
		var buf bytes.Buffer
		if err := Print(&buf, Request{Count: count}, fixedNow); err != nil {
			t.Fatalf("Print(count=%d) error: %v", count, err)
		}
		if strings.Contains(buf.String(), "times:") {
			t.Errorf("count=%d printed a repetition block:\n%s", count, buf.String())
		}
		if lines := strings.Count(buf.String(), "\n"); lines != 3 {
			t.Errorf("count=%d printed %d lines, want 3", count, lines)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestPrintWriteError(t *testing.T) {
	if err := Print(failingWriter{}, Request{Count: 1}, fixedNow); err == nil {
		t.Error("expected error from failing writer, got nil")
	}
}

func ExampleGreeting() {
	fmt.Println(Greeting(""))
	fmt.Println(Greeting("Alice"))
	// Output:
	// Hello, World from Python! 🐍
	// Hello, Alice from Python! 🐍
}
