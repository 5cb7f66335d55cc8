package greeting

import (
	"fmt"
	"io"
	"time"

	"github.com/nix-polyglot/glot/internal/branding"
)

// TimestampLayout matches the default string form of a Python datetime.
const TimestampLayout = "2006-01-02 15:04:05.000000"

// Request is one invocation of the console application.
type Request struct {
	Name  string
	Count int
}

// Greeting returns the greeting for name, falling back to "World" when name
// is empty.
func Greeting(name string) string {
	if name != "" {
		return fmt.Sprintf("Hello, %s from Python! 🐍", name)
	}
	return "Hello, World from Python! 🐍"
}

// Description identifies the application and the toolchain that generated it.
func Description() string {
	return fmt.Sprintf("This is a Python console application created with %s.", branding.Generator())
}

// Print writes the full application output for req to w. A Count of one or
// less prints no repetition block.
func Print(w io.Writer, req Request, now time.Time) error {
	greeting := Greeting(req.Name)

	if _, err := fmt.Fprintln(w, greeting); err != nil {
		return fmt.Errorf("writing greeting: %w", err)
	}
	fmt.Fprintln(w, Description())
	fmt.Fprintf(w, "Project created with %s at %s\n", branding.Generator(), now.Format(TimestampLayout))

	if req.Count > 1 {
		fmt.Fprintf(w, "\nGreeting %d times:\n", req.Count)
		for i := 1; i <= req.Count; i++ {
			fmt.Fprintf(w, "%d: %s\n", i, greeting)
		}
	}
	return nil
}
