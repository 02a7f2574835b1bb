package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aymanbagabas/go-osc52/v2"
)

// OSC52Clipboard writes an OSC 52 escape sequence so the terminal emulator
// places the text on the system clipboard. It works over SSH as long as the
// terminal supports OSC 52.
type OSC52Clipboard struct {
	Out  io.Writer
	Tmux bool
}

// NewOSC52Clipboard returns a clipboard writing to out, or stderr when out is
// nil so stdout stays clean for artifacts.
func NewOSC52Clipboard(out io.Writer) *OSC52Clipboard {
	if out == nil {
		out = os.Stderr
	}
	return &OSC52Clipboard{Out: out}
}

// Copy implements Clipboard.
func (c *OSC52Clipboard) Copy(text string) error {
	seq := osc52.New(text)
	if c.Tmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(c.Out); err != nil {
		return fmt.Errorf("write osc52 sequence: %w", err)
	}
	return nil
}

// DirSaver writes artifacts into a directory, creating it on demand.
type DirSaver struct {
	Dir string
}

// Save implements Saver. Filenames must be plain names without directories.
func (s DirSaver) Save(filename, content string) error {
	if filename == "" || filepath.Base(filename) != filename {
		return fmt.Errorf("invalid artifact name %q", filename)
	}

	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
