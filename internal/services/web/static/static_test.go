package static

import (
	"io/fs"
	"strings"
	"testing"
)

func TestEmbedsAssets(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"app.css", "sealbar.js"} {
		if _, err := fs.Stat(FS, name); err != nil {
			t.Fatalf("fs.Stat(%q) error = %v", name, err)
		}
	}
}

func TestTypewriterMovesCursorIntoFrameSlot(t *testing.T) {
	t.Parallel()

	script, err := fs.ReadFile(FS, "sealbar.js")
	if err != nil {
		t.Fatalf("fs.ReadFile() error = %v", err)
	}
	for _, marker := range []string{"words[frame.cursor]", "slot.appendChild(cursor)", `classList.add("done")`} {
		if !strings.Contains(string(script), marker) {
			t.Fatalf("sealbar.js missing %q", marker)
		}
	}
}
