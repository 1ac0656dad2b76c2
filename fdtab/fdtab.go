// Package fdtab inspects the descriptor table of the current process,
// mainly to spot descriptors leaked by unpaired redirections.
package fdtab

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Entry is one open descriptor and the target it references.
type Entry struct {
	Fd     int
	Target string
}

// Snapshot lists the descriptors currently open in this process,
// sorted by number. The handle the directory walk itself used is
// closed before entries resolve, so its stale slot is dropped.
func Snapshot() ([]Entry, error) {
	names, err := os.ReadDir(fdDir)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		fd, err := strconv.Atoi(name.Name())
		if err != nil {
			continue
		}
		target, err := os.Readlink(filepath.Join(fdDir, name.Name()))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			// Not a symlink on this platform (/dev/fd on darwin).
			target = "?"
		}
		entries = append(entries, Entry{Fd: fd, Target: target})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Fd < entries[j].Fd })
	return entries, nil
}

// Render draws the entries as a plain-text table.
func Render(entries []Entry) []byte {
	t, buffer := makeTable(entries)
	t.Render()
	return buffer.Bytes()
}

// RenderHTML draws the entries as an HTML table, optionally with a
// CSS class.
func RenderHTML(entries []Entry, css ...string) []byte {
	t, buffer := makeTable(entries)
	if len(css) != 0 {
		t.Style().HTML.CSSClass = css[0]
	}
	t.RenderHTML()
	return buffer.Bytes()
}

func makeTable(entries []Entry) (table.Writer, *bytes.Buffer) {
	t := table.NewWriter()
	buffer := bytes.NewBuffer([]byte{})
	t.SetOutputMirror(buffer)
	t.AppendHeader(table.Row{"fd", "target"})
	for _, entry := range entries {
		t.AppendRow(table.Row{entry.Fd, entry.Target})
	}
	t.SetStyle(table.StyleLight)
	return t, buffer
}
