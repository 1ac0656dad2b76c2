package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kurosann/fdkit/redirect"
)

// CapturePanics routes the process stderr into <dir>/<name>_crash.log
// so runtime panics, and writes that bypass the logger entirely, end
// up on disk. The file is opened in append mode and each capture
// starts with a pid banner line. Restoring the returned redirection
// reverts stderr to its previous destination.
func CapturePanics(dir, name string) (*redirect.Redirection, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	r, err := redirect.To(filepath.Join(dir, name+"_crash.log"), true)
	if err != nil {
		return nil, err
	}
	// stderr already points at the crash file, so the banner lands there.
	_, _ = fmt.Fprintf(os.Stderr, "==========================> pid: %d <========================== %s\n",
		os.Getpid(), time.Now().Format(time.DateTime))
	return r, nil
}
