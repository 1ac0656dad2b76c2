package safe

import (
	"context"
	"errors"

	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"
)

// WaitGroup runs goroutines that may fail or panic and joins their
// errors on wait. The context is canceled on the first error.
type WaitGroup struct {
	ctx    context.Context
	cancel context.CancelFunc
	conc.WaitGroup
	errs []error

	Recovered *panics.Recovered
}

func NewWaitGroup() *WaitGroup {
	return NewWaitGroupContext(context.Background())
}
func NewWaitGroupContext(ctx context.Context) *WaitGroup {
	ctx, cancel := context.WithCancel(ctx)
	return &WaitGroup{
		ctx:    ctx,
		cancel: cancel,
	}
}

func (g *WaitGroup) Go(f func()) {
	g.WaitGroup.Go(f)
}
func (g *WaitGroup) GoE(f func() error) {
	g.WaitGroup.Go(func() {
		if err := f(); err != nil {
			g.errs = append(g.errs, err)
			g.cancel()
		}
	})
}

// WaitAndRecover blocks until every goroutine returned, turning any
// panic into an error joined with the collected ones.
func (g *WaitGroup) WaitAndRecover() error {
	g.Recovered = g.WaitGroup.WaitAndRecover()
	if g.Recovered != nil {
		g.errs = append(g.errs, g.Recovered.AsError())
	}
	if g.errs != nil {
		return errors.Join(g.errs...)
	}
	return nil
}

// GoAndWait runs fs concurrently and reports the first panic as an
// error instead of crashing the process.
func GoAndWait(fs ...func()) error {
	group := NewWaitGroup()
	for _, fn := range fs {
		group.Go(fn)
	}
	return group.WaitAndRecover()
}

// Try runs f and converts a panic into an error.
func Try(f func()) error {
	var c panics.Catcher
	c.Try(f)
	if r := c.Recovered(); r != nil {
		return r.AsError()
	}
	return nil
}

// TryE runs f and converts either its error or a panic into an error.
func TryE(f func() error) error {
	var err error
	if perr := Try(func() { err = f() }); perr != nil {
		return perr
	}
	return err
}
