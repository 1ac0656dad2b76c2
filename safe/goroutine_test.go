package safe

import (
	"errors"
	"strings"
	"testing"
)

func TestTry(t *testing.T) {
	tests := []struct {
		name    string
		args    func()
		wantErr bool
	}{
		{name: "panic", args: func() {
			panic("panic")
		}, wantErr: true},
		{name: "no problem", args: func() {
		}, wantErr: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Try(tt.args); (err != nil) != tt.wantErr {
				t.Errorf("Try() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTryE(t *testing.T) {
	tests := []struct {
		name    string
		args    func() error
		wantErr bool
	}{
		{name: "panic", args: func() error {
			panic("panic")
		}, wantErr: true},
		{name: "error", args: func() error {
			return errors.New("error")
		}, wantErr: true},
		{name: "no problem", args: func() error {
			return nil
		}, wantErr: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := TryE(tt.args); (err != nil) != tt.wantErr {
				t.Errorf("TryE() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestWaitGroup_WaitAndRecover(t *testing.T) {
	t.Run("no panics or errors", func(t *testing.T) {
		wg := NewWaitGroup()
		wg.Go(func() {})
		wg.GoE(func() error { return nil })
		if err := wg.WaitAndRecover(); err != nil {
			t.Errorf("expected no error, got: %v", err)
		}
	})

	t.Run("error only", func(t *testing.T) {
		wg := NewWaitGroup()
		expectedErr := errors.New("test error")
		wg.GoE(func() error { return expectedErr })
		err := wg.WaitAndRecover()
		if !errors.Is(err, expectedErr) {
			t.Errorf("expected %v, got: %v", expectedErr, err)
		}
	})

	t.Run("panic only", func(t *testing.T) {
		wg := NewWaitGroup()
		wg.Go(func() { panic("test panic") })
		err := wg.WaitAndRecover()
		if err == nil || !strings.Contains(err.Error(), "panic: test panic") {
			t.Errorf("expected panic error, got: %v", err)
		}
	})
}

func TestGoAndWait(t *testing.T) {
	t.Run("normal run", func(t *testing.T) {
		if err := GoAndWait(func() {}); err != nil {
			t.Errorf("expected no error, got: %v", err)
		}
	})

	t.Run("single panic", func(t *testing.T) {
		if err := GoAndWait(func() { panic("test panic") }); err == nil {
			t.Fatalf("expected error, got: %v", err)
		}
	})

	t.Run("mixed panics", func(t *testing.T) {
		err := GoAndWait(
			func() { panic("panic1") },
			func() {},
			func() { panic("panic2") },
		)
		if err == nil {
			t.Fatalf("expected error, got: %v", err)
		}
	})
}
