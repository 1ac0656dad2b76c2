package redirect

import "errors"

var ErrRestored = errors.New("redirect: already restored")

// Redirection owns the preserved descriptor of one Begin call and
// restores it at most once, typically via defer.
type Redirection struct {
	Path     string
	tok      Token
	restored bool
}

// To begins a redirection of stderr into filepath and wraps the token
// in a guard so failure paths cannot leak the preserved descriptor.
func To(filepath string, appendMode bool) (*Redirection, error) {
	tok, err := Begin(filepath, appendMode)
	if err != nil {
		return nil, err
	}
	return &Redirection{Path: filepath, tok: tok}, nil
}

// Token exposes the preserved descriptor for callers that finish the
// protocol with End directly. The guard still owns it.
func (r *Redirection) Token() Token { return r.tok }

// Restore reverts stderr to its pre-Begin destination and releases
// the preserved descriptor. A second call returns ErrRestored.
func (r *Redirection) Restore() error {
	if r.restored {
		return ErrRestored
	}
	r.restored = true
	_, err := End(r.tok)
	return err
}
