//go:build !linux

package pointer

import "context"

// Start always fails outside Linux; mouse input still reaches the tracker
// through SDL.
func (r *TouchReader) Start(ctx context.Context) error {
	return ErrUnsupported
}
