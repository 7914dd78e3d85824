package collision

import "errors"

var (
	ErrUnknownLayer = errors.New("collision: unknown layer")
	ErrStaleHandle  = errors.New("collision: stale collider handle")
	ErrNilHandle    = errors.New("collision: empty collider handle")
)
