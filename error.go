package ranges

import "errors"

var (
	ErrInvalidChunkSize = errors.New("invalid chunk size")
	ErrNegativeCount    = errors.New("negative count")
	ErrPastEnd          = errors.New("past end")
	ErrOutOfRange       = errors.New("out of range")
	ErrOverflow         = errors.New("overflow")
	ErrUnevenDistance   = errors.New("uneven distance")
	ErrStaleChunk       = errors.New("stale chunk")
	ErrMisaligned       = errors.New("misaligned chunk offset")
)
