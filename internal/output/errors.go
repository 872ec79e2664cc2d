package output

import "errors"

var (
	ErrUnknownFormat       = errors.New("unknown output format")
	ErrWriterIsCommitted   = errors.New("cannot add new tokens to a writer once it's been flushed")
	ErrNonWriteableOutputs = errors.New("unable to write tokens to the output")
)
