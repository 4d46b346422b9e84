package async

import "errors"

// ErrTimeout is returned by AwaitWithTimeout when the computation does not
// finish within the given duration.
var ErrTimeout = errors.New("async: timed out waiting for future completion")
