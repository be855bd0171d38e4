package pipeline

import "errors"

// ErrChannelClosed is returned by Submit once Shutdown has closed the
// ingress channel; no further frames can be submitted afterward.
var ErrChannelClosed = errors.New("pipeline: channel closed")
