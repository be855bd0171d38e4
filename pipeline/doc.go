/*
Package pipeline wires markup parsing, style resolution, layout and
rasterization into a four-stage concurrent harness: one goroutine per
stage, each pair connected by a single-producer single-consumer
buffered channel carrying an owned handoff artifact (markup string →
*dom.Document → *styledtree.StyNode → *layout.Box), grounded in the
worker/channel idiom of github.com/npillmayer/fp's tree.pipeline — but
written as a new, fixed four-stage harness rather than reusing that
package's general N-stage auto-scaling abstraction, a poor fit for a
pipeline whose stage count and order never change.

Every artifact handed across a channel is owned outright by its
receiving stage — never a value shared or reference-counted across
goroutines — directly avoiding the Rc<T> Send-safety problem
original_source/src/thread.rs leaves as an open FIXME.

The rasterizer's output is written into a mutex-protected display-list
slot that an external reader (the window package's event loop) polls
once per frame; this is the pipeline's only resource shared outside
itself. Submit is non-blocking: under backpressure it drops the oldest
still-queued frame rather than blocking the caller, matching spec.md's
ingress contract. There is no cancellation; a stage always runs a
received job to completion.

Each submitted frame is tagged with a github.com/google/uuid value
generated at submission time and carried through every stage's job
struct and log line, so drops and reorderings are observable in the
logs even though the pipeline itself has no notion of frame identity
beyond this tag.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pipeline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'canopy.pipeline'.
func tracer() tracing.Trace {
	return tracing.Select("canopy.pipeline")
}
