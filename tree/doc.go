/*
Package tree implements a small generic tree type with parent
back-references and concurrency-safe child-slice mutation.

Every higher-level tree canopy uses — the document tree, the styled
tree, the layout box tree — is built on tree.Node[T] (the styled tree
embeds it; the document and box trees hold one in a Self field) rather
than re-implementing
parent/child bookkeeping, so the concurrency guarantees (mutex-protected
child slices, safe concurrent AddChild/Isolate from multiple goroutines)
only have to be gotten right once.

Walker drives a concurrent top-down traversal (TopDown, synchronized on
a Promise()), used by the style resolver to build and then cascade the
styled tree: every node's action runs in its own goroutine, and an
action may add children of its own — those children are visited in
turn, which is how the resolver grows the styled tree's structure while
walking it.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'canopy.tree'.
func tracer() tracing.Trace {
	return tracing.Select("canopy.tree")
}
