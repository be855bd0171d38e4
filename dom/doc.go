/*
Package dom implements the document node model canopy parses markup into.

A Document wraps a tree of Nodes (element or text) plus the stylesheets
collected while parsing — the default stylesheet and any inline <style>
blocks. Nodes are built on top of the generic, concurrency-safe tree from
package tree, giving every node a non-owning parent back-reference that
downstream stages (styling, layout) rely on without needing their own
tree bookkeeping.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'canopy.markup'.
func tracer() tracing.Trace {
	return tracing.Select("canopy.markup")
}
