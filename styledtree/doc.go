/*
Package styledtree builds and cascades canopy's styled tree: a copy of
the document tree (with the <head> subtree pruned) where every node
carries its computed style — the CSS property map resulting from
matching every stylesheet rule against the node, ordering matches by
specificity, applying them in that order, overlaying any inline style=""
declarations last, and falling back to inherited values from the parent
for inheritable properties.

The cascade algorithm (specificity triple, stable sort, document-order
tie-break, inline overlay, restricted inheritance) is grounded on
github.com/npillmayer/fp's dom/style/cssom/cssom.go and
dom/style/css/cascade.go, simplified from the teacher's topic-grouped
PropertyMap to a flat map[string]style.Value per node, matching
spec.md's flat per-node computed-style model.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'canopy.styledtree'.
func tracer() tracing.Trace {
	return tracing.Select("canopy.styledtree")
}

// InheritableProperties is the set of CSS properties that participate
// in inheritance when not set locally on a node. spec.md keeps this set
// minimal: color is the only property this implementation inherits.
var InheritableProperties = map[string]bool{
	"color": true,
}

// IsInheritable reports whether prop inherits from an ancestor's
// computed style when not set locally, mirroring the teacher's
// style.IsCascading predicate.
func IsInheritable(prop string) bool {
	return InheritableProperties[prop]
}
