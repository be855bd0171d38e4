package layout

import "github.com/npillmayer/canopy/styledtree"

// widthSolution holds the seven width-axis unknowns the block width
// solver resolves: margin-left, border-left, padding-left, width,
// padding-right, border-right, margin-right.
type widthSolution struct {
	marginLeft, marginRight               float64
	borderLeft, borderRight               float64
	paddingLeft, paddingRight             float64
	width                                 float64
}

// calcBlockWidth solves a block box's width-axis box model against the
// width available in its containing block, matching
// original_source/src/layout.rs's calc_block_width — itself the classic
// toy-layout-engine algorithm (Matt Brubeck's "Let's build a browser
// engine"): 5 match arms, the last of which (width auto) exhaustively
// covers all 4 remaining combinations of auto margins, for 8 cases
// total, as spec.md §4.4.2 calls for.
//
// Overflow (the solved width/margins exceeding the container) is allowed
// to produce negative margins rather than being clamped — CSS permits
// negative margins, and spec.md's width solver does not ask for clamping.
func calcBlockWidth(sn *styledtree.StyNode, containingWidth float64) widthSolution {
	e := edgesOf(sn)

	widthPx, widthAuto := lengthOrAuto(sn, "width", "")

	total := e.marginLeft + e.marginRight + e.borderLeft + e.borderRight +
		e.paddingLeft + e.paddingRight + widthPx

	if !widthAuto && total > containingWidth {
		if e.marginLeftAuto {
			e.marginLeft = 0
			e.marginLeftAuto = false
		}
		if e.marginRightAuto {
			e.marginRight = 0
			e.marginRightAuto = false
		}
	}

	// recompute total after the overflow-clamp of auto margins, since an
	// auto margin forced to 0 changes the sum underflow is measured against
	total = e.marginLeft + e.marginRight + e.borderLeft + e.borderRight +
		e.paddingLeft + e.paddingRight + widthPx
	underflow := containingWidth - total

	switch {
	case !widthAuto && !e.marginLeftAuto && !e.marginRightAuto:
		// case 1: over-constrained — width is authoritative, the
		// right margin absorbs whatever is left over (or overflows).
		e.marginRight += underflow
	case !widthAuto && !e.marginLeftAuto && e.marginRightAuto:
		// case 2
		e.marginRight = underflow
	case !widthAuto && e.marginLeftAuto && !e.marginRightAuto:
		// case 3
		e.marginLeft = underflow
	case !widthAuto && e.marginLeftAuto && e.marginRightAuto:
		// case 4: both margins auto — split the remainder evenly
		e.marginLeft = underflow / 2
		e.marginRight = underflow / 2
	default:
		// cases 5-8: width is auto. Any auto margin is first pinned to
		// 0, then width absorbs the remaining space — or, if the fixed
		// edges alone already overflow the container, width collapses
		// to 0 and the right margin absorbs the (negative) underflow.
		if e.marginLeftAuto {
			e.marginLeft = 0
		}
		if e.marginRightAuto {
			e.marginRight = 0
		}
		if underflow >= 0 {
			widthPx = underflow
		} else {
			widthPx = 0
			e.marginRight += underflow
		}
	}

	return widthSolution{
		marginLeft: e.marginLeft, marginRight: e.marginRight,
		borderLeft: e.borderLeft, borderRight: e.borderRight,
		paddingLeft: e.paddingLeft, paddingRight: e.paddingRight,
		width: widthPx,
	}
}
