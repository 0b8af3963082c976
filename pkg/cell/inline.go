package cell

// EdgeKind is the per-edge state an inline cell records for one side of
// one axis.
type EdgeKind int

const (
	EdgeUnvisited EdgeKind = iota
	EdgePassage
	EdgeWall
	EdgeBoundary
)

// String implements fmt.Stringer.
func (e EdgeKind) String() string {
	switch e {
	case EdgeUnvisited:
		return "UNVISITED"
	case EdgePassage:
		return "PASSAGE"
	case EdgeWall:
		return "WALL"
	case EdgeBoundary:
		return "BOUNDARY"
	default:
		return "INVALID"
	}
}

// AsConnection maps an EdgeKind to the ConnectionType it represents.
func (e EdgeKind) AsConnection() ConnectionType {
	switch e {
	case EdgePassage:
		return ConnPassage
	case EdgeWall:
		return ConnWall
	case EdgeBoundary:
		return ConnBoundary
	default:
		return ConnUnvisited
	}
}

// Side indexes the two edges an axis contributes to a cell: the
// negative-side edge (0) and the positive-side edge (1).
type Side int

const (
	// SideNeg is edges[axis][0], the negative-side edge along axis.
	SideNeg Side = 0
	// SidePos is edges[axis][1], the positive-side edge along axis.
	SidePos Side = 1
)

// InlineCellValue is the state of one inline cell: a cell class where
// each cell independently stores the state of all of its own edges, one
// pair (negative-side, positive-side) per axis. Default-constructed with
// every edge UNVISITED, unmarked.
type InlineCellValue struct {
	// Edges is indexed [axis][side]; side 0 is negative, side 1 is
	// positive (see Side).
	Edges  [][2]EdgeKind
	marked bool
}

// NewInlineCellValue returns a default all-UNVISITED, unmarked cell value
// for a space of the given dimension.
func NewInlineCellValue(dim int) InlineCellValue {
	return InlineCellValue{Edges: make([][2]EdgeKind, dim)}
}

// IsFullyVisited implements Value: true iff no edge remains UNVISITED.
func (v InlineCellValue) IsFullyVisited() bool {
	for _, pair := range v.Edges {
		if pair[SideNeg] == EdgeUnvisited || pair[SidePos] == EdgeUnvisited {
			return false
		}
	}
	return true
}

// Marked implements Value.
func (v InlineCellValue) Marked() bool { return v.marked }

// SetMarked implements Value.
func (v *InlineCellValue) SetMarked(m bool) { v.marked = m }

// Edge returns the edge kind on the given axis and side.
func (v InlineCellValue) Edge(axis int, side Side) EdgeKind {
	return v.Edges[axis][side]
}

// SetEdge sets the edge kind on the given axis and side.
func (v *InlineCellValue) SetEdge(axis int, side Side, kind EdgeKind) {
	v.Edges[axis][side] = kind
}
