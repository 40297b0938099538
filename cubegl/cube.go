package cubegl

// Unit cube geometry in scaled model space. Both tables are fixed at
// program start and never mutated.
var cubeVertices = [8]Point3{
	{-Scale, -Scale, -Scale}, // 0: back bottom left
	{Scale, -Scale, -Scale},  // 1: back bottom right
	{Scale, Scale, -Scale},   // 2: back top right
	{-Scale, Scale, -Scale},  // 3: back top left
	{-Scale, -Scale, Scale},  // 4: front bottom left
	{Scale, -Scale, Scale},   // 5: front bottom right
	{Scale, Scale, Scale},    // 6: front top right
	{-Scale, Scale, Scale},   // 7: front top left
}

// edgeGroup selects the draw color for an edge.
type edgeGroup uint8

const (
	groupBack edgeGroup = iota
	groupFront
	groupLink
)

func (g edgeGroup) color() ColorIndex {
	switch g {
	case groupBack:
		return ColorRed
	case groupFront:
		return ColorGreen
	default:
		return ColorBlue
	}
}

// edge joins two vertices by index into cubeVertices.
type edge struct {
	a, b  int
	group edgeGroup
}

var cubeEdges = [12]edge{
	// Back face.
	{0, 1, groupBack}, {1, 2, groupBack}, {2, 3, groupBack}, {3, 0, groupBack},
	// Front face.
	{4, 5, groupFront}, {5, 6, groupFront}, {6, 7, groupFront}, {7, 4, groupFront},
	// Connecting edges.
	{0, 4, groupLink}, {1, 5, groupLink}, {2, 6, groupLink}, {3, 7, groupLink},
}
