package point

import (
	"math"

	"github.com/kpfaulkner/point-go/util"
)

// Rotate90CW rotates about the origin by 90 degrees clockwise.
func (p Point) Rotate90CW() Point {
	return Point{X: p.Y, Y: -p.X}
}

// Rotate90ACW rotates about the origin by 90 degrees anti-clockwise.
func (p Point) Rotate90ACW() Point {
	return Point{X: -p.Y, Y: p.X}
}

func (p Point) Rotate180() Point {
	return p.Neg()
}

// Dir maps the four unit points to 0..3 for indexing a 4 element collection:
// south (0,-1) is 0, west (-1,0) is 1, north (0,1) is 2 and east (1,0) is 3.
// Any other point gives an arbitrary value.
func (p Point) Dir() int {
	d := 2*int64(p.X) + int64(p.Y) + 1
	if d < 0 {
		d = -d
	}
	return int(d)
}

// InvDir is the index two away from Dir, i.e. the opposite direction.
func (p Point) InvDir() int {
	dir := p.Dir()
	if dir < 2 {
		return dir + 2
	}
	return dir - 2
}

// DistSquared is the squared euclidean distance. It wraps on overflow.
func (p Point) DistSquared(o Point) int32 {
	d := p.Sub(o)
	return d.Dot(d)
}

// Dist is worked out in float64 from the exact differences, so unlike
// DistSquared it never wraps.
func (p Point) Dist(o Point) float64 {
	dx := float64(int64(p.X) - int64(o.X))
	dy := float64(int64(p.Y) - int64(o.Y))
	return math.Hypot(dx, dy)
}

func (p Point) ManhattanDist(o Point) int32 {
	d := p.Sub(o)
	return util.Abs(d.X) + util.Abs(d.Y)
}

// FromIndex converts a row-major index into a co-ordinate for a grid of the
// given width. The index is assumed to be inside the grid.
func FromIndex(index int, width int) Point {
	return Point{
		X: int32(index % width),
		Y: int32(index / width),
	}
}

// Index is the inverse of FromIndex.
func (p Point) Index(width int) int {
	return int(p.Y)*width + int(p.X)
}

// InBounds reports whether 0 <= X < maxX and 0 <= Y < maxY.
func (p Point) InBounds(maxX int32, maxY int32) bool {
	return 0 <= p.X && p.X < maxX && 0 <= p.Y && p.Y < maxY
}

// AllAdjacent returns the four orthogonal neighbours, starting east and
// going clockwise: east, south, west, north.
func (p Point) AllAdjacent() []Point {
	points := make([]Point, 0, 4)
	offset := Point{X: 1, Y: 0}
	for i := 0; i < 4; i++ {
		points = append(points, p.Add(offset))
		offset = offset.Rotate90CW()
	}
	return points
}

// Adjacent is AllAdjacent with any neighbour outside [0,maxX) x [0,maxY)
// replaced by nil. The result always has four entries in AllAdjacent order.
func (p Point) Adjacent(maxX int32, maxY int32) []*Point {
	points := make([]*Point, 0, 4)
	for _, n := range p.AllAdjacent() {
		n := n
		if n.InBounds(maxX, maxY) {
			points = append(points, &n)
		} else {
			points = append(points, nil)
		}
	}
	return points
}

// AllAdjacentDiagonal returns all eight neighbours including diagonals.
func (p Point) AllAdjacentDiagonal() []Point {
	points := make([]Point, 0, 8)
	for x := int32(-1); x <= 1; x++ {
		for y := int32(-1); y <= 1; y++ {
			if x != 0 || y != 0 {
				points = append(points, Point{X: p.X + x, Y: p.Y + y})
			}
		}
	}
	return points
}
