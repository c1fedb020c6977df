// Package point provides Point, an integer coordinate on a 2D cartesian plane
// that doubles as a displacement vector.
//
// Arithmetic on Point wraps on int32 overflow, the same two's complement
// behaviour Go gives plain int32 values. So New(math.MaxInt32, 0).Add(New(1, 0))
// is New(math.MinInt32, 0). Callers that need to detect overflow use the
// Checked* variants, which return ErrOverflow instead of wrapping.
package point

import (
	"errors"
	"fmt"
	"math"

	"github.com/kpfaulkner/point-go/util"
)

var (
	ErrOverflow     = errors.New("int32 overflow")
	ErrDivideByZero = errors.New("divide by zero")
)

// Origin is the point at (0, 0).
var Origin = Point{}

// Point is a 2D co-ordinate. It is a plain value: every operation returns a
// new Point and never modifies the receiver.
type Point struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

func New(x int32, y int32) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the component-wise difference.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Scale multiplies both co-ordinates by k.
func (p Point) Scale(k int32) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Dot returns p.X*o.X + p.Y*o.Y reduced mod 2^32.
func (p Point) Dot(o Point) int32 {
	return p.X*o.X + p.Y*o.Y
}

func (p Point) Equals(o Point) bool {
	return p == o
}

func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Div truncates towards zero. Dividing MinInt32 by -1 wraps to MinInt32.
func (p Point) Div(k int32) (Point, error) {
	if k == 0 {
		return Point{}, fmt.Errorf("dividing %s: %w", p, ErrDivideByZero)
	}
	return Point{X: p.X / k, Y: p.Y / k}, nil
}

func (p Point) CheckedAdd(o Point) (Point, error) {
	x, okX := util.CheckedAdd(p.X, o.X)
	y, okY := util.CheckedAdd(p.Y, o.Y)
	if !okX || !okY {
		return Point{}, overflowError("add", p, o)
	}
	return Point{X: x, Y: y}, nil
}

func (p Point) CheckedSub(o Point) (Point, error) {
	x, okX := util.CheckedSub(p.X, o.X)
	y, okY := util.CheckedSub(p.Y, o.Y)
	if !okX || !okY {
		return Point{}, overflowError("sub", p, o)
	}
	return Point{X: x, Y: y}, nil
}

func (p Point) CheckedScale(k int32) (Point, error) {
	x, okX := util.CheckedMul(p.X, k)
	y, okY := util.CheckedMul(p.Y, k)
	if !okX || !okY {
		return Point{}, fmt.Errorf("scale %s by %d: %w", p, k, ErrOverflow)
	}
	return Point{X: x, Y: y}, nil
}

// CheckedDot fails only when the exact dot product is outside int32, so
// products that overflow on their own but cancel in the sum are accepted.
func (p Point) CheckedDot(o Point) (int32, error) {
	d := int64(p.X)*int64(o.X) + int64(p.Y)*int64(o.Y)
	if d < math.MinInt32 || d > math.MaxInt32 {
		return 0, overflowError("dot", p, o)
	}
	return int32(d), nil
}

func (p Point) CheckedNeg() (Point, error) {
	x, okX := util.CheckedNeg(p.X)
	y, okY := util.CheckedNeg(p.Y)
	if !okX || !okY {
		return Point{}, fmt.Errorf("neg %s: %w", p, ErrOverflow)
	}
	return Point{X: x, Y: y}, nil
}

func overflowError(op string, a Point, b Point) error {
	return fmt.Errorf("%s %s, %s: %w", op, a, b, ErrOverflow)
}
