package point

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

var ErrParse = errors.New("invalid point")

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Parse reads a point written as "(x, y)" or "x,y". Surrounding whitespace is
// ignored and both co-ordinates must fit in an int32.
func Parse(s string) (Point, error) {
	str := strings.TrimSpace(s)
	if strings.HasPrefix(str, "(") != strings.HasSuffix(str, ")") {
		return Point{}, fmt.Errorf("%q: unbalanced parentheses: %w", s, ErrParse)
	}
	str = strings.TrimSuffix(strings.TrimPrefix(str, "("), ")")

	parts := strings.Split(str, ",")
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("%q: expected two co-ordinates: %w", s, ErrParse)
	}

	var coords [2]int32
	for i, part := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return Point{}, fmt.Errorf("%q: %v: %w", s, err, ErrParse)
		}
		coords[i] = int32(v)
	}
	return Point{X: coords[0], Y: coords[1]}, nil
}

// FromXY builds a point from any integer pair. Values outside int32 are
// truncated, i.e. they wrap.
func FromXY[T constraints.Integer](x T, y T) Point {
	return Point{X: int32(x), Y: int32(y)}
}

func (p Point) XY() (int32, int32) {
	return p.X, p.Y
}
