package point

import (
	"io"
)

// Iterators follow the same shape as the rest of the module: a closure that
// hands back the next point, or io.EOF once exhausted.

// LineIterator walks the points of a Bresenham line from src to dest,
// including both ends. Work is done in int64 so lines spanning the whole
// int32 range do not overflow.
func LineIterator(src Point, dest Point) func() (*Point, error) {
	curX, curY := int64(src.X), int64(src.Y)
	endX, endY := int64(dest.X), int64(dest.Y)

	dx := abs64(endX - curX)
	dy := -abs64(endY - curY)
	sx := int64(1)
	if curX > endX {
		sx = -1
	}
	sy := int64(1)
	if curY > endY {
		sy = -1
	}
	e := dx + dy
	done := false

	return func() (*Point, error) {
		if done {
			return nil, io.EOF
		}
		p := &Point{X: int32(curX), Y: int32(curY)}
		if curX == endX && curY == endY {
			done = true
			return p, nil
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			curX += sx
		}
		if e2 <= dx {
			e += dx
			curY += sy
		}
		return p, nil
	}
}

// PlotLine collects every point from LineIterator.
func PlotLine(src Point, dest Point) []Point {
	var points []Point
	next := LineIterator(src, dest)
	for {
		p, err := next()
		if err != nil {
			break
		}
		points = append(points, *p)
	}
	return points
}

// RangeIterator walks the inclusive rectangle between min and max in
// row-major order. An empty rectangle (min beyond max on either axis)
// returns io.EOF straight away.
func RangeIterator(min Point, max Point) func() (*Point, error) {
	x, y := int64(min.X), int64(min.Y)
	empty := min.X > max.X || min.Y > max.Y
	return func() (*Point, error) {
		if empty || y > int64(max.Y) {
			return nil, io.EOF
		}
		p := &Point{X: int32(x), Y: int32(y)}
		x++
		if x > int64(max.X) {
			x = int64(min.X)
			y++
		}
		return p, nil
	}
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
