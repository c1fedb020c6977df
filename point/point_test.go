package point

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomPoints(n int) []Point {
	r := rand.New(rand.NewSource(42))
	points := []Point{
		Origin,
		New(math.MaxInt32, math.MaxInt32),
		New(math.MinInt32, math.MinInt32),
		New(math.MaxInt32, math.MinInt32),
		New(-1, 1),
	}
	for len(points) < n {
		points = append(points, New(int32(r.Uint32()), int32(r.Uint32())))
	}
	return points
}

func TestNew(t *testing.T) {
	p := New(3, -4)
	assert.Equal(t, int32(3), p.X)
	assert.Equal(t, int32(-4), p.Y)
	assert.Equal(t, Point{}, Origin)
}

func TestConcreteCases(t *testing.T) {
	assert.Equal(t, New(4, 6), New(1, 2).Add(New(3, 4)))
	assert.Equal(t, New(3, 4), New(5, 5).Sub(New(2, 1)))
	assert.Equal(t, New(8, 12), New(2, 3).Scale(4))
	assert.Equal(t, int32(0), New(1, 0).Dot(New(0, 1)))
	assert.Equal(t, int32(23), New(2, 3).Dot(New(4, 5)))
}

func TestEquals(t *testing.T) {
	tests := []struct {
		a        Point
		b        Point
		expected bool
	}{
		{New(1, 2), New(1, 2), true},
		{New(1, 2), New(2, 1), false},
		{New(1, 2), New(1, 3), false},
		{Origin, New(0, 0), true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.a.Equals(tt.b), "%s.Equals(%s)", tt.a, tt.b)
		assert.Equal(t, tt.expected, tt.a == tt.b)
	}
}

func TestAddProperties(t *testing.T) {
	points := randomPoints(50)
	for i, a := range points {
		assert.Equal(t, a, a.Add(Origin), "identity for %s", a)
		assert.Equal(t, Origin, a.Sub(a), "%s - itself", a)
		for _, b := range points[i:] {
			assert.Equal(t, a.Add(b), b.Add(a), "commutativity %s %s", a, b)
			for _, c := range points[:10] {
				assert.Equal(t, a.Add(b).Add(c), a.Add(b.Add(c)), "associativity %s %s %s", a, b, c)
			}
		}
	}
}

func TestDotProperties(t *testing.T) {
	points := randomPoints(50)
	scalars := []int32{0, 1, -1, 2, 7, -13, math.MaxInt32, math.MinInt32}
	for i, a := range points {
		for _, b := range points[i:] {
			assert.Equal(t, a.Dot(b), b.Dot(a), "dot commutativity %s %s", a, b)
		}
		// wrapping arithmetic is a ring, so this holds even when it overflows
		for _, k := range scalars {
			assert.Equal(t, k*a.Dot(a), a.Scale(k).Dot(a), "scale %s by %d", a, k)
		}
	}
}

func TestScaleDotWithinRange(t *testing.T) {
	p := New(3, -7)
	for k := int32(-100); k <= 100; k++ {
		d, err := p.Scale(k).CheckedDot(p)
		require.NoError(t, err)
		assert.Equal(t, k*p.Dot(p), d)
	}
}

func TestOverflowWraps(t *testing.T) {
	assert.Equal(t, New(math.MinInt32, 0), New(math.MaxInt32, 0).Add(New(1, 0)))
	assert.Equal(t, New(0, math.MaxInt32), New(0, math.MinInt32).Sub(New(0, 1)))
	assert.Equal(t, New(-2, 0), New(math.MaxInt32, 0).Scale(2))
	assert.Equal(t, New(math.MinInt32, 0), New(math.MinInt32, 0).Neg())

	// (2^16)^2 + (2^16)^2 = 2^33, which is 0 mod 2^32
	big := New(1<<16, 1<<16)
	assert.Equal(t, int32(0), big.Dot(big))
}

func TestCheckedOverflow(t *testing.T) {
	_, err := New(math.MaxInt32, 0).CheckedAdd(New(1, 0))
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = New(0, math.MinInt32).CheckedSub(New(0, 1))
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = New(1, math.MaxInt32).CheckedScale(2)
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = New(1<<16, 1<<16).CheckedDot(New(1<<16, 1<<16))
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = New(math.MinInt32, 0).CheckedNeg()
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestCheckedSuccess(t *testing.T) {
	p, err := New(1, 2).CheckedAdd(New(3, 4))
	require.NoError(t, err)
	assert.Equal(t, New(4, 6), p)

	p, err = New(5, 5).CheckedSub(New(2, 1))
	require.NoError(t, err)
	assert.Equal(t, New(3, 4), p)

	p, err = New(2, 3).CheckedScale(4)
	require.NoError(t, err)
	assert.Equal(t, New(8, 12), p)

	d, err := New(2, 3).CheckedDot(New(4, 5))
	require.NoError(t, err)
	assert.Equal(t, int32(23), d)

	p, err = New(2, -3).CheckedNeg()
	require.NoError(t, err)
	assert.Equal(t, New(-2, 3), p)
}

func TestCheckedDotCancellingProducts(t *testing.T) {
	// each product overflows on its own but the sum is 0
	a := New(1<<16, 1<<16)
	b := New(1<<16, -(1 << 16))
	d, err := a.CheckedDot(b)
	require.NoError(t, err)
	assert.Equal(t, int32(0), d)
}

func TestDiv(t *testing.T) {
	p, err := New(7, -7).Div(2)
	require.NoError(t, err)
	assert.Equal(t, New(3, -3), p)

	p, err = New(math.MinInt32, 4).Div(-1)
	require.NoError(t, err)
	assert.Equal(t, New(math.MinInt32, -4), p)

	_, err = New(1, 1).Div(0)
	assert.ErrorIs(t, err, ErrDivideByZero)
}
