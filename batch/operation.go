package batch

import (
	"errors"
	"fmt"

	"github.com/kpfaulkner/point-go/options"
	"github.com/kpfaulkner/point-go/point"
)

const (
	OpAdd         = "add"
	OpSub         = "sub"
	OpScale       = "scale"
	OpDot         = "dot"
	OpEquals      = "equals"
	OpNeg         = "neg"
	OpDiv         = "div"
	OpRotateCW    = "rotate_cw"
	OpRotateACW   = "rotate_acw"
	OpRotate180   = "rotate_180"
	OpDist        = "dist"
	OpDistSquared = "dist_squared"
	OpManhattan   = "manhattan"
	OpLine        = "line"
)

var (
	ErrUnknownOp      = errors.New("unknown operation")
	ErrMissingOperand = errors.New("missing operand")
)

// Operation is one entry of a batch document. B and K are only needed by the
// operations that take a second point or a scalar.
type Operation struct {
	Op string       `json:"op"`
	A  point.Point  `json:"a"`
	B  *point.Point `json:"b,omitempty"`
	K  *int32       `json:"k,omitempty"`
}

// Result holds whichever of the value fields the operation produces.
type Result struct {
	Op     string        `json:"op"`
	Point  *point.Point  `json:"point,omitempty"`
	Scalar *int32        `json:"scalar,omitempty"`
	Float  *float64      `json:"float,omitempty"`
	Bool   *bool         `json:"bool,omitempty"`
	Points []point.Point `json:"points,omitempty"`
	Error  string        `json:"error,omitempty"`
}

// Apply evaluates a single operation. With opts.Checked set, add, sub,
// scale, dot and neg report overflow instead of wrapping.
func Apply(opts *options.CalcOptions, op Operation) (Result, error) {
	res := Result{Op: op.Op}
	checked := opts != nil && opts.Checked

	b := func() (point.Point, error) {
		if op.B == nil {
			return point.Point{}, fmt.Errorf("%s needs b: %w", op.Op, ErrMissingOperand)
		}
		return *op.B, nil
	}
	k := func() (int32, error) {
		if op.K == nil {
			return 0, fmt.Errorf("%s needs k: %w", op.Op, ErrMissingOperand)
		}
		return *op.K, nil
	}

	switch op.Op {
	case OpAdd, OpSub, OpDot, OpEquals, OpDist, OpDistSquared, OpManhattan, OpLine:
		other, err := b()
		if err != nil {
			return res, err
		}
		return applyBinary(res, op.Op, op.A, other, checked)

	case OpScale, OpDiv:
		scalar, err := k()
		if err != nil {
			return res, err
		}
		var p point.Point
		switch {
		case op.Op == OpDiv:
			p, err = op.A.Div(scalar)
		case checked:
			p, err = op.A.CheckedScale(scalar)
		default:
			p = op.A.Scale(scalar)
		}
		if err != nil {
			return res, err
		}
		res.Point = &p

	case OpNeg:
		p := op.A.Neg()
		if checked {
			var err error
			if p, err = op.A.CheckedNeg(); err != nil {
				return res, err
			}
		}
		res.Point = &p

	case OpRotateCW:
		p := op.A.Rotate90CW()
		res.Point = &p
	case OpRotateACW:
		p := op.A.Rotate90ACW()
		res.Point = &p
	case OpRotate180:
		p := op.A.Rotate180()
		res.Point = &p

	default:
		return res, fmt.Errorf("%q: %w", op.Op, ErrUnknownOp)
	}
	return res, nil
}

func applyBinary(res Result, op string, a point.Point, b point.Point, checked bool) (Result, error) {
	var err error
	switch op {
	case OpAdd, OpSub:
		var p point.Point
		switch {
		case checked && op == OpAdd:
			p, err = a.CheckedAdd(b)
		case checked:
			p, err = a.CheckedSub(b)
		case op == OpAdd:
			p = a.Add(b)
		default:
			p = a.Sub(b)
		}
		if err != nil {
			return res, err
		}
		res.Point = &p

	case OpDot:
		d := a.Dot(b)
		if checked {
			if d, err = a.CheckedDot(b); err != nil {
				return res, err
			}
		}
		res.Scalar = &d

	case OpEquals:
		eq := a.Equals(b)
		res.Bool = &eq

	case OpDist:
		d := a.Dist(b)
		res.Float = &d

	case OpDistSquared:
		d := a.DistSquared(b)
		res.Scalar = &d

	case OpManhattan:
		d := a.ManhattanDist(b)
		res.Scalar = &d

	case OpLine:
		res.Points = point.PlotLine(a, b)
	}
	return res, nil
}
