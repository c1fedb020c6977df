// Package script exposes Point to Lua scripts via gopher-lua.
//
// Scripts get a global table "point" with constructors and every point value
// is a userdata carrying methods and the +, -, unary minus, == and tostring
// metamethods:
//
//	local a = point.new(1, 2)
//	local b = a + point.new(3, 4)
//	return b:scale(2)
package script

import (
	"fmt"
	"math"

	"github.com/kpfaulkner/point-go/options"
	"github.com/kpfaulkner/point-go/point"
	log "github.com/sirupsen/logrus"
	lua "github.com/yuin/gopher-lua"
)

const luaPointTypeName = "point"

// Engine wraps a single Lua state. It is not safe for concurrent use.
type Engine struct {
	luaState *lua.LState
	opts     *options.CalcOptions
}

func NewEngine(opts *options.CalcOptions) *Engine {
	e := &Engine{
		luaState: lua.NewState(),
		opts:     options.NewCalcOptions(opts),
	}
	e.opts.ApplyLogLevel()
	e.registerPointType()
	return e
}

func (e *Engine) Close() {
	if e.luaState != nil {
		e.luaState.Close()
	}
}

// Run executes a full Lua chunk.
func (e *Engine) Run(code string) error {
	if err := e.luaState.DoString(code); err != nil {
		return fmt.Errorf("script failed: %w", err)
	}
	return nil
}

// Eval evaluates a single Lua expression that must produce a point.
func (e *Engine) Eval(expr string) (point.Point, error) {
	L := e.luaState
	if err := L.DoString("return " + expr); err != nil {
		return point.Point{}, fmt.Errorf("failed to evaluate '%s': %w", expr, err)
	}
	result := L.Get(-1)
	L.Pop(1)

	ud, ok := result.(*lua.LUserData)
	if !ok {
		return point.Point{}, fmt.Errorf("expression '%s' did not return a point, got %s", expr, result.Type())
	}
	p, ok := ud.Value.(point.Point)
	if !ok {
		return point.Point{}, fmt.Errorf("expression '%s' did not return a point", expr)
	}
	return p, nil
}

func (e *Engine) registerPointType() {
	L := e.luaState

	mt := L.NewTypeMetatable(luaPointTypeName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"x":          e.pointX,
		"y":          e.pointY,
		"add":        e.pointAdd,
		"sub":        e.pointSub,
		"scale":      e.pointScale,
		"dot":        e.pointDot,
		"equals":     e.pointEquals,
		"neg":        e.pointNeg,
		"rotate_cw":  e.pointRotateCW,
		"rotate_acw": e.pointRotateACW,
		"dist":       e.pointDist,
		"manhattan":  e.pointManhattan,
	}))
	L.SetField(mt, "__add", L.NewFunction(e.pointAdd))
	L.SetField(mt, "__sub", L.NewFunction(e.pointSub))
	L.SetField(mt, "__unm", L.NewFunction(e.pointNeg))
	L.SetField(mt, "__eq", L.NewFunction(e.pointEquals))
	L.SetField(mt, "__tostring", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LString(e.checkPoint(L, 1).String()))
		return 1
	}))

	L.SetGlobal("point", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"new": func(L *lua.LState) int {
			return e.push(L, point.New(e.checkInt32(L, 1), e.checkInt32(L, 2)))
		},
		"origin": func(L *lua.LState) int {
			return e.push(L, point.Origin)
		},
		"parse": func(L *lua.LState) int {
			p, err := point.Parse(L.CheckString(1))
			if err != nil {
				L.RaiseError("%v", err)
				return 0
			}
			return e.push(L, p)
		},
	}))
}

func (e *Engine) push(L *lua.LState, p point.Point) int {
	ud := L.NewUserData()
	ud.Value = p
	L.SetMetatable(ud, L.GetTypeMetatable(luaPointTypeName))
	L.Push(ud)
	return 1
}

func (e *Engine) checkPoint(L *lua.LState, n int) point.Point {
	ud := L.CheckUserData(n)
	if p, ok := ud.Value.(point.Point); ok {
		return p
	}
	L.ArgError(n, "point expected")
	return point.Point{}
}

func (e *Engine) checkInt32(L *lua.LState, n int) int32 {
	v := float64(L.CheckNumber(n))
	if v != math.Trunc(v) {
		L.ArgError(n, "integer expected")
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		L.ArgError(n, "value out of int32 range")
	}
	return int32(v)
}

// raiseOnError turns an arithmetic error into a Lua error so checked mode
// aborts the script.
func (e *Engine) raiseOnError(L *lua.LState, err error) {
	if err != nil {
		log.Debugf("lua point operation failed: %v", err)
		L.RaiseError("%v", err)
	}
}

func (e *Engine) pointX(L *lua.LState) int {
	L.Push(lua.LNumber(e.checkPoint(L, 1).X))
	return 1
}

func (e *Engine) pointY(L *lua.LState) int {
	L.Push(lua.LNumber(e.checkPoint(L, 1).Y))
	return 1
}

func (e *Engine) pointAdd(L *lua.LState) int {
	a, b := e.checkPoint(L, 1), e.checkPoint(L, 2)
	if e.opts.Checked {
		p, err := a.CheckedAdd(b)
		e.raiseOnError(L, err)
		return e.push(L, p)
	}
	return e.push(L, a.Add(b))
}

func (e *Engine) pointSub(L *lua.LState) int {
	a, b := e.checkPoint(L, 1), e.checkPoint(L, 2)
	if e.opts.Checked {
		p, err := a.CheckedSub(b)
		e.raiseOnError(L, err)
		return e.push(L, p)
	}
	return e.push(L, a.Sub(b))
}

func (e *Engine) pointScale(L *lua.LState) int {
	p, k := e.checkPoint(L, 1), e.checkInt32(L, 2)
	if e.opts.Checked {
		scaled, err := p.CheckedScale(k)
		e.raiseOnError(L, err)
		return e.push(L, scaled)
	}
	return e.push(L, p.Scale(k))
}

func (e *Engine) pointDot(L *lua.LState) int {
	a, b := e.checkPoint(L, 1), e.checkPoint(L, 2)
	d := a.Dot(b)
	if e.opts.Checked {
		var err error
		d, err = a.CheckedDot(b)
		e.raiseOnError(L, err)
	}
	L.Push(lua.LNumber(d))
	return 1
}

func (e *Engine) pointEquals(L *lua.LState) int {
	L.Push(lua.LBool(e.checkPoint(L, 1).Equals(e.checkPoint(L, 2))))
	return 1
}

// pointNeg also serves __unm.
func (e *Engine) pointNeg(L *lua.LState) int {
	p := e.checkPoint(L, 1)
	if e.opts.Checked {
		n, err := p.CheckedNeg()
		e.raiseOnError(L, err)
		return e.push(L, n)
	}
	return e.push(L, p.Neg())
}

func (e *Engine) pointRotateCW(L *lua.LState) int {
	return e.push(L, e.checkPoint(L, 1).Rotate90CW())
}

func (e *Engine) pointRotateACW(L *lua.LState) int {
	return e.push(L, e.checkPoint(L, 1).Rotate90ACW())
}

func (e *Engine) pointDist(L *lua.LState) int {
	L.Push(lua.LNumber(e.checkPoint(L, 1).Dist(e.checkPoint(L, 2))))
	return 1
}

func (e *Engine) pointManhattan(L *lua.LState) int {
	L.Push(lua.LNumber(e.checkPoint(L, 1).ManhattanDist(e.checkPoint(L, 2))))
	return 1
}
