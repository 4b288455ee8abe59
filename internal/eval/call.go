package eval

import (
	"github.com/eZanmoto/seed/internal/ast"
	"github.com/eZanmoto/seed/internal/value"
	"github.com/eZanmoto/seed/internal/verror"
)

// evalCall implements spec.md §4.3.1: a Call whose Fn is an arrow
// PropAccess (`v->name(args)`) dispatches through the type-function table
// and never touches the user call-frame machinery; any other Call
// evaluates Fn for its (value, receiver) pair and, if the callee is a
// Func, invokes it with that receiver bound to `this`.
func (e *Evaluator) evalCall(n *ast.Call) (value.Value, value.Value, *verror.Error) {
	if prop, ok := n.Fn.(*ast.PropAccess); ok && prop.TypeProp {
		base, _, err := e.evalExpr(prop.X)
		if err != nil {
			return nil, nil, err
		}
		args, err := e.expandSpreadItems(n.Args)
		if err != nil {
			return nil, nil, err
		}
		v, err := dispatchTypeFn(base, prop.Name, args, n.Pos)
		return v, nil, err
	}

	fnVal, receiver, err := e.evalExpr(n.Fn)
	if err != nil {
		return nil, nil, err
	}
	fn, ok := fnVal.(*value.Func)
	if !ok {
		return nil, nil, verror.NewTypeMismatch(n.Pos.Line, n.Pos.Col, "cannot call a "+fnVal.Type().String())
	}
	args, err := e.expandSpreadItems(n.Args)
	if err != nil {
		return nil, nil, err
	}
	v, err := e.callFunc(fn, receiver, args, n.Pos)
	return v, nil, err
}

func funcDisplayName(fn *value.Func) string {
	if fn.Name == "" {
		return "anonymous"
	}
	return fn.Name
}

// callFunc invokes fn with args, binding receiver (or Null) to `this` in
// the new call frame (spec.md §4.3.1, §9): assignment always strips a
// receiver, so `this` needs no representation beyond an ordinary local
// variable declared fresh on every call.
func (e *Evaluator) callFunc(fn *value.Func, receiver value.Value, args []value.Value, pos ast.Pos) (value.Value, *verror.Error) {
	if fn.IsNative() {
		v, err := fn.Native(args)
		if err != nil {
			if ve, ok := err.(*verror.Error); ok {
				return nil, ve
			}
			return nil, verror.NewInternal(err.Error(), pos.Line, pos.Col)
		}
		return v, nil
	}

	nParams := len(fn.Params)
	if fn.Collect == "" {
		if len(args) != nParams {
			return nil, verror.NewArityMismatch(funcDisplayName(fn), nParams, len(args), pos.Line, pos.Col)
		}
	} else if len(args) < nParams {
		return nil, verror.NewArityMismatch(funcDisplayName(fn), nParams, len(args), pos.Line, pos.Col)
	}

	savedFrame := e.Scope.Current()
	capacity := nParams + 1
	if fn.Collect != "" {
		capacity++
	}
	frameIdx := e.Scope.PushFuncFrame(fn.Closure, capacity)

	for i, p := range fn.Params {
		e.Scope.DeclareIn(frameIdx, p, args[i])
	}
	if fn.Collect != "" {
		rest := make([]value.Value, len(args)-nParams)
		copy(rest, args[nParams:])
		e.Scope.DeclareIn(frameIdx, fn.Collect, value.NewList(rest))
	}
	this := value.Value(value.NullVal)
	if receiver != nil {
		this = receiver
	}
	e.Scope.DeclareIn(frameIdx, "this", this)

	e.callDepth++
	savedLoopDepth := e.loopDepth
	e.loopDepth = 0
	if e.Trace != nil {
		e.Trace.Call(funcDisplayName(fn), e.callDepth)
	}

	sig, execErr := e.execBlock(fn.Body)

	if e.Trace != nil {
		if execErr != nil {
			e.Trace.Return(funcDisplayName(fn), e.callDepth, "", execErr.Error())
		} else {
			result := value.Value(value.NullVal)
			if sig.Kind == Return {
				result = sig.Value
			}
			e.Trace.Return(funcDisplayName(fn), e.callDepth, result.String(), "")
		}
	}
	e.loopDepth = savedLoopDepth
	e.callDepth--
	e.Scope.PopTo(savedFrame)

	if execErr != nil {
		return nil, execErr
	}
	if sig.Kind == Return {
		return sig.Value, nil
	}
	return value.NullVal, nil
}
