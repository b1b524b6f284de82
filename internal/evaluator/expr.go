package evaluator

import (
	"fmt"

	"github.com/anish1234567/jiaobenscript/internal/ast"
	"github.com/anish1234567/jiaobenscript/internal/builtins"
	"github.com/anish1234567/jiaobenscript/internal/values"
)

// evalExpr dispatches one expression against frame, per spec.md §4.5's
// expression rules.
func (e *Evaluator) evalExpr(frame *values.Frame, expr ast.Expr) (values.Value, error) {
	switch x := expr.(type) {
	case *ast.BoolLit:
		return values.Bool{Value: x.Value}, nil
	case *ast.IntLit:
		return values.Int{Value: x.Value}, nil
	case *ast.FloatLit:
		return values.Float{Value: x.Value}, nil
	case *ast.StringLit:
		return values.String{Value: x.Value}, nil
	case *ast.NullLit:
		return values.Null{}, nil
	case *ast.ListLit:
		items := make([]values.Value, len(x.Items))
		for i, item := range x.Items {
			v, err := e.evalExpr(frame, item)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return values.NewList(items), nil
	case *ast.Var:
		return e.readVar(frame, x)
	case *ast.FuncLit:
		return values.NewFunc(x, frame), nil
	case *ast.Op:
		return e.evalOp(frame, x)
	}
	return nil, runtimeErr(expr, fmt.Errorf("cannot evaluate %T", expr))
}

// varSlot locates the frame and slot a resolved Var reads/writes: its
// own frame for a local, or the ancestor frame whose Block matches the
// nonlocal reference's owner for a free name -- the walk spec.md §4.5
// describes, expressed via values.Frame.FindOwner.
func varSlot(frame *values.Frame, v *ast.Var) (*values.Frame, int) {
	if v.Attr.IsLocal {
		return frame, v.Attr.Index
	}
	ref := frame.Block.Attr.NonlocalIndexes[v.Attr.Index]
	return frame.FindOwner(ref.OwnerBlock), ref.Index
}

func (e *Evaluator) readVar(frame *values.Frame, v *ast.Var) (values.Value, error) {
	f, idx := varSlot(frame, v)
	val := f.Vars[idx]
	if val == nil {
		return nil, runtimeErr(v, fmt.Errorf("unbound variable %q", v.Name))
	}
	return val, nil
}

func (e *Evaluator) writeVar(frame *values.Frame, v *ast.Var, val values.Value) {
	f, idx := varSlot(frame, v)
	f.Vars[idx] = val
}

// evalOp dispatches on the operator code; arity (1 vs 2) disambiguates
// the unary and binary uses OpAdd/OpSub share, per ast.OpCode's doc
// comment.
func (e *Evaluator) evalOp(frame *values.Frame, op *ast.Op) (values.Value, error) {
	switch op.Code {
	case ast.OpAdd:
		if len(op.Args) == 1 {
			return e.evalUnary(frame, op, builtins.Pos)
		}
		return e.evalBinary(frame, op, builtins.Add)
	case ast.OpSub:
		if len(op.Args) == 1 {
			return e.evalUnary(frame, op, builtins.Neg)
		}
		return e.evalBinary(frame, op, builtins.Sub)
	case ast.OpMul:
		return e.evalBinary(frame, op, builtins.Mul)
	case ast.OpDiv:
		return e.evalBinary(frame, op, builtins.Div)
	case ast.OpMod:
		return e.evalBinary(frame, op, builtins.Mod)
	case ast.OpNot:
		v, err := e.evalExpr(frame, op.Args[0])
		if err != nil {
			return nil, err
		}
		return values.Bool{Value: !v.Truthy()}, nil
	case ast.OpLt, ast.OpLe, ast.OpGt, ast.OpGe:
		a, b, err := e.evalPair(frame, op)
		if err != nil {
			return nil, err
		}
		v, err := builtins.Compare(op.Code.String(), a, b)
		return v, runtimeErr(op, err)
	case ast.OpEq:
		a, b, err := e.evalPair(frame, op)
		if err != nil {
			return nil, err
		}
		return values.Bool{Value: values.Equal(a, b)}, nil
	case ast.OpNe:
		a, b, err := e.evalPair(frame, op)
		if err != nil {
			return nil, err
		}
		return values.Bool{Value: !values.Equal(a, b)}, nil
	case ast.OpAnd:
		a, err := e.evalExpr(frame, op.Args[0])
		if err != nil {
			return nil, err
		}
		if !a.Truthy() {
			return a, nil
		}
		return e.evalExpr(frame, op.Args[1])
	case ast.OpOr:
		a, err := e.evalExpr(frame, op.Args[0])
		if err != nil {
			return nil, err
		}
		if a.Truthy() {
			return a, nil
		}
		return e.evalExpr(frame, op.Args[1])
	case ast.OpSubscript:
		base, idx, err := e.evalPair(frame, op)
		if err != nil {
			return nil, err
		}
		v, err := builtins.Index(base, idx)
		return v, runtimeErr(op, err)
	case ast.OpCall:
		return e.evalCall(frame, op)
	case ast.OpExpList:
		var last values.Value = values.Null{}
		for _, a := range op.Args {
			v, err := e.evalExpr(frame, a)
			if err != nil {
				return nil, err
			}
			last = v
		}
		return last, nil
	}
	if op.Code.IsAssign() {
		return e.evalAssign(frame, op)
	}
	return nil, runtimeErr(op, fmt.Errorf("unhandled operator %s", op.Code))
}

func (e *Evaluator) evalUnary(frame *values.Frame, op *ast.Op, f func(values.Value) (values.Value, error)) (values.Value, error) {
	v, err := e.evalExpr(frame, op.Args[0])
	if err != nil {
		return nil, err
	}
	r, err := f(v)
	return r, runtimeErr(op, err)
}

func (e *Evaluator) evalBinary(frame *values.Frame, op *ast.Op, f func(a, b values.Value) (values.Value, error)) (values.Value, error) {
	a, b, err := e.evalPair(frame, op)
	if err != nil {
		return nil, err
	}
	r, err := f(a, b)
	return r, runtimeErr(op, err)
}

// evalPair evaluates op's two operands left to right, per spec.md §5's
// "all evaluation is strictly left-to-right" ordering rule.
func (e *Evaluator) evalPair(frame *values.Frame, op *ast.Op) (values.Value, values.Value, error) {
	a, err := e.evalExpr(frame, op.Args[0])
	if err != nil {
		return nil, nil, err
	}
	b, err := e.evalExpr(frame, op.Args[1])
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

var compoundOps = map[ast.OpCode]func(a, b values.Value) (values.Value, error){
	ast.OpAddAssign: builtins.Add,
	ast.OpSubAssign: builtins.Sub,
	ast.OpMulAssign: builtins.Mul,
	ast.OpDivAssign: builtins.Div,
	ast.OpModAssign: builtins.Mod,
}

// evalAssign implements `LHS = RHS` and the compound `OP=` forms: for a
// compound form, LHS is evaluated once as a read to get the old value,
// the binary op combines it with RHS, then the result is stored back --
// LHS is evaluated again for the write side, as spec.md §4.5 specifies.
func (e *Evaluator) evalAssign(frame *values.Frame, op *ast.Op) (values.Value, error) {
	lhs, rhsExpr := op.Args[0], op.Args[1]

	if op.Code == ast.OpAssign {
		v, err := e.evalExpr(frame, rhsExpr)
		if err != nil {
			return nil, err
		}
		return e.storeInto(frame, lhs, v)
	}

	old, err := e.evalExpr(frame, lhs)
	if err != nil {
		return nil, err
	}
	rhs, err := e.evalExpr(frame, rhsExpr)
	if err != nil {
		return nil, err
	}
	combine := compoundOps[op.Code]
	v, err := combine(old, rhs)
	if err != nil {
		return nil, runtimeErr(op, err)
	}
	return e.storeInto(frame, lhs, v)
}

// storeInto writes val to the slot or list cell lhs names; lhs is
// already known to be a Var or an OpSubscript Op (the parser's
// isAssignable check enforces this at parse time).
func (e *Evaluator) storeInto(frame *values.Frame, lhs ast.Expr, val values.Value) (values.Value, error) {
	switch l := lhs.(type) {
	case *ast.Var:
		e.writeVar(frame, l, val)
		return val, nil
	case *ast.Op:
		base, err := e.evalExpr(frame, l.Args[0])
		if err != nil {
			return nil, err
		}
		idx, err := e.evalExpr(frame, l.Args[1])
		if err != nil {
			return nil, err
		}
		if err := builtins.SetIndex(base, idx, val); err != nil {
			return nil, runtimeErr(lhs, err)
		}
		return val, nil
	}
	return nil, runtimeErr(lhs, fmt.Errorf("invalid assignment target"))
}

// evalCall evaluates the callee and arguments left to right, then
// dispatches on the callee's kind.
func (e *Evaluator) evalCall(frame *values.Frame, op *ast.Op) (values.Value, error) {
	callee, err := e.evalExpr(frame, op.Args[0])
	if err != nil {
		return nil, err
	}

	argExprs := op.Args[1:]
	args := make([]values.Value, len(argExprs))
	for i, a := range argExprs {
		v, err := e.evalExpr(frame, a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch fn := callee.(type) {
	case *values.Builtin:
		v, err := fn.Fn(args)
		return v, runtimeErr(op, err)
	case *values.Func:
		return e.callFunc(fn, args, op)
	default:
		return nil, runtimeErr(op, fmt.Errorf("cannot call a %s", callee.Kind()))
	}
}

// callFunc implements spec.md §4.5's user-function call convention:
// arity checking, a fresh frame parented to the closure's captured
// frame (not the caller's), missing-parameter defaults evaluated in
// that same new frame, and a ReturnSignal resolving to the result (or
// Null if the body falls off the end).
func (e *Evaluator) callFunc(fn *values.Func, args []values.Value, call *ast.Op) (values.Value, error) {
	params := fn.Code.Params
	if len(args) > len(params) {
		return nil, runtimeErr(call, fmt.Errorf("too many arguments: got %d, want at most %d", len(args), len(params)))
	}
	if len(args) < len(params) && params[len(args)].Default == nil {
		return nil, runtimeErr(call, fmt.Errorf("missing arguments: got %d, want %d", len(args), len(params)))
	}

	newFrame := values.NewFrame(fn.Code.Body, fn.Captured)
	for i, v := range args {
		newFrame.Vars[i] = v
	}
	for i := len(args); i < len(params); i++ {
		p := params[i]
		if p.Default == nil {
			return nil, runtimeErr(call, fmt.Errorf("missing argument %q", p.Name))
		}
		v, err := e.evalExpr(newFrame, p.Default)
		if err != nil {
			return nil, err
		}
		newFrame.Vars[i] = v
	}

	if err := e.execStmts(newFrame, fn.Code.Body.Stmts); err != nil {
		return nil, err
	}
	if e.sig != nil && e.sig.kind == sigReturn {
		v := e.sig.value
		e.sig = nil
		return v, nil
	}
	e.sig = nil
	return values.Null{}, nil
}
