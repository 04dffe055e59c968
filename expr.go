// Copyright 2026 go-kconfig authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be
// found in the LICENSE file.

package kconfig

import "strconv"

// ExprKind tags the shape of an Expr node.
type ExprKind int

const (
	// ExprSymbol is a leaf referencing a Symbol (including the constant
	// symbols y/m/n).
	ExprSymbol ExprKind = iota
	// ExprChoice is a leaf referencing a Choice. The grammar never
	// produces these directly; they only appear in the synthesized
	// `if <choice>` condition the Symbol printer emits for choice
	// members (see DESIGN.md for why this doesn't round-trip).
	ExprChoice
	ExprNot
	ExprAnd
	ExprOr
	ExprCmp
)

// CmpOp is a relational operator used in an ExprCmp node.
type CmpOp int

const (
	CmpEqual CmpOp = iota
	CmpUnequal
	CmpLess
	CmpLessEqual
	CmpGreater
	CmpGreaterEqual
)

func (op CmpOp) String() string {
	switch op {
	case CmpEqual:
		return "="
	case CmpUnequal:
		return "!="
	case CmpLess:
		return "<"
	case CmpLessEqual:
		return "<="
	case CmpGreater:
		return ">"
	case CmpGreaterEqual:
		return ">="
	default:
		return "?"
	}
}

// Expr is a node in a dependency expression tree. Leaves are Symbol or
// Choice references; interior nodes are Not/And/Or/Cmp. Expr trees are
// built by the parser and never mutated afterwards, so sharing a subtree
// between two parents is safe.
type Expr struct {
	Kind   ExprKind
	Sym    *Symbol // ExprSymbol
	Choice *Choice // ExprChoice
	Op     CmpOp   // ExprCmp
	X, Y   *Expr   // X: operand of Not; X,Y: operands of And/Or/Cmp
}

func exprSymbol(sym *Symbol) *Expr {
	return &Expr{Kind: ExprSymbol, Sym: sym}
}

func exprChoice(c *Choice) *Expr {
	return &Expr{Kind: ExprChoice, Choice: c}
}

func exprNot(x *Expr) *Expr {
	return &Expr{Kind: ExprNot, X: x}
}

func exprCmp(op CmpOp, x, y *Expr) *Expr {
	return &Expr{Kind: ExprCmp, Op: op, X: x, Y: y}
}

// MakeAnd builds e1 && e2, applying the same trivial simplifications
// against the constant y/n symbols that the C tools and kconfiglib apply,
// so that printed and cached expressions stay small.
func (kc *Kconfig) MakeAnd(e1, e2 *Expr) *Expr {
	if kc.isConst(e1, kc.symYes) {
		return e2
	}
	if kc.isConst(e2, kc.symYes) {
		return e1
	}
	if kc.isConst(e1, kc.symNo) || kc.isConst(e2, kc.symNo) {
		return exprSymbol(kc.symNo)
	}
	return &Expr{Kind: ExprAnd, X: e1, Y: e2}
}

// MakeOr builds e1 || e2 with the analogous simplification.
func (kc *Kconfig) MakeOr(e1, e2 *Expr) *Expr {
	if kc.isConst(e1, kc.symNo) {
		return e2
	}
	if kc.isConst(e2, kc.symNo) {
		return e1
	}
	if kc.isConst(e1, kc.symYes) || kc.isConst(e2, kc.symYes) {
		return exprSymbol(kc.symYes)
	}
	return &Expr{Kind: ExprOr, X: e1, Y: e2}
}

func (kc *Kconfig) isConst(e *Expr, sym *Symbol) bool {
	return e != nil && e.Kind == ExprSymbol && e.Sym == sym
}

// ExprValue evaluates e to a Tristate:
//
//	y = 2, m = 1, n = 0
//	Symbol leaf -> the symbol's tristate value (its string value is
//	  treated as "y" iff non-empty, for non-bool/tristate symbols)
//	NOT e = 2 - ExprValue(e)
//	AND = min, OR = max
//	comparisons per ExprCmp's type-aware rules
func ExprValue(e *Expr) Tristate {
	if e == nil {
		return Yes
	}
	switch e.Kind {
	case ExprSymbol:
		return symbolTriValue(e.Sym)
	case ExprChoice:
		return e.Choice.TriValue()
	case ExprNot:
		return ExprValue(e.X).Not()
	case ExprAnd:
		v1 := ExprValue(e.X)
		if v1 == No {
			return No
		}
		return v1.And(ExprValue(e.Y))
	case ExprOr:
		v1 := ExprValue(e.X)
		if v1 == Yes {
			return Yes
		}
		return v1.Or(ExprValue(e.Y))
	case ExprCmp:
		return evalCmp(e)
	default:
		panic(internalErrorf("unknown expr kind %d", e.Kind))
	}
}

// symbolTriValue is the tristate reading of a Symbol leaf: bool/tristate
// symbols use their normal value; any other symbol (string/int/hex/
// undefined) reads as Yes iff its string value is non-empty.
func symbolTriValue(sym *Symbol) Tristate {
	if sym.Type() == TypeBool || sym.Type() == TypeTristate {
		return sym.TriValue()
	}
	if sym.StrValue() != "" {
		return Yes
	}
	return No
}

func evalCmp(e *Expr) Tristate {
	left, right := e.X.Sym, e.Y.Sym
	var holds bool
	if left != nil && right != nil && left.Type() == TypeInt && right.Type() == TypeInt {
		holds = cmpNumeric(e.Op, left.StrValue(), right.StrValue(), 10)
	} else if left != nil && right != nil && left.Type() == TypeHex && right.Type() == TypeHex {
		holds = cmpNumeric(e.Op, left.StrValue(), right.StrValue(), 16)
	} else {
		holds = cmpString(e.Op, exprLeafString(e.X), exprLeafString(e.Y))
	}
	if holds {
		return Yes
	}
	return No
}

func exprLeafString(e *Expr) string {
	if e.Kind == ExprSymbol {
		return e.Sym.StrValue()
	}
	return ""
}

func cmpNumeric(op CmpOp, a, b string, base int) bool {
	av, aerr := strconv.ParseInt(trimBase(a, base), base, 64)
	bv, berr := strconv.ParseInt(trimBase(b, base), base, 64)
	if aerr != nil || berr != nil {
		return cmpString(op, a, b)
	}
	switch op {
	case CmpEqual:
		return av == bv
	case CmpUnequal:
		return av != bv
	case CmpLess:
		return av < bv
	case CmpLessEqual:
		return av <= bv
	case CmpGreater:
		return av > bv
	case CmpGreaterEqual:
		return av >= bv
	default:
		return false
	}
}

func trimBase(s string, base int) string {
	if base == 16 && len(s) > 2 && (s[0:2] == "0x" || s[0:2] == "0X") {
		return s[2:]
	}
	return s
}

func cmpString(op CmpOp, a, b string) bool {
	switch op {
	case CmpEqual:
		return a == b
	case CmpUnequal:
		return a != b
	case CmpLess:
		return a < b
	case CmpLessEqual:
		return a <= b
	case CmpGreater:
		return a > b
	case CmpGreaterEqual:
		return a >= b
	default:
		return false
	}
}

// ExprDependsOn reports whether sym appears as a direct dependency of e in
// the restricted sense used to discover implicit submenus: e is sym
// itself, or `sym = y`, `sym = m`, `y/m = sym`, `sym != n`, `n != sym`, or
// an AND whose left or right side satisfies the same.
func ExprDependsOn(e *Expr, sym *Symbol) bool {
	if e == nil {
		return false
	}
	switch e.Kind {
	case ExprSymbol:
		return e.Sym == sym
	case ExprAnd:
		return ExprDependsOn(e.X, sym) || ExprDependsOn(e.Y, sym)
	case ExprCmp:
		left, right := e.X, e.Y
		if right.Kind == ExprSymbol && right.Sym == sym {
			left, right = right, left
		}
		if left.Kind != ExprSymbol || left.Sym != sym {
			return false
		}
		if right.Kind != ExprSymbol {
			return false
		}
		switch e.Op {
		case CmpEqual:
			return right.Sym == sym.kconf.symMod || right.Sym == sym.kconf.symYes
		case CmpUnequal:
			return right.Sym == sym.kconf.symNo
		default:
			return false
		}
	default:
		return false
	}
}

// ExprString renders e with C-style operator precedence: || binds
// loosest, then &&, then ! and comparisons. Parentheses are added only
// where needed to preserve meaning.
func ExprString(e *Expr) string {
	if e == nil {
		return "y"
	}
	switch e.Kind {
	case ExprSymbol:
		if e.Sym.IsConstant {
			return `"` + e.Sym.Name + `"`
		}
		return e.Sym.Name
	case ExprChoice:
		return "<choice " + e.Choice.nameOrAnon() + ">"
	case ExprNot:
		if e.X.Kind == ExprSymbol || e.X.Kind == ExprChoice {
			return "!" + ExprString(e.X)
		}
		return "!(" + ExprString(e.X) + ")"
	case ExprAnd:
		return formatAndOperand(e.X) + " && " + formatAndOperand(e.Y)
	case ExprOr:
		return ExprString(e.X) + " || " + ExprString(e.Y)
	case ExprCmp:
		return ExprString(e.X) + " " + e.Op.String() + " " + ExprString(e.Y)
	default:
		panic(internalErrorf("unknown expr kind %d", e.Kind))
	}
}

func formatAndOperand(e *Expr) string {
	if e != nil && e.Kind == ExprOr {
		return "(" + ExprString(e) + ")"
	}
	return ExprString(e)
}

// Walk calls visit for every Symbol leaf reachable from e (depth-first,
// left to right), stopping early if visit returns false. It is the public,
// getter-only replacement for reaching into Expr's fields to hunt for
// symbol references (see examples/find_symbol.py in the kconfiglib
// original for the pattern this generalizes).
func (e *Expr) Walk(visit func(*Symbol) bool) bool {
	if e == nil {
		return true
	}
	switch e.Kind {
	case ExprSymbol:
		return visit(e.Sym)
	case ExprChoice:
		return true
	case ExprNot:
		return e.X.Walk(visit)
	case ExprAnd, ExprOr, ExprCmp:
		if !e.X.Walk(visit) {
			return false
		}
		return e.Y.Walk(visit)
	default:
		return true
	}
}

// collectDeps adds every non-constant Symbol referenced by e to deps.
func collectDeps(e *Expr, deps map[*Symbol]bool) {
	e.Walk(func(s *Symbol) bool {
		if !s.IsConstant {
			deps[s] = true
		}
		return true
	})
}
