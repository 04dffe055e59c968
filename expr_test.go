// Copyright 2026 go-kconfig authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be
// found in the LICENSE file.

package kconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTristateLogic(t *testing.T) {
	assert.Equal(t, No, Yes.Not().Not().Not())
	assert.Equal(t, Mod, Mod.Not())
	assert.Equal(t, No, No.And(Yes))
	assert.Equal(t, Mod, Mod.And(Yes))
	assert.Equal(t, Yes, Mod.Or(Yes))
	assert.Equal(t, Mod, No.Or(Mod))
}

func TestExprValueAndOr(t *testing.T) {
	kconf, err := ParseData([]byte(`
config MODULES
	bool
	default y
	option modules

config A
	bool "a"
	default y

config B
	tristate "b"
	default m
`), "Kconfig")
	assert.NoError(t, err)
	a, b := kconf.Sym("A"), kconf.Sym("B")

	and := kconf.MakeAnd(exprSymbol(a), exprSymbol(b))
	assert.Equal(t, Mod, ExprValue(and))

	or := kconf.MakeOr(exprSymbol(a), exprSymbol(b))
	assert.Equal(t, Yes, ExprValue(or))

	not := exprNot(exprSymbol(b))
	assert.Equal(t, Mod, ExprValue(not))
}

func TestExprStringPrecedence(t *testing.T) {
	kconf := newKconfigInstance()
	a := kconf.lookupSymbol("A")
	b := kconf.lookupSymbol("B")
	c := kconf.lookupSymbol("C")

	// A && (B || C) must keep its parens; (A && B) || C must not.
	e1 := kconf.MakeAnd(exprSymbol(a), kconf.MakeOr(exprSymbol(b), exprSymbol(c)))
	assert.Equal(t, "A && (B || C)", ExprString(e1))

	e2 := kconf.MakeOr(kconf.MakeAnd(exprSymbol(a), exprSymbol(b)), exprSymbol(c))
	assert.Equal(t, "A && B || C", ExprString(e2))
}

func TestExprDependsOn(t *testing.T) {
	kconf := newKconfigInstance()
	a := kconf.lookupSymbol("A")
	b := kconf.lookupSymbol("B")

	assert.True(t, ExprDependsOn(exprSymbol(a), a))
	assert.False(t, ExprDependsOn(exprSymbol(b), a))

	eq := exprCmp(CmpEqual, exprSymbol(a), exprSymbol(kconf.symYes))
	assert.True(t, ExprDependsOn(eq, a))

	neq := exprCmp(CmpUnequal, exprSymbol(a), exprSymbol(kconf.symNo))
	assert.True(t, ExprDependsOn(neq, a))
}

func TestExprWalk(t *testing.T) {
	kconf := newKconfigInstance()
	a := kconf.lookupSymbol("A")
	b := kconf.lookupSymbol("B")
	e := kconf.MakeAnd(exprSymbol(a), exprNot(exprSymbol(b)))

	var seen []string
	e.Walk(func(s *Symbol) bool {
		seen = append(seen, s.Name)
		return true
	})
	assert.Equal(t, []string{"A", "B"}, seen)
}
