// Copyright 2026 go-kconfig authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be
// found in the LICENSE file.

package kconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolDefaultAndVisibility(t *testing.T) {
	kconf, err := ParseData([]byte(`
config DEP
	bool "dep"

config FOO
	bool "foo"
	depends on DEP
	default y
`), "Kconfig")
	assert.NoError(t, err)
	foo := kconf.Sym("FOO")

	assert.Equal(t, No, foo.Visibility(), "FOO should be invisible until DEP is set")
	assert.Equal(t, No, foo.TriValue(), "default y cannot take effect while invisible")

	kconf.Sym("DEP").SetValue("y")
	assert.Equal(t, Yes, foo.Visibility())
	assert.Equal(t, Yes, foo.TriValue())
}

func TestSymbolAssignable(t *testing.T) {
	kconf, err := ParseData([]byte(`
config MODULES
	bool
	default y
	option modules

config FOO
	tristate "foo"
`), "Kconfig")
	assert.NoError(t, err)
	foo := kconf.Sym("FOO")
	assert.Equal(t, []Tristate{No, Mod, Yes}, foo.Assignable())

	assert.True(t, foo.SetValue("m"))
	assert.Equal(t, Mod, foo.TriValue())
	assert.False(t, foo.SetValue("bogus"))
	assert.Len(t, kconf.Warnings, 1)
}

func TestChoiceSelection(t *testing.T) {
	kconf, err := ParseData([]byte(`
choice
	prompt "pick"
	default BAR

config BAZ
	bool "baz"

config BAR
	bool "bar"
endchoice
`), "Kconfig")
	assert.NoError(t, err)
	ch := kconf.Choices()[0]
	assert.Equal(t, Yes, ch.TriValue())
	sel := ch.Selection()
	if assert.NotNil(t, sel) {
		assert.Equal(t, "BAR", sel.Name)
	}

	kconf.Sym("BAZ").SetValue("y")
	sel = ch.Selection()
	if assert.NotNil(t, sel) {
		assert.Equal(t, "BAZ", sel.Name)
	}
	assert.Equal(t, No, kconf.Sym("BAR").TriValue())
}

func TestRecInvalidatePropagates(t *testing.T) {
	kconf, err := ParseData([]byte(`
config A
	bool "a"

config B
	bool "b"
	depends on A
	default y
`), "Kconfig")
	assert.NoError(t, err)
	a, b := kconf.Sym("A"), kconf.Sym("B")

	assert.Equal(t, No, b.TriValue())
	a.SetValue("y")
	assert.Equal(t, Yes, b.TriValue(), "B's cached value must be invalidated when A changes")
}

func TestSetAllHelpers(t *testing.T) {
	kconf, err := ParseData([]byte(`
config MODULES
	bool
	default y
	option modules

config A
	bool "a"

config B
	tristate "b"
`), "Kconfig")
	assert.NoError(t, err)

	kconf.SetAllYes()
	assert.Equal(t, Yes, kconf.Sym("A").TriValue())
	assert.Equal(t, Yes, kconf.Sym("B").TriValue())

	kconf.SetAllNo()
	assert.Equal(t, No, kconf.Sym("A").TriValue())
	assert.Equal(t, No, kconf.Sym("B").TriValue())

	kconf.SetAllModule()
	assert.Equal(t, No, kconf.Sym("A").TriValue(), "bool symbols are unaffected by allmodconfig")
	assert.Equal(t, Mod, kconf.Sym("B").TriValue())
}

func TestEvalString(t *testing.T) {
	kconf, err := ParseData([]byte(`
config A
	bool "a"
	default y

config B
	bool "b"
	default n
`), "Kconfig")
	assert.NoError(t, err)

	v, err := kconf.EvalString("A && !B")
	assert.NoError(t, err)
	assert.Equal(t, Yes, v)

	v, err = kconf.EvalString("A && B")
	assert.NoError(t, err)
	assert.Equal(t, No, v)
}

func TestSelectForcesValueAboveVisibility(t *testing.T) {
	kconf, err := ParseData([]byte(`
config A
	bool "a"

config B
	bool
	select A if B
	default y
`), "Kconfig")
	assert.NoError(t, err)
	b := kconf.Sym("B")

	// B has no prompt anywhere, so it can never be user-set...
	assert.Equal(t, No, b.Visibility())
	// ...but its default must still take effect: a symbol's own lack of a
	// prompt caps what the user can assign, not what its default computes to.
	assert.Equal(t, Yes, b.TriValue(), "an invisible symbol's default must not be clamped by its own visibility")

	// With B true, its select of A must go through even though B itself is
	// never directly visible to a user.
	assert.Equal(t, Yes, kconf.Sym("A").TriValue(), "select must be able to force a value through an invisible symbol")
}

func TestImplyDoesNotOverrideHardNo(t *testing.T) {
	kconf, err := ParseData([]byte(`
config A
	bool "a"
	imply B

config B
	bool "b"
`), "Kconfig")
	assert.NoError(t, err)

	// The user explicitly turns B off before A is ever touched; imply must
	// not be allowed to walk back over that explicit n.
	kconf.Sym("B").SetValue("n")
	kconf.Sym("A").SetValue("y")
	assert.Equal(t, No, kconf.Sym("B").TriValue(), "imply must not override an explicit user n")
}

func TestImplyPromotion(t *testing.T) {
	kconf, err := ParseData([]byte(`
config MODULES
	bool
	default y
	option modules

config D
	tristate "d"
	imply B
	imply C

config B
	bool "b"

config C
	tristate "c"
`), "Kconfig")
	assert.NoError(t, err)

	// D is only set to m, so the weak_rev_dep expression for both B and C
	// evaluates to m too. Tristate symbols only keep their m/y distinction
	// while the option-modules symbol itself is enabled.
	kconf.Sym("D").SetValue("m")
	assert.Equal(t, Yes, kconf.Sym("B").TriValue(), "a bool target can't represent m, so it's capped up to y")
	assert.Equal(t, Mod, kconf.Sym("C").TriValue(), "a tristate target takes the weak_rev_dep value as-is")
}
