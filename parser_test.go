// Copyright 2026 go-kconfig authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be
// found in the LICENSE file.

package kconfig

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBasic(t *testing.T) {
	tests := []struct {
		in string
	}{
		{in: `
mainmenu "test"

config FOO
	bool "Foo"
	default y
`},
		{in: `
config A
	tristate "A"

config B
	tristate "B"
	depends on A
`},
		{in: `
choice
	prompt "pick one"
	default BAR

config BAZ
	bool "baz"

config BAR
	bool "bar"
endchoice
`},
		{in: `
menu "Networking"
	depends on NET

config NET_FOO
	bool "foo"
endmenu
`},
		{in: `
config WITH_HELP
	bool "has help"
	help
	  This is help text.
	  Second line.

config NEXT
	bool "next"
`},
	}
	for i, test := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			kconf, err := ParseData([]byte(test.in), "Kconfig")
			if !assert.NoError(t, err) {
				return
			}
			assert.NotNil(t, kconf.TopNode)
		})
	}
}

func TestParseHelpText(t *testing.T) {
	kconf, err := ParseData([]byte(`
config WITH_HELP
	bool "has help"
	help
	  Line one.
	  Line two.

config NEXT
	bool "next"
`), "Kconfig")
	assert.NoError(t, err)
	sym := kconf.Sym("WITH_HELP")
	if assert.NotNil(t, sym) && assert.Len(t, sym.Nodes, 1) {
		assert.Equal(t, "Line one.\nLine two.", sym.Nodes[0].Help)
	}
	assert.NotNil(t, kconf.Sym("NEXT"))
}

func TestParseIfStack(t *testing.T) {
	kconf, err := ParseData([]byte(`
config COND
	bool "cond"

if COND
config INNER
	bool "inner"
endif

config OUTER
	bool "outer"
`), "Kconfig")
	assert.NoError(t, err)
	inner := kconf.Sym("INNER")
	outer := kconf.Sym("OUTER")
	if !assert.NotNil(t, inner) || !assert.NotNil(t, outer) {
		return
	}
	assert.Equal(t, No, inner.Visibility(), "INNER's prompt should be gated by the enclosing if COND")
	assert.Equal(t, Yes, outer.Visibility(), "OUTER sits outside the if block and is unaffected")
	kconf.Sym("COND").SetValue("y")
	assert.Equal(t, Yes, inner.Visibility())
}

func TestParseSelectImply(t *testing.T) {
	kconf, err := ParseData([]byte(`
config A
	bool "a"
	select B

config B
	bool "b"

config C
	bool "c"
	imply D

config D
	tristate "d"
`), "Kconfig")
	assert.NoError(t, err)
	kconf.Sym("A").SetValue("y")
	assert.Equal(t, Yes, kconf.Sym("B").TriValue(), "select should force B to y")

	kconf.Sym("C").SetValue("y")
	assert.Equal(t, Yes, kconf.Sym("D").TriValue(), "imply should raise D since nothing else set it")
}

func TestParseRange(t *testing.T) {
	kconf, err := ParseData([]byte(`
config LO
	int
	default 1

config HI
	int
	default 10

config N
	int "n"
	range LO HI
	default 20
`), "Kconfig")
	assert.NoError(t, err)
	assert.Equal(t, "10", kconf.Sym("N").StrValue(), "default should clamp to the range's high bound")
}

func TestUnknownKeywordIsSyntaxError(t *testing.T) {
	_, err := ParseData([]byte("bogus_keyword FOO\n"), "Kconfig")
	assert.Error(t, err)
	var se *SyntaxError
	assert.ErrorAs(t, err, &se)
}
