// Copyright 2026 go-kconfig authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be
// found in the LICENSE file.

package kconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadAndWriteConfigRoundTrip(t *testing.T) {
	kconf, err := ParseData([]byte(`
config MODULES
	bool
	default y
	option modules

config FOO
	bool "foo"

config BAR
	tristate "bar"

config BAZ
	string "baz"
	default "unset"
`), "Kconfig")
	assert.NoError(t, err)

	err = LoadConfigData(kconf, []byte(`
CONFIG_FOO=y
CONFIG_BAR=m
CONFIG_BAZ="hello"
`), "in-memory.config")
	assert.NoError(t, err)

	assert.Equal(t, Yes, kconf.Sym("FOO").TriValue())
	assert.Equal(t, Mod, kconf.Sym("BAR").TriValue())
	assert.Equal(t, "hello", kconf.Sym("BAZ").StrValue())

	dir := t.TempDir()
	out := filepath.Join(dir, ".config")
	assert.NoError(t, WriteConfig(kconf, out))

	kconf2, err := ParseData([]byte(`
config MODULES
	bool
	default y
	option modules

config FOO
	bool "foo"

config BAR
	tristate "bar"

config BAZ
	string "baz"
	default "unset"
`), "Kconfig")
	assert.NoError(t, err)
	assert.NoError(t, LoadConfig(kconf2, out))
	assert.Equal(t, Yes, kconf2.Sym("FOO").TriValue())
	assert.Equal(t, Mod, kconf2.Sym("BAR").TriValue())
	assert.Equal(t, "hello", kconf2.Sym("BAZ").StrValue())
}

func TestWriteConfigOmitsInvisibleWithNoForcedValue(t *testing.T) {
	kconf, err := ParseData([]byte(`
config HIDDEN
	bool
`), "Kconfig")
	assert.NoError(t, err)
	dir := t.TempDir()
	out := filepath.Join(dir, ".config")
	assert.NoError(t, WriteConfig(kconf, out))
	data, err := os.ReadFile(out)
	assert.NoError(t, err)
	assert.NotContains(t, string(data), "HIDDEN")
}

func TestWriteConfigIncludesPromptlessSelectTarget(t *testing.T) {
	// HIDDEN has no prompt anywhere, so it's never directly visible, but a
	// select that forces it to y still has to show up in the written config.
	kconf, err := ParseData([]byte(`
config VISIBLE
	bool "visible"
	select HIDDEN

config HIDDEN
	bool
`), "Kconfig")
	assert.NoError(t, err)
	kconf.Sym("VISIBLE").SetValue("y")

	dir := t.TempDir()
	out := filepath.Join(dir, ".config")
	assert.NoError(t, WriteConfig(kconf, out))
	data, err := os.ReadFile(out)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "CONFIG_HIDDEN=y")
}

func TestWriteMinConfigOnlyDiffersFromDefaults(t *testing.T) {
	kconf, err := ParseData([]byte(`
config FOO
	bool "foo"
	default y

config BAR
	bool "bar"
	default n
`), "Kconfig")
	assert.NoError(t, err)
	// FOO is left at its default; only BAR is changed.
	kconf.Sym("BAR").SetValue("y")

	dir := t.TempDir()
	out := filepath.Join(dir, "defconfig")
	assert.NoError(t, WriteMinConfig(kconf, out))
	data, err := os.ReadFile(out)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "CONFIG_BAR=y")
	assert.NotContains(t, string(data), "FOO")
}

func TestWriteAutoconf(t *testing.T) {
	kconf, err := ParseData([]byte(`
config MODULES
	bool
	default y
	option modules

config FOO
	tristate "foo"
	default m
`), "Kconfig")
	assert.NoError(t, err)
	dir := t.TempDir()
	out := filepath.Join(dir, "autoconf.h")
	assert.NoError(t, WriteAutoconf(kconf, out))
	data, err := os.ReadFile(out)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "#define CONFIG_FOO_MODULE 1")
}

func TestSymbolPrinterPlainConfigShape(t *testing.T) {
	kconf, err := ParseData([]byte(`
config FOO
	bool "Foo option"
	depends on BAR
	default y if BAR

config BAR
	bool "Bar"
`), "Kconfig")
	assert.NoError(t, err)
	printed := kconf.Sym("FOO").String()
	assert.True(t, strings.HasPrefix(printed, "config FOO\n"))
	assert.Contains(t, printed, "bool\n")
	assert.Contains(t, printed, `prompt "Foo option"`)
}
