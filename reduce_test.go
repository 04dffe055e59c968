// Copyright 2026 go-kconfig authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be
// found in the LICENSE file.

package kconfig

import (
	"math/rand"
	"testing"

	"github.com/google/syzkaller/pkg/debugtracer"
	"github.com/stretchr/testify/assert"
)

func TestReduceKeepsPredicateSatisfied(t *testing.T) {
	kconf, err := ParseData([]byte(`
mainmenu "test"
config A
	bool "a"
config B
	bool "b"
	depends on A
config C
	bool "c"
`), "Kconfig")
	assert.NoError(t, err)

	base, err := ParseConfigFileData([]byte("CONFIG_A=y\n"), "base")
	assert.NoError(t, err)
	full, err := ParseConfigFileData([]byte("CONFIG_A=y\nCONFIG_B=y\nCONFIG_C=y\n"), "full")
	assert.NoError(t, err)

	pred := func(cf *ConfigFile) (bool, error) {
		// Only ever satisfied while C is enabled; B is free to be dropped.
		return cf.Value("C") == ConfigYes, nil
	}

	res, err := kconf.Reduce(base, full, pred, 4, rand.New(rand.NewSource(1)), &debugtracer.TestTracer{T: t})
	assert.NoError(t, err)
	ok, err := pred(res)
	assert.NoError(t, err)
	assert.True(t, ok, "Reduce must never return a config the predicate rejects")
}

func TestAddDependenciesClosesOverDependsOn(t *testing.T) {
	kconf, err := ParseData([]byte(`
config A
	bool "a"
config B
	bool "b"
	depends on A
`), "Kconfig")
	assert.NoError(t, err)

	base, err := ParseConfigFileData(nil, "base")
	assert.NoError(t, err)
	full, err := ParseConfigFileData([]byte("CONFIG_A=y\nCONFIG_B=y\n"), "full")
	assert.NoError(t, err)

	closure := kconf.addDependencies(base, full, []string{"B"})
	assert.Equal(t, []string{"A", "B"}, closure)
}

func TestAddDependenciesClosesOverThreeLevelChain(t *testing.T) {
	kconf, err := ParseData([]byte(`
config A
	bool "a"
config B
	bool "b"
	depends on A
config D
	bool "d"
	depends on B
`), "Kconfig")
	assert.NoError(t, err)

	base, err := ParseConfigFileData(nil, "base")
	assert.NoError(t, err)
	full, err := ParseConfigFileData([]byte("CONFIG_A=y\nCONFIG_B=y\nCONFIG_D=y\n"), "full")
	assert.NoError(t, err)

	// Passing only the leaf of a 3-level chain must still pull in every
	// ancestor, not just the one it depends on directly.
	closure := kconf.addDependencies(base, full, []string{"D"})
	assert.Equal(t, []string{"A", "B", "D"}, closure)
}
