// Copyright 2026 go-kconfig authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be
// found in the LICENSE file.

package kconfig

import (
	"fmt"
	"testing"

	"github.com/google/syzkaller/pkg/debugtracer"
	"github.com/stretchr/testify/assert"
)

func TestMinimize(t *testing.T) {
	const kconfigSrc = `
mainmenu "test"
config A
	bool "a"
config B
	bool "b"
config C
	bool "c"
config D
	bool "d"
`
	const baseConfig = "CONFIG_A=y\n"
	const fullConfig = "CONFIG_A=y\nCONFIG_B=y\nCONFIG_C=y\nCONFIG_D=y\n"

	kconf, err := ParseData([]byte(kconfigSrc), "Kconfig")
	assert.NoError(t, err)
	base, err := ParseConfigFileData([]byte(baseConfig), "base")
	assert.NoError(t, err)
	full, err := ParseConfigFileData([]byte(fullConfig), "full")
	assert.NoError(t, err)

	tests := []struct {
		pred func(*ConfigFile) (bool, error)
		want string
	}{
		{pred: func(*ConfigFile) (bool, error) { return true, nil }, want: baseConfig},
		{pred: func(*ConfigFile) (bool, error) { return false, nil }, want: fullConfig},
		{
			pred: func(cf *ConfigFile) (bool, error) { return cf.Value("C") != ConfigNo, nil },
			want: "CONFIG_A=y\nCONFIG_C=y\n",
		},
	}
	for i, test := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			res, err := kconf.Minimize(base, full, test.pred, &debugtracer.TestTracer{T: t})
			assert.NoError(t, err)
			assert.Equal(t, test.want, string(res.Serialize()))
		})
	}
}
