// Copyright 2026 go-kconfig authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be
// found in the LICENSE file.

package kconfig

import (
	"github.com/google/syzkaller/pkg/debugtracer"
	"github.com/google/syzkaller/pkg/osutil"
)

// CauseConfigFile is the filename Minimize writes its final suspect set to.
const CauseConfigFile = "cause.config"

// Minimize finds a config equivalent to full with respect to pred, but as
// small as the bisection below can make it. base is assumed not to satisfy
// pred; full is assumed to. Ported from pkg/kconfig/minimize.go, bisecting
// over the tristate diff between base and full exactly as pkg/kconfig's Minimize does.
func (kc *Kconfig) Minimize(base, full *ConfigFile, pred func(*ConfigFile) (bool, error),
	dt debugtracer.DebugTracer) (*ConfigFile, error) {
	diff, other := kc.missingConfigs(base, full)
	dt.Logf("kconfig minimization: base=%v full=%v diff=%v", len(base.Configs), len(full.Configs), len(diff))

	if res, err := pred(base); err != nil {
		return nil, err
	} else if res {
		dt.Logf("base config already satisfies the predicate")
		return base, nil
	}

	current := full.Clone()
	var suspects []string
top:
	for len(diff) >= 2 {
		half := len(diff) / 2
		for _, part := range [][]string{diff[:half], diff[half:]} {
			dt.Logf("trying half: %v", part)
			closure := kc.addDependencies(base, full, part)
			candidate := base.Clone()
			for _, e := range other {
				candidate.Set(e.Name, e.Value)
			}
			for _, name := range closure {
				candidate.Set(name, ConfigYes)
			}
			res, err := pred(candidate)
			if err != nil {
				return nil, err
			}
			if res {
				dt.Logf("half satisfied the predicate")
				diff = part
				current = candidate
				suspects = closure
				continue top
			}
		}
		dt.Logf("neither half satisfied the predicate")
		break
	}
	if suspects != nil {
		dt.Logf("resulting configs: %v", suspects)
		kc.writeSuspects(dt, suspects)
	} else {
		dt.Logf("only the full config satisfies the predicate")
	}
	return current, nil
}

func (kc *Kconfig) writeSuspects(dt debugtracer.DebugTracer, suspects []string) {
	cf := &ConfigFile{Map: make(map[string]*ConfigEntry)}
	for _, name := range suspects {
		cf.Set(name, ConfigYes)
	}
	if err := osutil.WriteFile(CauseConfigFile, cf.Serialize()); err != nil {
		dt.Logf("failed to write %s: %v", CauseConfigFile, err)
	}
}
