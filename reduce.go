// Copyright 2026 go-kconfig authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be
// found in the LICENSE file.

package kconfig

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/google/syzkaller/pkg/debugtracer"
)

// Reduce finds a config equivalent to full with respect to pred, somewhere
// between base and full. Unlike Minimize, it does not aim for the smallest
// possible config, only the best it can do in steps rounds; grounded on
// pkg/kconfig/reduce.go, adapted to the richer Symbol-graph DependsOn in
// place of pkg/kconfig's flat kconf.Configs map.
func (kc *Kconfig) Reduce(base, full *ConfigFile, pred func(*ConfigFile) (bool, error),
	steps int, r *rand.Rand, dt debugtracer.DebugTracer) (*ConfigFile, error) {
	diff, other := kc.missingLeafConfigs(base, full)
	dt.Logf("kconfig reduce: base=%v full=%v diff=%v", len(base.Configs), len(full.Configs), len(diff))

	take := 0.75
	current := full.Clone()
	for step := 1; step <= steps; step++ {
		totalClosure := kc.addDependencies(base, full, diff)
		dt.Logf("step %d: diff=%v closure=%d take=%.2f", step, len(diff), len(totalClosure), take)
		r.Shuffle(len(diff), func(i, j int) {
			diff[i], diff[j] = diff[j], diff[i]
		})

		var yes, tookDiff []string
		for i := 1; i <= len(diff); i++ {
			closure := kc.addDependencies(base, full, diff[:i])
			if len(closure) == len(totalClosure) {
				break
			}
			tookDiff = diff[:i]
			yes = closure
			if float64(len(closure)) >= take*float64(len(totalClosure)) {
				break
			}
		}

		candidate := base.Clone()
		for _, e := range other {
			candidate.Set(e.Name, e.Value)
		}
		for _, name := range yes {
			candidate.Set(name, ConfigYes)
		}
		dt.SaveFile(fmt.Sprintf("step_%d.config", step), candidate.Serialize())

		res, err := pred(candidate)
		if err != nil {
			return nil, err
		}
		if res {
			diff = tookDiff
			current = candidate
		} else if len(tookDiff) == 0 {
			dt.Logf("empty diff didn't satisfy the predicate, stopping")
			break
		} else {
			take = take + (1.0-take)/4
		}
	}
	return current, nil
}

// missingLeafConfigs returns the subset of missingConfigs that no other
// missing config depends on, the same leaf-first heuristic reduce.go uses
// to avoid wasting rounds on configs auto-enabled by their dependents.
func (kc *Kconfig) missingLeafConfigs(base, full *ConfigFile) ([]string, []*ConfigEntry) {
	diff, other := kc.missingConfigs(base, full)
	needed := make(map[string]bool)
	for _, name := range diff {
		for _, dep := range kc.addDependencies(base, full, []string{name}) {
			if dep != name {
				needed[dep] = true
			}
		}
	}
	var leaves []string
	for _, name := range diff {
		if !needed[name] {
			leaves = append(leaves, name)
		}
	}
	return leaves, other
}

// addDependencies is shared with Minimize: it expands configs to the
// transitive closure of dependencies that full enables but base doesn't,
// using Symbol.DependsOn in place of pkg/kconfig's DependsOn() method on
// its own simplified per-config map.
func (kc *Kconfig) addDependencies(base, full *ConfigFile, configs []string) []string {
	closure := make(map[string]bool)
	for _, name := range configs {
		closure[name] = true
		sym := kc.Sym(name)
		if sym == nil {
			continue
		}
		for dep := range sym.DependsOn() {
			if full.Value(dep) != ConfigNo && base.Value(dep) == ConfigNo {
				closure[dep] = true
			}
		}
	}
	sorted := make([]string, 0, len(closure))
	for name := range closure {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)
	return sorted
}

// missingConfigs splits full's entries into tristate configs enabled in
// full but not base (candidates for the diff) and everything else (string/
// int/hex configs, which Reduce/Minimize never try to shrink and instead
// always carry over verbatim).
func (kc *Kconfig) missingConfigs(base, full *ConfigFile) (tristate []string, other []*ConfigEntry) {
	for _, e := range full.Configs {
		if e.Value == ConfigYes && base.Value(e.Name) == ConfigNo {
			tristate = append(tristate, e.Name)
		} else if e.Value != ConfigNo && e.Value != ConfigYes && e.Value != ConfigMod {
			other = append(other, e)
		}
	}
	sort.Strings(tristate)
	return tristate, other
}
