// Copyright 2026 go-kconfig authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be
// found in the LICENSE file.

package kconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/syzkaller/pkg/debugtracer"
	"github.com/google/syzkaller/pkg/osutil"
)

// LoadConfig reads a .config file at path and assigns every recognized
// `CONFIG_NAME=value` / `# CONFIG_NAME is not set` line as a user value,
// the same as if each had been typed into a menu front end. Assignments to
// undefined symbols are recorded as warnings (see WarnUndefAssign) rather
// than rejected, since a .config written against a different Kconfig
// revision routinely contains stale entries.
func LoadConfig(kc *Kconfig, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return LoadConfigData(kc, data, path)
}

// LoadConfigData is LoadConfig over an in-memory buffer.
func LoadConfigData(kc *Kconfig, data []byte, path string) error {
	for i, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || (strings.HasPrefix(line, "#") && !strings.Contains(line, "is not set")) {
			continue
		}
		if strings.HasPrefix(line, "#") {
			name, ok := parseIsNotSetLine(line, kc.ConfigPrefix)
			if !ok {
				continue
			}
			assignLoadedValue(kc, name, "n", path, i+1)
			continue
		}
		if !strings.HasPrefix(line, kc.ConfigPrefix) {
			continue
		}
		eq := strings.IndexByte(line, '=')
		if eq == -1 {
			continue
		}
		name := line[len(kc.ConfigPrefix):eq]
		assignLoadedValue(kc, name, unquoteConfigValue(line[eq+1:]), path, i+1)
	}
	kc.invalidateAll()
	return nil
}

func parseIsNotSetLine(line, prefix string) (string, bool) {
	const suffix = " is not set"
	body := strings.TrimPrefix(line, "#")
	body = strings.TrimSpace(body)
	if !strings.HasPrefix(body, prefix) || !strings.HasSuffix(body, suffix) {
		return "", false
	}
	return strings.TrimSuffix(strings.TrimPrefix(body, prefix), suffix), true
}

func unquoteConfigValue(v string) string {
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		inner := v[1 : len(v)-1]
		inner = strings.ReplaceAll(inner, `\"`, `"`)
		inner = strings.ReplaceAll(inner, `\\`, `\`)
		return inner
	}
	return v
}

func assignLoadedValue(kc *Kconfig, name, value, file string, line int) {
	sym := kc.syms[name]
	if sym == nil {
		if kc.warnUndef {
			kc.warnf(WarnUndefinedSymbol, file, line,
				"attempt to assign the value %q to the undefined symbol %s", value, name)
		}
		return
	}
	sym.setValueNoInvalidate(value, true)
}

// configLine renders sym's single .config line, or "" if it isn't visible
// and isn't otherwise forced to a value worth recording (WriteToConf).
func configLine(kc *Kconfig, sym *Symbol) string {
	if !sym.WriteToConf() {
		return ""
	}
	switch sym.Type() {
	case TypeBool, TypeTristate:
		if v := sym.TriValue(); v == No {
			return fmt.Sprintf("# %s%s is not set\n", kc.ConfigPrefix, sym.Name)
		} else {
			return fmt.Sprintf("%s%s=%s\n", kc.ConfigPrefix, sym.Name, v)
		}
	case TypeString:
		return fmt.Sprintf("%s%s=%q\n", kc.ConfigPrefix, sym.Name, sym.StrValue())
	case TypeInt, TypeHex:
		return fmt.Sprintf("%s%s=%s\n", kc.ConfigPrefix, sym.Name, sym.StrValue())
	default:
		return ""
	}
}

// WriteConfig serializes the current value of every symbol WriteToConf
// accepts (visible ones, and invisible ones given a value by a default,
// select or imply) to path as a full .config file, via osutil.WriteFile
// for the same atomic-rename-on-write guarantee the rest of the ecosystem's config writers rely on.
func WriteConfig(kc *Kconfig, path string) error {
	var b strings.Builder
	b.WriteString("#\n# Automatically generated file; DO NOT EDIT.\n#\n")
	for _, sym := range kc.DefinedSyms {
		b.WriteString(configLine(kc, sym))
	}
	return osutil.WriteFile(path, []byte(b.String()))
}

// WriteMinConfig serializes only the symbols whose value differs from what
// it would be with no user assignments at all -- a minimal defconfig
// sufficient to reproduce the current configuration when combined with the
// Kconfig tree's own defaults. Grounded on kconfiglib's
// write_min_config/examples/defconfig.py.
func WriteMinConfig(kc *Kconfig, path string) error {
	bareline := snapshotWithoutUserValues(kc)

	var b strings.Builder
	b.WriteString("#\n# Minimal config, differences from defaults only.\n#\n")
	for _, sym := range kc.DefinedSyms {
		cur := configLine(kc, sym)
		if cur == "" || cur == bareline[sym.Name] {
			continue
		}
		b.WriteString(cur)
	}
	return osutil.WriteFile(path, []byte(b.String()))
}

func snapshotWithoutUserValues(kc *Kconfig) map[string]string {
	type saved struct {
		uv  *Tristate
		usv *string
	}
	savedSyms := make(map[*Symbol]saved, len(kc.DefinedSyms))
	for _, sym := range kc.DefinedSyms {
		savedSyms[sym] = saved{sym.userValue, sym.userStrValue}
		sym.userValue = nil
		sym.userStrValue = nil
	}
	savedChoiceVal := make(map[*Choice]*Tristate, len(kc.choices))
	savedChoiceSel := make(map[*Choice]*Symbol, len(kc.choices))
	for _, ch := range kc.choices {
		savedChoiceVal[ch] = ch.userValue
		savedChoiceSel[ch] = ch.userSelection
		ch.userValue = nil
		ch.userSelection = nil
	}
	kc.invalidateAll()

	out := make(map[string]string, len(kc.DefinedSyms))
	for _, sym := range kc.DefinedSyms {
		out[sym.Name] = configLine(kc, sym)
	}

	for sym, sv := range savedSyms {
		sym.userValue = sv.uv
		sym.userStrValue = sv.usv
	}
	for ch, v := range savedChoiceVal {
		ch.userValue = v
		ch.userSelection = savedChoiceSel[ch]
	}
	kc.invalidateAll()
	return out
}

// WriteAutoconf serializes every symbol's value as C preprocessor defines
// (autoconf.h), the form a build consumes via #include/#ifdef rather than
// shell-sourcing.
func WriteAutoconf(kc *Kconfig, path string) error {
	var b strings.Builder
	b.WriteString("/*\n * Automatically generated file; DO NOT EDIT.\n */\n")
	for _, sym := range kc.DefinedSyms {
		switch sym.Type() {
		case TypeBool:
			if sym.TriValue() == Yes {
				fmt.Fprintf(&b, "#define %s%s 1\n", kc.ConfigPrefix, sym.Name)
			}
		case TypeTristate:
			switch sym.TriValue() {
			case Yes:
				fmt.Fprintf(&b, "#define %s%s 1\n", kc.ConfigPrefix, sym.Name)
			case Mod:
				fmt.Fprintf(&b, "#define %s%s_MODULE 1\n", kc.ConfigPrefix, sym.Name)
			}
		case TypeString:
			if sym.Visibility() != No {
				fmt.Fprintf(&b, "#define %s%s %q\n", kc.ConfigPrefix, sym.Name, sym.StrValue())
			}
		case TypeInt, TypeHex:
			if sym.Visibility() != No && sym.StrValue() != "" {
				fmt.Fprintf(&b, "#define %s%s %s\n", kc.ConfigPrefix, sym.Name, sym.StrValue())
			}
		}
	}
	return osutil.WriteFile(path, []byte(b.String()))
}

// SyncDeps writes the incremental-build dependency tree under dir: one
// marker header per symbol (at the path the kernel's Makefile convention
// derives from its name, e.g. FOO_BAR -> config/foo/bar.h) plus a combined
// auto.conf, touching only files whose content actually changed so a
// Makefile's file-mtime-based rebuild stays minimal. tracer receives a Log
// line per symbol synced and a SaveFile callout for the combined file;
// pass &debugtracer.NullTracer{} to run silently.
func SyncDeps(kc *Kconfig, dir string, tracer debugtracer.DebugTracer) error {
	if tracer == nil {
		tracer = &debugtracer.NullTracer{}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	var autoConf strings.Builder
	for _, sym := range kc.DefinedSyms {
		line := configLine(kc, sym)
		if line == "" {
			continue
		}
		autoConf.WriteString(line)

		full := filepath.Join(dir, symIncludePath(sym.Name))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return err
		}
		existing, _ := os.ReadFile(full)
		if string(existing) == line {
			continue
		}
		if err := osutil.WriteFile(full, []byte(line)); err != nil {
			return err
		}
		tracer.Logf("synced dependency file for %s", sym.Name)
	}

	autoConfPath := filepath.Join(dir, "auto.conf")
	tracer.SaveFile("auto.conf", []byte(autoConf.String()))
	return osutil.WriteFile(autoConfPath, []byte(autoConf.String()))
}

func symIncludePath(name string) string {
	parts := strings.Split(strings.ToLower(name), "_")
	return filepath.Join("config", filepath.Join(parts...)) + ".h"
}
