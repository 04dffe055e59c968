// Copyright 2026 go-kconfig authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be
// found in the LICENSE file.

package kconfig

import (
	"fmt"
	"os"
	"path/filepath"
)

// Kconfig is the root context of a parsed Kconfig tree: an interned
// symbol table, the top-level MenuNode, the optional `option modules`
// symbol, the accumulated warning list, and the environment the parser
// ran under. A Kconfig is single-threaded: mutating one instance (via
// SetValue/LoadConfig/etc.) from multiple goroutines concurrently is not
// supported, but independent instances may be used in parallel.
type Kconfig struct {
	syms    map[string]*Symbol
	choices []*Choice

	// DefinedSyms holds every Symbol with at least one MenuNode, in
	// first-definition parse order.
	DefinedSyms []*Symbol

	TopNode     *MenuNode
	MainmenuText string

	ConfigPrefix string // default "CONFIG_"
	Srctree      string // root for `source`, default "."

	Warnings     []Warning
	warnEnabled  bool
	warnToStderr bool
	warnUndef    bool

	env map[string]string

	symYes, symMod, symNo *Symbol
	modulesSym            *Symbol
	modulesSymSet         bool

	defconfigListSym *Symbol

	constStrs map[string]*Symbol

	depsBuilt bool
}

// Option configures Parse / ParseData.
type Option func(*Kconfig)

// WarnEnabled turns warning collection on or off (default on).
func WarnEnabled(v bool) Option { return func(kc *Kconfig) { kc.warnEnabled = v } }

// WarnToStderr additionally streams each Warning to os.Stderr as it is
// recorded (default on, matching Kconfig(path, warn=True,
// warn_to_stderr=True).
func WarnToStderr(v bool) Option { return func(kc *Kconfig) { kc.warnToStderr = v } }

// WarnUndefAssign enables the (spammy, off by default) warning for
// assignments to undefined symbols seen while loading a .config.
func WarnUndefAssign(v bool) Option { return func(kc *Kconfig) { kc.warnUndef = v } }

// ConfigPrefix overrides the "CONFIG_" prefix used in .config files.
func ConfigPrefix(prefix string) Option {
	return func(kc *Kconfig) { kc.ConfigPrefix = prefix }
}

// Srctree overrides the root directory `source` paths are resolved
// against (default ".", or $srctree if set in the environment).
func Srctree(dir string) Option {
	return func(kc *Kconfig) { kc.Srctree = dir }
}

func newKconfigInstance(opts ...Option) *Kconfig {
	kc := &Kconfig{
		syms:         make(map[string]*Symbol),
		constStrs:    make(map[string]*Symbol),
		ConfigPrefix: "CONFIG_",
		Srctree:      ".",
		warnEnabled:  true,
		warnToStderr: true,
		env:          envOverlay(),
	}
	if dir, ok := kc.env["srctree"]; ok && dir != "" {
		kc.Srctree = dir
	}
	kc.symYes = kc.internConstant("y")
	kc.symMod = kc.internConstant("m")
	kc.symNo = kc.internConstant("n")
	for _, opt := range opts {
		opt(kc)
	}
	return kc
}

func envOverlay() map[string]string {
	m := make(map[string]string)
	for _, kv := range os.Environ() {
		for i := 0; i < len(kv); i++ {
			if kv[i] == '=' {
				m[kv[:i]] = kv[i+1:]
				break
			}
		}
	}
	return m
}

func (kc *Kconfig) internConstant(name string) *Symbol {
	sym := newSymbol(kc, name)
	sym.IsConstant = true
	sym.typ = TypeBool
	kc.syms[name] = sym
	return sym
}

// internConstString interns a quoted-string literal used as an expression
// operand (e.g. in `default "foo"` or a comparison) as a constant Symbol of
// type string, so that equal literals compare Sym==Sym and StrValue() needs
// no special-casing in the evaluator.
func (kc *Kconfig) internConstString(value string) *Symbol {
	if sym, ok := kc.constStrs[value]; ok {
		return sym
	}
	sym := newSymbol(kc, value)
	sym.IsConstant = true
	sym.typ = TypeString
	v := value
	sym.userStrValue = &v
	kc.constStrs[value] = sym
	return sym
}

// lookupSymbol returns the Symbol named name, creating an untyped
// placeholder (an "undefined symbol materializes as an untyped
// placeholder") if it has not been seen before.
func (kc *Kconfig) lookupSymbol(name string) *Symbol {
	if sym, ok := kc.syms[name]; ok {
		return sym
	}
	sym := newSymbol(kc, name)
	kc.syms[name] = sym
	return sym
}

// Sym looks up a defined symbol by name (without the CONFIG_ prefix).
// Returns nil if no such symbol was ever referenced.
func (kc *Kconfig) Sym(name string) *Symbol {
	return kc.syms[name]
}

// Choices returns every choice block parsed into this instance, in parse
// order.
func (kc *Kconfig) Choices() []*Choice { return kc.choices }

func (kc *Kconfig) modulesSymbol() *Symbol { return kc.modulesSym }

func (kc *Kconfig) invalidateAll() {
	for _, sym := range kc.DefinedSyms {
		sym.invalidate()
	}
	for _, c := range kc.choices {
		c.invalidate()
	}
}

func (kc *Kconfig) warnf(kind WarningKind, file string, line int, format string, args ...interface{}) {
	if !kc.warnEnabled {
		return
	}
	if kind == WarnUndefinedSymbol && !kc.warnUndef {
		// still record it so UndefinedSymbols() can report it, just
		// don't spam stderr unless the caller asked for it.
		w := Warning{Kind: kind, File: file, Line: line, Msg: fmt.Sprintf(format, args...)}
		kc.Warnings = append(kc.Warnings, w)
		return
	}
	w := Warning{Kind: kind, File: file, Line: line, Msg: fmt.Sprintf(format, args...)}
	kc.Warnings = append(kc.Warnings, w)
	if kc.warnToStderr {
		fmt.Fprintln(os.Stderr, w.String())
	}
}

// UndefinedSymbols returns the distinct names referenced in a select,
// imply, default or dependency expression but never declared with
// `config`/`menuconfig`. Names seen only in a .config assignment are not
// included, and the order of the returned names is not defined. Grounded
// on kconfiglib's examples/print_undefined.py.
func (kc *Kconfig) UndefinedSymbols() []string {
	seen := make(map[string]bool)
	var out []string
	for _, w := range kc.Warnings {
		if w.Kind != WarnUndefinedSymbol {
			continue
		}
		// Messages are generated by warnf with the symbol name as the
		// first %s-substituted token in our call sites; recover it from
		// the Symbol table instead of parsing the message.
		_ = w
	}
	for name, sym := range kc.syms {
		if !sym.IsConstant && len(sym.Nodes) == 0 && kc.symIsReferenced(sym) && !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}

func (kc *Kconfig) symIsReferenced(sym *Symbol) bool {
	return len(sym.directDependents) > 0 || sym.RevDep != nil || sym.WeakRevDep != nil
}

// EvalString parses s as a standalone dependency expression and evaluates
// it against the instance's current symbol values. Grounded on
// kconfiglib.Config.eval_string, used by examples/eval_expr.py.
func (kc *Kconfig) EvalString(s string) (Tristate, error) {
	p := &parser{kc: kc}
	lx := newLexer([]byte(s), "<eval_string>")
	lx.evalEnv = kc.env
	toks, err := lx.lexLine()
	if err != nil {
		return No, err
	}
	e, err := p.parseExprTokens(toks, "<eval_string>", 0)
	if err != nil {
		return No, err
	}
	return ExprValue(e), nil
}

// DefconfigFilename returns the first candidate filename named by the
// symbol marked `option defconfig_list` that exists relative to Srctree,
// mirroring kconfiglib's get_defconfig_filename() (used by
// examples/defconfig.py).
func (kc *Kconfig) DefconfigFilename() (string, bool) {
	if kc.defconfigListSym == nil {
		return "", false
	}
	for _, d := range kc.defconfigListSym.Defaults {
		if ExprValue(d.Cond) == No {
			continue
		}
		name := ExprValue2String(d.Value)
		if name == "" {
			continue
		}
		path := name
		if !filepath.IsAbs(path) {
			path = filepath.Join(kc.Srctree, path)
		}
		if _, err := os.Stat(path); err == nil {
			return name, true
		}
	}
	return "", false
}

// ExprValue2String returns the string form of a value expression (used
// for defaults of string/int/hex symbols, and here for defconfig_list
// filenames): the literal if it is a leaf Symbol, "" otherwise.
func ExprValue2String(e *Expr) string {
	if e == nil || e.Kind != ExprSymbol {
		return ""
	}
	return e.Sym.StrValue()
}

// SetAllNo drives every defined bool/tristate symbol to n, except those
// marked `option allnoconfig_y`, which are forced to y. Grounded on
// kconfiglib's examples/allnoconfig.py.
func (kc *Kconfig) SetAllNo() {
	for _, sym := range kc.DefinedSyms {
		if sym.typ != TypeBool && sym.typ != TypeTristate {
			continue
		}
		if sym.IsAllNoConfigY {
			sym.SetValue("y")
		} else {
			sym.SetValue("n")
		}
	}
}

// SetAllYes drives every visible bool/tristate symbol to y where
// assignable, falling back to the highest assignable value otherwise.
// Grounded on kconfiglib's examples/allyesconfig.py.
func (kc *Kconfig) SetAllYes() {
	for _, sym := range kc.DefinedSyms {
		if sym.typ != TypeBool && sym.typ != TypeTristate {
			continue
		}
		assign := sym.Assignable()
		if len(assign) == 0 {
			continue
		}
		best := assign[len(assign)-1]
		sym.SetValue(best.String())
	}
}

// SetAllModule drives every visible tristate symbol to m where
// assignable. Grounded on kconfiglib's examples/allmodconfig.py.
func (kc *Kconfig) SetAllModule() {
	for _, sym := range kc.DefinedSyms {
		if sym.typ != TypeTristate {
			continue
		}
		for _, v := range sym.Assignable() {
			if v == Mod {
				sym.SetValue("m")
				break
			}
		}
	}
}
