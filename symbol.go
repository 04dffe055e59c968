// Copyright 2026 go-kconfig authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be
// found in the LICENSE file.

package kconfig

// Symbol is a named configuration entity: a bool/tristate/string/int/hex
// value with zero or more defining MenuNodes, a set of properties
// (prompt lives on the MenuNode; default/select/imply/range live here,
// grouped by kind and accumulated across every definition), and the
// dependency/reverse-dependency expressions the finalizer derives from
// them.
type Symbol struct {
	kconf *Kconfig

	Name       string
	IsConstant bool // true for the synthetic y/m/n symbols

	typ SymbolType

	Nodes []*MenuNode

	Defaults []Default
	Selects  []SelectImply
	Implies  []SelectImply
	Ranges   []Range

	// EnvVar is set by `option env="NAME"`: the symbol's default tracks
	// the named environment variable.
	EnvVar string

	IsAllNoConfigY bool // `option allnoconfig_y`
	IsDefconfigList bool // `option defconfig_list`

	// DirectDep is the OR, across every definition, of that definition's
	// effective dependency (enclosing if/menu conditions plus its own
	// `depends on`).
	DirectDep *Expr

	// RevDep/WeakRevDep accumulate during parsing: RevDep is the OR
	// of `(selector AND cond)` for every `select this if cond` found
	// anywhere in the tree; WeakRevDep is the same for `imply`. Both are
	// immutable once finalization completes.
	RevDep     *Expr
	WeakRevDep *Expr

	// Choice is non-nil iff this symbol is a member of a choice block.
	Choice *Choice

	userValue    *Tristate // bool/tristate user value, nil if unset
	userStrValue *string   // string/int/hex user value, nil if unset

	// dirty caches, invalidated by the value engine (value.go).
	dirty           bool
	cachedTri       Tristate
	cachedStr       string
	cachedVis       Tristate
	cachedAssign    []Tristate
	cachedWriteConf bool

	// directDependents are the symbols/choices whose cached value might
	// change when this symbol's value changes; built once by
	// buildDependencyIndex (value.go) and walked by recInvalidate() via
	// getDependent().
	directDependents map[invalidatable]bool
	rdepsCache       []invalidatable
	rdepsCacheValid  bool

	// depsCache memoizes DependsOn, which only depends on the static
	// dependency graph and so never needs invalidating once computed.
	depsCache     map[string]bool
	depsComputing bool // cycle guard while depsCache is being filled

	alreadyWritten bool // not set or read by the .config writers in config.go
}

// invalidatable is implemented by Symbol and Choice so the dirty-flag
// cascade in value.go can treat both uniformly.
type invalidatable interface {
	invalidate()
	dependents() map[invalidatable]bool
}

func newSymbol(kc *Kconfig, name string) *Symbol {
	return &Symbol{
		kconf:            kc,
		Name:             name,
		directDependents: make(map[invalidatable]bool),
		dirty:            true,
	}
}

// Type returns the symbol's effective type: a TRISTATE symbol reads as
// BOOL when it is the member of a choice whose mode is y, or when no
// `option modules` symbol is in effect (the type-cap rule mirrored
// from kconfiglib's Symbol.type).
func (s *Symbol) Type() SymbolType {
	if s.typ == TypeTristate {
		if s.Choice != nil && s.Choice.TriValue() == Yes {
			return TypeBool
		}
		if s.kconf.modulesSymbol() == nil || s.kconf.modulesSymbol().TriValue() == No {
			return TypeBool
		}
	}
	return s.typ
}

// RawType returns the as-declared type, without the choice/modules cap
// Type() applies.
func (s *Symbol) RawType() SymbolType { return s.typ }

func (s *Symbol) invalidate() {
	s.dirty = true
	s.cachedAssign = nil
	s.rdepsCacheValid = false
}

func (s *Symbol) dependents() map[invalidatable]bool { return s.directDependents }

// UserValue returns the tristate the user most recently assigned via
// SetValue/LoadConfig, and false if none was ever set. Only meaningful
// for BOOL/TRISTATE symbols.
func (s *Symbol) UserValue() (Tristate, bool) {
	if s.userValue == nil {
		return No, false
	}
	return *s.userValue, true
}

// UserStringValue returns the user-assigned string/int/hex value, and
// false if none was ever set.
func (s *Symbol) UserStringValue() (string, bool) {
	if s.userStrValue == nil {
		return "", false
	}
	return *s.userStrValue, true
}

// SetValue assigns a new user value to the symbol, exactly as if the
// assignment had appeared in a .config file or been typed into a menu
// front end. Returns false (and appends a Warning) if value isn't valid
// for the symbol's type; on success it also invalidates every symbol
// whose cached value might depend on this one.
func (s *Symbol) SetValue(value string) bool {
	ok := s.setValueNoInvalidate(value, false)
	if !ok {
		return false
	}
	if s == s.kconf.modulesSymbol() {
		s.kconf.invalidateAll()
	} else {
		recInvalidate(s)
	}
	return true
}

// UnsetValue clears the symbol's user value, as if it had never been set.
func (s *Symbol) UnsetValue() {
	s.userValue = nil
	s.userStrValue = nil
	recInvalidate(s)
}

func (s *Symbol) setValueNoInvalidate(value string, suppressPromptWarning bool) bool {
	valid := false
	switch s.typ {
	case TypeBool:
		valid = value == "n" || value == "y"
	case TypeTristate:
		valid = value == "n" || value == "m" || value == "y"
	case TypeString:
		valid = true
	case TypeInt:
		valid = isBaseN(value, 10)
	case TypeHex:
		valid = isBaseN(value, 16)
	default:
		valid = false
	}
	if !valid {
		s.kconf.warnf(WarnInvalidAssignment, "", 0,
			"the value %q is invalid for %s, which has type %s; assignment ignored",
			value, s.Name, s.typ)
		return false
	}

	if len(s.Nodes) == 0 {
		s.kconf.warnf(WarnUndefinedSymbol, "", 0,
			"assigning the value %q to the undefined symbol %s will have no effect", value, s.Name)
	}

	if !suppressPromptWarning {
		hasPrompt := false
		for _, n := range s.Nodes {
			if n.Prompt != nil {
				hasPrompt = true
				break
			}
		}
		if !hasPrompt {
			s.kconf.warnf(WarnPromptlessAssignment, "", 0,
				"assigning the value %q to the promptless symbol %s will have no effect", value, s.Name)
		}
	}

	switch s.typ {
	case TypeBool, TypeTristate:
		tri, _ := tristateFromString(value)
		s.userValue = &tri
	default:
		v := value
		s.userStrValue = &v
	}

	if s.Choice != nil && (s.typ == TypeBool || s.typ == TypeTristate) {
		switch value {
		case "y":
			y := Yes
			s.Choice.userValue = &y
			s.Choice.userSelection = s
		case "m":
			m := Mod
			s.Choice.userValue = &m
		}
	}
	return true
}

func isBaseN(s string, base int) bool {
	if s == "" {
		return false
	}
	start := 0
	if s[0] == '-' {
		start = 1
	}
	if start >= len(s) {
		return false
	}
	if base == 16 {
		rest := s[start:]
		if len(rest) > 2 && rest[0] == '0' && (rest[1] == 'x' || rest[1] == 'X') {
			rest = rest[2:]
		}
		if rest == "" {
			return false
		}
		for _, c := range rest {
			if !isHexDigit(byte(c)) {
				return false
			}
		}
		return true
	}
	for i := start; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

// DependsOn returns every non-constant symbol s transitively depends on:
// the names s.DirectDep references, plus each of those names' own
// DependsOn, mirroring pkg/kconfig's Menu.DependsOn used by
// addDependencies in reduce.go/minimize.go to compute a config's closure.
// The result is memoized, since the dependency graph it walks is fixed
// once the tree is finalized.
func (s *Symbol) DependsOn() map[string]bool {
	if s.depsCache != nil {
		return s.depsCache
	}
	if s.depsComputing {
		// Dependency cycle: let the symbols already on the call stack
		// contribute their own direct deps; the cycle closes itself out
		// once every member has been visited.
		return map[string]bool{}
	}
	s.depsComputing = true

	deps := make(map[string]bool)
	if s.DirectDep != nil {
		s.DirectDep.Walk(func(sym *Symbol) bool {
			if !sym.IsConstant {
				deps[sym.Name] = true
			}
			return true
		})
	}
	indirect := make(map[string]bool)
	for name := range deps {
		dep := s.kconf.syms[name]
		if dep == nil {
			continue
		}
		for name2 := range dep.DependsOn() {
			indirect[name2] = true
		}
	}
	for name := range indirect {
		deps[name] = true
	}

	s.depsComputing = false
	s.depsCache = deps
	return deps
}

func recInvalidate(s *Symbol) {
	s.invalidate()
	for dep := range getDependent(s) {
		dep.invalidate()
	}
}

// getDependent returns the transitive closure of symbols/choices whose
// cached value might change if s changes, per the dependency
// index (and, for choice members, the sibling-exclusivity rule
// kconfiglib documents on Symbol._get_dependent).
func getDependent(s *Symbol) map[invalidatable]bool {
	if s.rdepsCacheValid {
		res := make(map[invalidatable]bool, len(s.rdepsCache))
		for _, d := range s.rdepsCache {
			res[d] = true
		}
		return res
	}
	res := make(map[invalidatable]bool)
	var add func(invalidatable)
	add = func(item invalidatable) {
		if res[item] {
			return
		}
		res[item] = true
		for d := range item.dependents() {
			add(d)
		}
	}
	for d := range s.directDependents {
		add(d)
	}
	if s.Choice != nil {
		res[s.Choice] = true
		for _, sib := range s.Choice.Syms {
			if sib == s {
				continue
			}
			add(sib)
		}
	}
	delete(res, s)
	list := make([]invalidatable, 0, len(res))
	for d := range res {
		list = append(list, d)
	}
	s.rdepsCache = list
	s.rdepsCacheValid = true
	return res
}
