// Copyright 2026 go-kconfig authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be
// found in the LICENSE file.

package kconfig

import "strings"

// Visibility returns the strongest Prompt condition across every MenuNode
// defining the symbol: a symbol with no visible prompt anywhere can still
// hold a value (via default/select), but can never be user-set.
func (s *Symbol) Visibility() Tristate {
	if s.IsConstant {
		return Yes
	}
	vis := No
	for _, n := range s.Nodes {
		if n.Prompt == nil {
			continue
		}
		vis = vis.Or(ExprValue(n.Prompt.Cond))
	}
	return vis
}

// TriValue returns the symbol's current tristate value:
// the user value (capped by visibility, and only taken at all when the
// symbol is visible) or, failing that, the first default whose condition
// holds, clamped by that default's own condition rather than by
// visibility; imply then raises the floor, but only while no user value
// was in play and only when the symbol's direct dependencies hold;
// select finally forces a floor that bypasses visibility and the other
// two entirely. "m" is promoted to "y" for effectively-bool symbols or
// when imply itself asked for "y".
func (s *Symbol) TriValue() Tristate {
	if s.IsConstant {
		switch s {
		case s.kconf.symYes:
			return Yes
		case s.kconf.symMod:
			return Mod
		case s.kconf.symNo:
			return No
		default:
			return No
		}
	}
	if s.typ != TypeBool && s.typ != TypeTristate {
		if s.StrValue() != "" {
			return Yes
		}
		return No
	}
	if !s.dirty {
		return s.cachedTri
	}

	var val Tristate
	var writeConf bool
	if s.Choice != nil {
		val, writeConf = s.choiceMemberValue()
	} else {
		vis := s.Visibility()
		writeConf = vis != No

		if uv, ok := s.UserValue(); ok && vis != No {
			val = uv.And(vis)
		} else {
			val = No
			for _, d := range s.Defaults {
				cond := ExprValue(d.Cond)
				if cond != No {
					writeConf = true
					val = ExprValue(d.Value).And(cond)
					break
				}
			}
			// imply only has a say when no user value is in play, and
			// only while the symbol's own direct dependencies are met.
			if ExprValue(s.DirectDep) != No {
				if weak := revDepValue(s.WeakRevDep); weak != No {
					writeConf = true
					val = val.Or(weak)
				}
			}
		}

		// select bypasses visibility and the user value entirely.
		if rev := revDepValue(s.RevDep); rev != No {
			writeConf = true
			val = val.Or(rev)
		}
	}

	if val == Mod && (s.Type() == TypeBool || revDepValue(s.WeakRevDep) == Yes) {
		val = Yes
	}

	s.cachedTri = val
	s.cachedWriteConf = writeConf
	s.dirty = false
	return val
}

// WriteToConf reports whether sym should appear in .config output: a
// visible bool/tristate/string/int/hex symbol, or (bool/tristate only) one
// that, even while invisible, has a default whose condition holds (whatever
// value that default gives) or is raised to a non-n value by select/imply,
// or a visible choice member whose enclosing choice is in a non-n mode.
func (s *Symbol) WriteToConf() bool {
	if s.typ != TypeBool && s.typ != TypeTristate {
		return s.Visibility() != No
	}
	s.TriValue()
	return s.cachedWriteConf
}

// revDepValue reads a RevDep/WeakRevDep accumulator, which is nil until
// the first select/imply targeting the symbol is parsed. Unlike an
// absent if-condition, that nil means no one has forced a value yet, so
// it must read as n (OR's identity), not the y that a bare ExprValue(nil)
// would give an ordinary absent condition.
func revDepValue(e *Expr) Tristate {
	if e == nil {
		return No
	}
	return ExprValue(e)
}

// choiceMemberValue returns a choice member's value and whether it should
// be written to a .config: both depend on the member's own visibility and
// the enclosing choice's mode, not on the member's own prompt alone.
func (s *Symbol) choiceMemberValue() (Tristate, bool) {
	c := s.Choice
	vis := s.Visibility()
	mode := c.TriValue()
	if vis == No || mode == No {
		return No, false
	}
	if mode == Yes {
		if c.Selection() == s {
			return Yes, true
		}
		return No, true
	}
	// mode == Mod: members are individually assignable n/m.
	if uv, ok := s.UserValue(); ok && (uv == Mod || uv == Yes) {
		return Mod, true
	}
	return No, true
}

// StrValue returns the symbol's current string/int/hex value: its user
// value (if visible), else the first applicable default, range-clamped for
// int/hex and "0x"-prefixed for hex.
func (s *Symbol) StrValue() string {
	if s.IsConstant {
		if s.userStrValue != nil {
			return *s.userStrValue
		}
		return s.Name
	}
	if s.typ == TypeBool || s.typ == TypeTristate {
		return s.TriValue().String()
	}
	if !s.dirty {
		return s.cachedStr
	}

	vis := s.Visibility()
	var val string
	if uv, ok := s.UserStringValue(); ok && vis != No {
		val = uv
	} else {
		for _, d := range s.Defaults {
			if ExprValue(d.Cond) != No {
				val = ExprValue2String(d.Value)
				break
			}
		}
	}

	if s.typ == TypeHex && val != "" && !strings.HasPrefix(val, "0x") && !strings.HasPrefix(val, "0X") {
		val = "0x" + val
	}
	if (s.typ == TypeInt || s.typ == TypeHex) && val != "" {
		val = s.clampToRange(val)
	}

	s.cachedStr = val
	s.dirty = false
	return val
}

func (s *Symbol) clampToRange(val string) string {
	base := 10
	if s.typ == TypeHex {
		base = 16
	}
	for _, r := range s.Ranges {
		if ExprValue(r.Cond) == No {
			continue
		}
		lo, hi := ExprValue2String(r.Low), ExprValue2String(r.High)
		if lo != "" && cmpNumeric(CmpLess, val, lo, base) {
			return lo
		}
		if hi != "" && cmpNumeric(CmpGreater, val, hi, base) {
			return hi
		}
		return val
	}
	return val
}

// Assignable returns the tristate values SetValue will currently accept
// for a BOOL/TRISTATE symbol, in increasing order; nil if the symbol isn't
// visible (or isn't bool/tristate).
func (s *Symbol) Assignable() []Tristate {
	if s.typ != TypeBool && s.typ != TypeTristate {
		return nil
	}
	switch s.Visibility() {
	case Yes:
		if s.Type() == TypeBool {
			return []Tristate{No, Yes}
		}
		return []Tristate{No, Mod, Yes}
	case Mod:
		return []Tristate{No, Mod}
	default:
		return nil
	}
}

// Visibility is the OR of every MenuNode prompt condition defining the
// choice.
func (c *Choice) Visibility() Tristate {
	vis := No
	for _, n := range c.Nodes {
		if n.Prompt == nil {
			continue
		}
		vis = vis.Or(ExprValue(n.Prompt.Cond))
	}
	return vis
}

// TriValue returns the choice's current mode: the user-assigned mode
// (capped by visibility) if any, else the visibility itself -- a
// non-optional choice with members to show defaults to the strongest mode
// its visibility allows. A user-assigned n is ignored unless the choice is
// optional.
func (c *Choice) TriValue() Tristate {
	if !c.dirty {
		return c.cachedTri
	}
	vis := c.Visibility()
	var val Tristate
	if uv, ok := c.UserValue(); ok && (uv != No || c.IsOptional) {
		val = uv.And(vis)
	} else {
		val = vis
	}
	c.cachedTri = val
	c.dirty = false
	return val
}

// Assignable returns the modes SetValue currently accepts.
func (c *Choice) Assignable() []Tristate {
	vis := c.Visibility()
	switch vis {
	case Yes:
		if c.Type() == TypeBool {
			if c.IsOptional {
				return []Tristate{No, Yes}
			}
			return []Tristate{Yes}
		}
		if c.IsOptional {
			return []Tristate{No, Mod, Yes}
		}
		return []Tristate{Mod, Yes}
	case Mod:
		if c.IsOptional {
			return []Tristate{No, Mod}
		}
		return []Tristate{Mod}
	default:
		return nil
	}
}

// Selection returns the currently selected member in mode y: the user's
// explicit selection if it's still visible, else the first default whose
// condition holds and whose symbol is visible, else the first visible
// member. Returns nil outside of mode y or with no visible members.
func (c *Choice) Selection() *Symbol {
	if c.TriValue() != Yes {
		return nil
	}
	if c.cachedSelSet {
		return c.cachedSel
	}
	sel := c.computeSelection()
	c.cachedSel = sel
	c.cachedSelSet = true
	return sel
}

func (c *Choice) computeSelection() *Symbol {
	if c.userSelection != nil && c.userSelection.Visibility() != No {
		return c.userSelection
	}
	for _, d := range c.Defaults {
		if ExprValue(d.Cond) == No {
			continue
		}
		if d.Sym.Visibility() != No {
			return d.Sym
		}
	}
	for _, sym := range c.Syms {
		if sym.Visibility() != No {
			return sym
		}
	}
	return nil
}

// buildDependencyIndex populates every Symbol/Choice's directDependents set
// (component E's dependency index): for each item, the union of symbols
// referenced by every expression that feeds its computed value is
// collected, and each of those symbols is marked as having that item among
// its dependents. recInvalidate then walks directDependents to find
// everything that needs re-evaluating after a SetValue. Grounded on
// kconfiglib's Kconfig._build_dep.
func buildDependencyIndex(kc *Kconfig) {
	addDeps := func(item invalidatable, exprs ...*Expr) {
		deps := make(map[*Symbol]bool)
		for _, e := range exprs {
			if e != nil {
				collectDeps(e, deps)
			}
		}
		for dep := range deps {
			dep.directDependents[item] = true
		}
	}

	for _, sym := range kc.DefinedSyms {
		exprs := []*Expr{sym.DirectDep, sym.RevDep, sym.WeakRevDep}
		for _, d := range sym.Defaults {
			exprs = append(exprs, d.Value, d.Cond)
		}
		for _, r := range sym.Ranges {
			exprs = append(exprs, r.Low, r.High, r.Cond)
		}
		for _, n := range sym.Nodes {
			if n.Prompt != nil {
				exprs = append(exprs, n.Prompt.Cond)
			}
			exprs = append(exprs, n.EffectiveDep)
		}
		addDeps(sym, exprs...)
	}

	for _, ch := range kc.choices {
		var exprs []*Expr
		for _, d := range ch.Defaults {
			exprs = append(exprs, d.Cond)
			exprs = append(exprs, exprSymbol(d.Sym))
		}
		for _, n := range ch.Nodes {
			if n.Prompt != nil {
				exprs = append(exprs, n.Prompt.Cond)
			}
			exprs = append(exprs, n.EffectiveDep)
		}
		for _, sym := range ch.Syms {
			exprs = append(exprs, exprSymbol(sym))
		}
		addDeps(ch, exprs...)
	}
}
