// Copyright 2026 go-kconfig authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be
// found in the LICENSE file.

package kconfig

// Tristate is the three-valued logic used for bool/tristate symbols and
// the expressions built from them: n < m < y.
type Tristate int

const (
	No Tristate = iota
	Mod
	Yes
)

func (t Tristate) String() string {
	switch t {
	case No:
		return "n"
	case Mod:
		return "m"
	case Yes:
		return "y"
	default:
		return "?"
	}
}

// And implements tristate AND (min).
func (t Tristate) And(u Tristate) Tristate {
	if t < u {
		return t
	}
	return u
}

// Or implements tristate OR (max).
func (t Tristate) Or(u Tristate) Tristate {
	if t > u {
		return t
	}
	return u
}

// Not implements tristate NOT: y<->n, m stays m.
func (t Tristate) Not() Tristate {
	return 2 - t
}

func tristateFromString(s string) (Tristate, bool) {
	switch s {
	case "n":
		return No, true
	case "m":
		return Mod, true
	case "y":
		return Yes, true
	default:
		return No, false
	}
}
