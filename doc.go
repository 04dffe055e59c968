// Copyright 2026 go-kconfig authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be
// found in the LICENSE file.

// Package kconfig implements parsing, semantic modeling and evaluation of
// the Kconfig configuration language used by the Linux kernel and similar
// build systems, and reading/writing of the .config, minimal defconfig and
// autoconf.h artifacts it produces. For the language reference see:
// https://www.kernel.org/doc/html/latest/kbuild/kconfig-language.html
package kconfig
