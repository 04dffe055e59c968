// Copyright 2026 go-kconfig authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be
// found in the LICENSE file.

// kconfig-tool is a small command-line driver over the kconfig package, in
// the spirit of tools/syz-minconfig in the upstream project this one is
// derived from: it exercises the public API from the shell rather than
// providing an interactive menuconfig-style UI.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/syzkaller/pkg/debugtracer"
	"github.com/google/syzkaller/pkg/tool"
	golog "github.com/google/syzkaller/pkg/log"

	"github.com/ulfalizer/go-kconfig"
)

func main() {
	var (
		flagKconfig  = flag.String("kconfig", "", "path to the top-level Kconfig file")
		flagConfig   = flag.String("config", "", ".config file to load on top of the parsed defaults")
		flagSet      = flag.String("set", "", "allnoconfig|allyesconfig|allmodconfig, applied before -config")
		flagOut      = flag.String("o", "", "write the resulting .config here")
		flagMinOut   = flag.String("min-out", "", "write a minimal defconfig here")
		flagAutoconf = flag.String("autoconf", "", "write autoconf.h here")
		flagSyncDir  = flag.String("sync-deps-dir", "", "write incremental-build dependency files under this directory")
		flagEval     = flag.String("eval", "", "evaluate this expression against the loaded config and print y/m/n")
		flagUndef    = flag.Bool("print-undefined", false, "list referenced-but-undeclared symbols")
		flagVerbose  = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()
	golog.EnableLogCaching(1000, 1<<20)
	if *flagVerbose {
		golog.Logf(0, "starting kconfig-tool")
	}

	if *flagKconfig == "" {
		tool.Failf("-kconfig is required")
	}
	kconf, err := kconfig.Parse(*flagKconfig)
	if err != nil {
		tool.Fail(err)
	}

	switch *flagSet {
	case "":
	case "allnoconfig":
		kconf.SetAllNo()
	case "allyesconfig":
		kconf.SetAllYes()
	case "allmodconfig":
		kconf.SetAllModule()
	default:
		tool.Failf("unknown -set value %q", *flagSet)
	}

	if *flagConfig != "" {
		if err := kconfig.LoadConfig(kconf, *flagConfig); err != nil {
			tool.Fail(err)
		}
	}

	if *flagUndef {
		for _, name := range kconf.UndefinedSymbols() {
			fmt.Println(name)
		}
	}

	if *flagEval != "" {
		v, err := kconf.EvalString(*flagEval)
		if err != nil {
			tool.Fail(err)
		}
		fmt.Println(v)
	}

	if *flagOut != "" {
		if err := kconfig.WriteConfig(kconf, *flagOut); err != nil {
			tool.Fail(err)
		}
	}
	if *flagMinOut != "" {
		if err := kconfig.WriteMinConfig(kconf, *flagMinOut); err != nil {
			tool.Fail(err)
		}
	}
	if *flagAutoconf != "" {
		if err := kconfig.WriteAutoconf(kconf, *flagAutoconf); err != nil {
			tool.Fail(err)
		}
	}
	if *flagSyncDir != "" {
		gt := &debugtracer.GenericTracer{TraceWriter: os.Stdout, WithTime: *flagVerbose}
		if err := kconfig.SyncDeps(kconf, *flagSyncDir, gt); err != nil {
			tool.Fail(err)
		}
	}
}
