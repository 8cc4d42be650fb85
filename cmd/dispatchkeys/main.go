// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// dispatchkeys lists the dispatch keys and resolves which key takes precedence for a set of keys.
//
// Examples:
//
//	dispatchkeys -list
//	dispatchkeys -set=CPU,CUDA,Autograd -exclude=Autograd
//	GOMLX_DISPATCH="exclude=Tracer" dispatchkeys -set=CPU,Tracer
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/gomlx/dispatch/pkg/core/dispatcher/config"
	"github.com/gomlx/dispatch/pkg/core/dispatchkeys"
	"github.com/janpfeifer/must"
	"github.com/muesli/termenv"
	"k8s.io/klog/v2"
)

var (
	flagList = flag.Bool("list", false, "List all dispatch keys, in increasing order of priority.")
	flagSet  = flag.String("set", "", "Comma-separated list of dispatch keys to resolve, e.g. \"CPU,Autograd\". "+
		"It reports the presence of each key and which one takes precedence.")
	flagExclude = flag.String("exclude", "", "Comma-separated list of dispatch keys to exclude from -set, "+
		"in addition to the ones excluded by the configuration.")
	flagConfig = flag.String("config", "", "YAML file with the dispatcher configuration (\"include\" and \"exclude\" "+
		"lists of keys). If empty, $"+config.GOMLX_DISPATCH+" is used.")
	flagNoColor = flag.Bool("nocolor", false, "Disable colors in the output.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if *flagNoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	if !*flagList && *flagSet == "" {
		klog.Errorf("Nothing to do, use -list and/or -set. See 'dispatchkeys -help'.")
		os.Exit(1)
	}

	if *flagList {
		fmt.Println(titleStyle.Render("Dispatch keys"))
		fmt.Println(keysTable())
	}
	if *flagSet != "" {
		keys, err := dispatchkeys.ParseSet(*flagSet)
		if err != nil {
			klog.Errorf("Invalid -set: %v", err)
			os.Exit(1)
		}
		exclude, err := dispatchkeys.ParseSet(*flagExclude)
		if err != nil {
			klog.Errorf("Invalid -exclude: %v", err)
			os.Exit(1)
		}
		c := loadConfig()
		c.Exclude = c.Exclude.Union(exclude)
		if err = c.Validate(); err != nil {
			klog.Errorf("Invalid -exclude: %v", err)
			os.Exit(1)
		}
		fmt.Print(resolveReport(keys, c))
	}
}

// loadConfig from -config, or from the environment.
func loadConfig() config.Config {
	if *flagConfig != "" {
		return must.M1(config.LoadFile(*flagConfig))
	}
	return must.M1(config.FromEnv())
}
