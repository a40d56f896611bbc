// Package main is the entry point for the ledpal application.
package main

import (
	"github.com/ledpal/ledpal/cmd"
	"github.com/ledpal/ledpal/config"
	"github.com/ledpal/ledpal/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	for _, k := range config.Unrecognized() {
		if _, err := config.Lookup(k); err != nil {
			log.Warn(err)
		}
	}

	cmd.Execute()
}
