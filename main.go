// Package main is the entry point for the folio application.
package main

import (
	"github.com/p09s/folio/cmd"
	"github.com/p09s/folio/config"
	"github.com/p09s/folio/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
