// Package main is the entry point of the aria client.
package main

import (
	"github.com/samber/lo"
	"github.com/whisperdoll/aria-client/cmd"
	"github.com/whisperdoll/aria-client/config"
	"github.com/whisperdoll/aria-client/internal/cleanup"
	"github.com/whisperdoll/aria-client/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	go cleanup.CollectGarbage()

	cmd.Execute()
}
