// Package cli implements the field client's command surface. Every
// command drives the sync service; none of them talk to the network or
// the database directly.
package cli

import (
	"github.com/fieldsync/parcelsync/internal/client/iocli"
	"github.com/fieldsync/parcelsync/internal/client/sync"
)

type Cli struct {
	io          iocli.IO
	syncService sync.Service
}

func New(io iocli.IO, syncService sync.Service) *Cli {
	return &Cli{
		io:          io,
		syncService: syncService,
	}
}
