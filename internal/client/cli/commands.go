package cli

import (
	"context"
	"fmt"
	"os"
)

func (c *Cli) Run(ctx context.Context, command string, args []string) {
	var err error
	switch command {
	case "status":
		err = c.runStatus(ctx)
	case "sync":
		err = c.runSync(ctx)
	case "watch":
		err = c.runWatch(ctx)
	case "list":
		err = c.runList(ctx)
	case "show":
		err = c.runShow(ctx, args)
	case "notes":
		err = c.runNotes(ctx, args)
	case "meta":
		err = c.runMeta(ctx, args)
	case "photo":
		err = c.runPhoto(ctx, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		c.PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (c *Cli) PrintUsage() {
	c.io.Printf("%s", usageTemplate)
}
