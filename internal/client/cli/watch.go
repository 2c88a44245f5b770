package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runWatch(ctx context.Context) error {
	c.io.Println("Watching for connectivity; queued operations replay automatically.")
	c.io.Println("Press Ctrl-C to stop.")

	if err := c.syncService.Watch(ctx); err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}
	return nil
}
