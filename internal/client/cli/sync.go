package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("Synchronizing with server...")

	result, err := c.syncService.SyncAll(ctx)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	c.io.Println()
	c.io.Println("=== Sync Results ===")
	c.io.Printf("Parcels synced:     %d\n", result.Synced)
	if result.Failed > 0 {
		c.io.Printf("Parcels failed:     %d\n", result.Failed)
	}

	flush := result.Flush
	c.io.Printf("Queue replayed:     %d\n", flush.Flushed)
	if flush.Rejected > 0 {
		c.io.Printf("Queue rejected:     %d\n", flush.Rejected)
	}
	if flush.Expired > 0 {
		c.io.Printf("Queue expired:      %d\n", flush.Expired)
	}
	if flush.Exhausted > 0 {
		c.io.Printf("Queue exhausted:    %d\n", flush.Exhausted)
	}
	if len(flush.Dropped) > 0 {
		c.io.Println()
		c.io.Println("Dropped operations:")
		for _, d := range flush.Dropped {
			if d.Err == "" {
				c.io.Printf("  %s %s (%s)\n", d.ID, d.Target, d.Reason)
				continue
			}
			c.io.Printf("  %s %s (%s): %s\n", d.ID, d.Target, d.Reason, d.Err)
		}
	}
	if flush.Remaining > 0 {
		c.io.Printf("Still queued:       %d\n", flush.Remaining)
		c.io.Println()
		c.io.Println("Some operations could not be replayed; they stay queued.")
	}

	return nil
}
