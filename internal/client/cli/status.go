package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runStatus(ctx context.Context) error {
	status, err := c.syncService.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	c.io.Println("=== Sync Status ===")
	c.io.Println()
	c.io.Printf("Replica ID: %s\n", status.ReplicaID)
	c.io.Printf("Parcels:    %d\n", status.Parcels)

	if status.Online {
		c.io.Println("Server:     reachable")
	} else {
		c.io.Println("Server:     unreachable (working offline)")
	}

	c.io.Println()
	if status.Pending > 0 {
		c.io.Printf("Pending sync: %d operation(s) waiting to be replayed\n", status.Pending)
		c.io.Println("Run 'parcelsync sync' to synchronize with the server.")
	} else {
		c.io.Println("All changes synchronized with the server.")
	}

	return nil
}
