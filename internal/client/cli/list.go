package cli

import (
	"context"
	"fmt"
	"sort"
)

func (c *Cli) runList(ctx context.Context) error {
	keys, err := c.syncService.ListParcels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list parcels: %w", err)
	}

	sort.Strings(keys)
	return c.renderTemplate("list", parcelListTemplate, keys)
}
