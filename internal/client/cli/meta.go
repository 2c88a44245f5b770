package cli

import (
	"context"
	"fmt"

	"github.com/fieldsync/parcelsync/internal/validation"
)

func (c *Cli) runMeta(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: meta <parcel-key> <field> <value>")
	}
	parcelKey, field, value := args[0], args[1], args[2]

	if err := validation.ValidateParcelKey(parcelKey); err != nil {
		return err
	}
	if field == "" {
		return fmt.Errorf("metadata field cannot be empty")
	}

	if err := c.syncService.SetMetadataField(ctx, parcelKey, field, value); err != nil {
		return fmt.Errorf("failed to set metadata: %w", err)
	}

	c.io.Printf("Set %s=%s on %s\n", field, value, parcelKey)
	return nil
}
