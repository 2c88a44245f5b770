package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fieldsync/parcelsync/internal/validation"
)

func (c *Cli) runNotes(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: notes <parcel-key> [text]")
	}
	parcelKey := args[0]

	if err := validation.ValidateParcelKey(parcelKey); err != nil {
		return err
	}

	var text string
	if len(args) > 1 {
		text = strings.Join(args[1:], " ")
	} else {
		input, err := c.io.ReadInput("Notes: ")
		if err != nil {
			return fmt.Errorf("failed to read notes: %w", err)
		}
		text = input
	}

	if err := c.syncService.EditNotes(ctx, parcelKey, text); err != nil {
		return fmt.Errorf("failed to update notes: %w", err)
	}

	c.io.Printf("Notes updated for %s\n", parcelKey)
	return nil
}
