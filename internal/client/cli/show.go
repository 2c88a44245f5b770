package cli

import (
	"context"
	"fmt"

	"github.com/fieldsync/parcelsync/internal/models"
	"github.com/fieldsync/parcelsync/internal/validation"
)

func (c *Cli) runShow(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: show <parcel-key>")
	}
	parcelKey := args[0]

	if err := validation.ValidateParcelKey(parcelKey); err != nil {
		return err
	}

	view, err := c.syncService.View(ctx, parcelKey)
	if err != nil {
		return fmt.Errorf("failed to load parcel: %w", err)
	}

	return c.renderTemplate("parcel", parcelTemplate, struct {
		Key  string
		View *models.ParcelView
	}{Key: parcelKey, View: view})
}
