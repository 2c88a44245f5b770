package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fieldsync/parcelsync/internal/validation"
)

func (c *Cli) runPhoto(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: photo <parcel-key> <file> [caption]")
	}
	parcelKey, path := args[0], args[1]

	if err := validation.ValidateParcelKey(parcelKey); err != nil {
		return err
	}

	var caption string
	if len(args) > 2 {
		caption = strings.Join(args[2:], " ")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read photo file: %w", err)
	}
	if len(content) == 0 {
		return fmt.Errorf("photo file is empty")
	}

	photo, err := c.syncService.AddPhoto(ctx, parcelKey, caption, content)
	if err != nil {
		return fmt.Errorf("failed to attach photo: %w", err)
	}

	c.io.Printf("Photo %s attached to %s (%d bytes)\n", photo.ID, parcelKey, len(content))
	return nil
}
