package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldsync/parcelsync/internal/client/sync"
)

func TestRunNotes_FromArgs(t *testing.T) {
	io, _ := captureIO()
	svc := &sync.ServiceMock{
		EditNotesFunc: func(ctx context.Context, parcelKey, text string) error {
			assert.Equal(t, "parcel-1", parcelKey)
			assert.Equal(t, "roof needs repair", text)
			return nil
		},
	}
	c := New(io, svc)

	err := c.runNotes(context.Background(), []string{"parcel-1", "roof", "needs", "repair"})
	require.NoError(t, err)
	assert.Len(t, svc.EditNotesCalls(), 1)
}

func TestRunNotes_Prompts(t *testing.T) {
	io, _ := captureIO()
	io.ReadInputFunc = func(prompt string) (string, error) {
		return "typed interactively", nil
	}
	svc := &sync.ServiceMock{
		EditNotesFunc: func(ctx context.Context, parcelKey, text string) error {
			assert.Equal(t, "typed interactively", text)
			return nil
		},
	}
	c := New(io, svc)

	require.NoError(t, c.runNotes(context.Background(), []string{"parcel-1"}))
}

func TestRunNotes_InvalidKey(t *testing.T) {
	io, _ := captureIO()
	c := New(io, &sync.ServiceMock{})

	err := c.runNotes(context.Background(), []string{"bad key", "text"})
	require.Error(t, err)
}

func TestRunMeta(t *testing.T) {
	io, _ := captureIO()
	svc := &sync.ServiceMock{
		SetMetadataFieldFunc: func(ctx context.Context, parcelKey, field, value string) error {
			assert.Equal(t, "parcel-1", parcelKey)
			assert.Equal(t, "inspector", field)
			assert.Equal(t, "pat", value)
			return nil
		},
	}
	c := New(io, svc)

	require.NoError(t, c.runMeta(context.Background(), []string{"parcel-1", "inspector", "pat"}))
	assert.Len(t, svc.SetMetadataFieldCalls(), 1)
}

func TestRunMeta_MissingArgs(t *testing.T) {
	io, _ := captureIO()
	c := New(io, &sync.ServiceMock{})

	err := c.runMeta(context.Background(), []string{"parcel-1", "inspector"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage")
}
