package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldsync/parcelsync/internal/client/sync"
)

func TestRunList(t *testing.T) {
	io, buf := captureIO()
	svc := &sync.ServiceMock{
		ListParcelsFunc: func(ctx context.Context) ([]string, error) {
			return []string{"parcel-b", "parcel-a"}, nil
		},
	}
	c := New(io, svc)

	require.NoError(t, c.runList(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "Found 2 parcel(s)")
	// sorted output
	assert.Less(t, strings.Index(out, "parcel-a"), strings.Index(out, "parcel-b"))
}

func TestRunList_Empty(t *testing.T) {
	io, buf := captureIO()
	svc := &sync.ServiceMock{
		ListParcelsFunc: func(ctx context.Context) ([]string, error) {
			return nil, nil
		},
	}
	c := New(io, svc)

	require.NoError(t, c.runList(context.Background()))
	assert.Contains(t, buf.String(), "No parcels on this device")
}
