package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateParcelKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid - simple id",
			key:  "parcel-12345",
		},
		{
			name: "valid - county block lot path",
			key:  "king/2026/block-17/lot-0042",
		},
		{
			name: "valid - dotted revision",
			key:  "lot-42.rev3",
		},
		{
			name: "valid - max length",
			key:  strings.Repeat("a", 128),
		},
		{
			name:    "invalid - empty",
			key:     "",
			wantErr: true,
			errMsg:  "parcel key cannot be empty",
		},
		{
			name:    "invalid - too long",
			key:     strings.Repeat("a", 129),
			wantErr: true,
			errMsg:  "must not exceed",
		},
		{
			name:    "invalid - whitespace",
			key:     "parcel 42",
			wantErr: true,
		},
		{
			name:    "invalid - unicode",
			key:     "участок-7",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateParcelKey(tt.key)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateCollection(t *testing.T) {
	assert.NoError(t, ValidateCollection("parcels"))
	assert.NoError(t, ValidateCollection("field_notes"))
	assert.Error(t, ValidateCollection(""))
	assert.Error(t, ValidateCollection("Parcels"))
	assert.Error(t, ValidateCollection("parcels/sub"))
	assert.Error(t, ValidateCollection("9lives"))
}
