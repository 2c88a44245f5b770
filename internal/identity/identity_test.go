package identity

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_Deterministic(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"simple key", "parcel-12345"},
		{"empty key", ""},
		{"unicode key", "участок-7"},
		{"long key", "county/2026/block-17/lot-0042/revision-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := Seed(tt.key)
			for i := 0; i < 10; i++ {
				assert.Equal(t, first, Seed(tt.key), "Seed must be a pure function of the key")
			}
		})
	}
}

func TestSeed_DistinguishesKeys(t *testing.T) {
	keys := []string{"parcel-1", "parcel-2", "parcel-10", "PARCEL-1", "parcel_1"}
	seen := make(map[int32]string, len(keys))
	for _, k := range keys {
		s := Seed(k)
		prev, dup := seen[s]
		require.False(t, dup, "keys %q and %q collide on seed %d", prev, k, s)
		seen[s] = k
	}
}

func TestSeed_EmptyKeyIsZero(t *testing.T) {
	assert.Equal(t, int32(0), Seed(""))
}

func TestActorID_Format(t *testing.T) {
	actor := ActorID("parcel-12345")

	// Automerge actor ids must be even-length hex strings.
	assert.Len(t, actor, 8)
	_, err := hex.DecodeString(actor)
	require.NoError(t, err)
}

func TestActorID_SameKeySameActor(t *testing.T) {
	assert.Equal(t, ActorID("parcel-9"), ActorID("parcel-9"))
	assert.NotEqual(t, ActorID("parcel-9"), ActorID("parcel-8"))
}

func TestReplicaActorID(t *testing.T) {
	a := ReplicaActorID("parcel-9", "device-a")
	b := ReplicaActorID("parcel-9", "device-b")

	assert.Len(t, a, 16)
	assert.NotEqual(t, a, b, "different replicas must get distinct actors")
	assert.Equal(t, a, ReplicaActorID("parcel-9", "device-a"), "actor must be deterministic in its inputs")

	// The parcel half of the actor is shared across replicas of one parcel.
	assert.Equal(t, a[:8], b[:8])
	assert.Equal(t, ActorID("parcel-9"), a[:8])
}
