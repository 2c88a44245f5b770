// Package identity derives the deterministic replica identifiers that make
// merges reproducible. Two processes that open a document for the same parcel
// key must land in the same causal-ordering namespace, so the identifier is a
// pure function of the key: no wall clock, no randomness.
package identity

import (
	"encoding/binary"
	"encoding/hex"
	"unicode/utf16"
)

// Seed folds a parcel key into a signed 32-bit identifier with a polynomial
// rolling hash over the key's UTF-16 code units. Cryptographic strength is
// not required, only determinism and a low collision rate across the expected
// key space.
func Seed(key string) int32 {
	var h int32
	for _, u := range utf16.Encode([]rune(key)) {
		h = h*31 + int32(u)
	}
	return h
}

// ActorID returns the actor under which a parcel document's bootstrap change
// is committed. It depends on nothing but the parcel key, so every device
// bootstraps the same parcel under the same actor and the bootstrap change
// deduplicates on merge.
func ActorID(parcelKey string) string {
	return hex.EncodeToString(seedBytes(parcelKey))
}

// ReplicaActorID returns the actor for all post-bootstrap local edits:
// seed(parcelKey) || seed(replicaID). Still deterministic in its inputs, but
// distinct per replica so concurrent edits from two devices never collide on
// the same (actor, seq) pair.
func ReplicaActorID(parcelKey, replicaID string) string {
	return hex.EncodeToString(append(seedBytes(parcelKey), seedBytes(replicaID)...))
}

func seedBytes(key string) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(Seed(key)))
	return b
}
