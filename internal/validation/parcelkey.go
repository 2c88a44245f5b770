package validation

import (
	"fmt"
	"regexp"
)

// ParcelKeyPattern defines the accepted parcel key format: letters, digits,
// underscore, hyphen, dot and slash (county/block/lot style keys), 1-128
// characters. The key ends up in URLs, bbolt keys and sqlite rows, so the
// character set is kept deliberately narrow.
var ParcelKeyPattern = regexp.MustCompile(`^[a-zA-Z0-9._/-]{1,128}$`)

// MaxParcelKeyLen is the maximum accepted parcel key length.
const MaxParcelKeyLen = 128

// ValidateParcelKey checks that a parcel key is usable as an entity
// identifier across the client, the server and the wire.
func ValidateParcelKey(key string) error {
	if key == "" {
		return fmt.Errorf("parcel key cannot be empty")
	}

	if len(key) > MaxParcelKeyLen {
		return fmt.Errorf("parcel key must not exceed %d characters", MaxParcelKeyLen)
	}

	if !ParcelKeyPattern.MatchString(key) {
		return fmt.Errorf("parcel key can only contain letters, digits, and ._/- separators")
	}

	return nil
}

// collectionPattern: lowercase, starts with a letter, no slash (the
// collection is a single URL segment, e.g. "parcels").
var collectionPattern = regexp.MustCompile(`^[a-z][a-z0-9_-]{0,63}$`)

// ValidateCollection checks a collection name, the URL segment before the
// entity id.
func ValidateCollection(name string) error {
	if name == "" {
		return fmt.Errorf("collection cannot be empty")
	}
	if !collectionPattern.MatchString(name) {
		return fmt.Errorf("collection must be lowercase alphanumeric with - or _")
	}
	return nil
}
