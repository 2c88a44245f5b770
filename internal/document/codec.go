package document

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/automerge/automerge-go"
)

// ErrCorruptUpdate marks an encoded update that could not be decoded or
// merged. The receiving document is left untouched; callers log and drop the
// update rather than failing the process.
var ErrCorruptUpdate = errors.New("corrupt encoded update")

// EncodeFull returns the transportable encoding of the document's entire
// current state: the binary automerge save wrapped in standard base64, safe
// for any text-based protocol. Decode(Encode(x)) is byte-for-byte x.
func EncodeFull(p *Parcel) string {
	return base64.StdEncoding.EncodeToString(p.doc.Save())
}

// Apply merges an encoded update into the document in place.
//
// The update may have been produced by a different document instance for the
// same parcel key, with an arbitrarily divergent edit history; applying the
// same update twice is a no-op, and applying a set of updates converges to
// the same state in any order. An empty update is a no-op.
func Apply(p *Parcel, encoded string) error {
	if encoded == "" {
		return nil
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptUpdate, err)
	}

	remote, err := automerge.Load(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptUpdate, err)
	}

	if _, err := p.doc.Merge(remote); err != nil {
		return fmt.Errorf("failed to merge update: %w", err)
	}
	return nil
}
