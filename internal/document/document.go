// Package document implements the replicated parcel document: one automerge
// document per parcel key, exposing a collaborative notes text, a metadata
// map and an append-only photo list. All mutations are local and cannot fail
// for network reasons; replicas converge by exchanging encoded updates (see
// codec.go) in any order.
//
// A document instance is owned by one logical task at a time; multiple
// documents for different parcels are independent and may be used
// concurrently.
package document

import (
	"fmt"
	"time"

	"github.com/automerge/automerge-go"

	"github.com/fieldsync/parcelsync/internal/identity"
	"github.com/fieldsync/parcelsync/internal/models"
)

// Region field names inside the document root.
const (
	notesField    = "notes"
	metadataField = "metadata"
	photosField   = "photos"
)

// Photo record field names inside the photos list.
const (
	photoID        = "id"
	photoCaption   = "caption"
	photoURI       = "uri"
	photoTimestamp = "timestamp"
)

// bootstrapTime pins the bootstrap commit to a fixed timestamp so the
// bootstrap change is byte-identical on every device (see New).
var bootstrapTime = time.Unix(0, 0).UTC()

// Parcel is one replica of a parcel document.
type Parcel struct {
	doc *automerge.Doc
	key string
}

// New creates a fresh document for the given parcel key.
//
// The initial structure (empty notes, metadata author="unknown", empty photo
// list) is committed under the deterministic parcel actor with a pinned
// timestamp, so two devices that independently create a document for the same
// key produce the exact same bootstrap change and their histories share one
// root. All subsequent edits are committed under the replica actor, which
// keeps concurrent edits from different devices causally distinct.
func New(parcelKey, replicaID string) (*Parcel, error) {
	doc := automerge.New()
	if err := doc.SetActorID(identity.ActorID(parcelKey)); err != nil {
		return nil, fmt.Errorf("failed to set bootstrap actor: %w", err)
	}

	if err := doc.Path(notesField).Set(automerge.NewText("")); err != nil {
		return nil, fmt.Errorf("failed to init notes: %w", err)
	}
	if err := doc.Path(metadataField, models.MetadataAuthor).Set(models.DefaultAuthor); err != nil {
		return nil, fmt.Errorf("failed to init metadata: %w", err)
	}
	if err := doc.Path(photosField).Set(automerge.NewList()); err != nil {
		return nil, fmt.Errorf("failed to init photos: %w", err)
	}

	if _, err := doc.Commit("bootstrap", automerge.CommitOptions{Time: &bootstrapTime}); err != nil {
		return nil, fmt.Errorf("failed to commit bootstrap: %w", err)
	}

	if err := doc.SetActorID(identity.ReplicaActorID(parcelKey, replicaID)); err != nil {
		return nil, fmt.Errorf("failed to set replica actor: %w", err)
	}

	p := &Parcel{key: parcelKey, doc: doc}

	// Stamp lastModified outside the bootstrap change: it is wall-clock data
	// and must not make the bootstrap bytes device-dependent.
	if err := p.touch(); err != nil {
		return nil, err
	}
	if _, err := doc.Commit("created"); err != nil {
		return nil, fmt.Errorf("failed to commit creation: %w", err)
	}

	return p, nil
}

// Load restores a document from a previous Save.
func Load(parcelKey, replicaID string, saved []byte) (*Parcel, error) {
	doc, err := automerge.Load(saved)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	if err := doc.SetActorID(identity.ReplicaActorID(parcelKey, replicaID)); err != nil {
		return nil, fmt.Errorf("failed to set replica actor: %w", err)
	}
	return &Parcel{key: parcelKey, doc: doc}, nil
}

// Key returns the parcel key this document replicates.
func (p *Parcel) Key() string {
	return p.key
}

// Save returns the full binary encoding of the document, suitable for
// durable storage and for Load.
func (p *Parcel) Save() []byte {
	return p.doc.Save()
}

// Doc exposes the underlying automerge document for sync-state transports.
func (p *Parcel) Doc() *automerge.Doc {
	return p.doc
}

// MergeSaved merges a raw Save from another replica into this document
// in place.
func (p *Parcel) MergeSaved(saved []byte) error {
	remote, err := automerge.Load(saved)
	if err != nil {
		return fmt.Errorf("failed to load remote state: %w", err)
	}
	if _, err := p.doc.Merge(remote); err != nil {
		return fmt.Errorf("failed to merge remote state: %w", err)
	}
	return nil
}

// Notes returns the current notes text.
func (p *Parcel) Notes() (string, error) {
	text, err := p.doc.Path(notesField).Text().Get()
	if err != nil {
		return "", fmt.Errorf("failed to read notes: %w", err)
	}
	return text, nil
}

// SetNotes replaces the notes text wholesale by assigning a fresh text
// object to the notes key. Two concurrent full replacements therefore resolve
// last-writer-wins to one writer's complete text — never an interleaved or
// concatenated hybrid — at the cost of discarding a concurrent partial edit
// made against the replaced text. Callers that want fine-grained
// collaborative editing would expose incremental insert/delete instead;
// full-replace is the coarse contract this system uses.
func (p *Parcel) SetNotes(text string) error {
	if err := p.doc.Path(notesField).Set(automerge.NewText(text)); err != nil {
		return fmt.Errorf("failed to set notes: %w", err)
	}
	return p.commit("set notes")
}

// Metadata returns the current metadata fields as a plain map.
func (p *Parcel) Metadata() (map[string]string, error) {
	m := p.doc.Path(metadataField).Map()
	keys, err := m.Keys()
	if err != nil {
		return nil, fmt.Errorf("failed to list metadata keys: %w", err)
	}

	out := make(map[string]string, len(keys))
	for _, k := range keys {
		v, err := automerge.As[string](m.Get(k))
		if err != nil {
			return nil, fmt.Errorf("failed to read metadata %q: %w", k, err)
		}
		out[k] = v
	}
	return out, nil
}

// SetMetadataField writes one metadata field. Concurrent writes to the same
// key resolve last-writer-wins by the document's causal clock.
func (p *Parcel) SetMetadataField(key, value string) error {
	if err := p.doc.Path(metadataField, key).Set(value); err != nil {
		return fmt.Errorf("failed to set metadata %q: %w", key, err)
	}
	return p.commit("set metadata")
}

// Photos returns the photo records currently in the document, de-duplicated
// by ID (the same ID appended on two replicas before they merged appears
// once). The merged list order is identical on all converged replicas, so the
// de-duplicated view is too.
func (p *Parcel) Photos() ([]models.PhotoMetadata, error) {
	l := p.doc.Path(photosField).List()
	n := l.Len()

	photos := make([]models.PhotoMetadata, 0, n)
	seen := make(map[string]bool, n)

	for i := 0; i < n; i++ {
		v, err := l.Get(i)
		if err != nil {
			return nil, fmt.Errorf("failed to read photo %d: %w", i, err)
		}
		photo, err := photoFromValue(v)
		if err != nil {
			return nil, fmt.Errorf("failed to decode photo %d: %w", i, err)
		}
		if seen[photo.ID] {
			continue
		}
		seen[photo.ID] = true
		photos = append(photos, photo)
	}
	return photos, nil
}

// AppendPhoto appends a photo record to the photo list. Appending an ID that
// is already present locally is a no-op.
func (p *Parcel) AppendPhoto(photo models.PhotoMetadata) error {
	existing, err := p.Photos()
	if err != nil {
		return err
	}
	for _, e := range existing {
		if e.ID == photo.ID {
			return nil
		}
	}

	record := map[string]string{
		photoID:        photo.ID,
		photoCaption:   photo.Caption,
		photoURI:       photo.URI,
		photoTimestamp: photo.Timestamp.UTC().Format(time.RFC3339),
	}
	if err := p.doc.Path(photosField).List().Append(record); err != nil {
		return fmt.Errorf("failed to append photo: %w", err)
	}
	return p.commit("append photo")
}

// RemovePhoto deletes every photo record carrying the given ID (a merge
// can leave the same ID in the list twice). It reports whether anything
// was removed.
func (p *Parcel) RemovePhoto(photoID string) (bool, error) {
	// Resolve the value so the list carries its object ID: automerge-go's
	// List.Delete does not resolve path-derived lists and would panic.
	v, err := p.doc.Path(photosField).Get()
	if err != nil {
		return false, fmt.Errorf("failed to read photos: %w", err)
	}
	if v.Kind() != automerge.KindList {
		return false, nil
	}
	l := v.List()

	removed := false
	for i := l.Len() - 1; i >= 0; i-- {
		v, err := l.Get(i)
		if err != nil {
			return false, fmt.Errorf("failed to read photo %d: %w", i, err)
		}
		photo, err := photoFromValue(v)
		if err != nil {
			return false, fmt.Errorf("failed to decode photo %d: %w", i, err)
		}
		if photo.ID != photoID {
			continue
		}
		if err := l.Delete(i); err != nil {
			return false, fmt.Errorf("failed to remove photo %d: %w", i, err)
		}
		removed = true
	}

	if !removed {
		return false, nil
	}
	return true, p.commit("remove photo")
}

// View returns the plain snapshot of the document.
func (p *Parcel) View() (*models.ParcelView, error) {
	notes, err := p.Notes()
	if err != nil {
		return nil, err
	}
	metadata, err := p.Metadata()
	if err != nil {
		return nil, err
	}
	photos, err := p.Photos()
	if err != nil {
		return nil, err
	}
	return &models.ParcelView{Notes: notes, Metadata: metadata, Photos: photos}, nil
}

// commit stamps lastModified and finalizes the pending mutation as one
// change.
func (p *Parcel) commit(message string) error {
	if err := p.touch(); err != nil {
		return err
	}
	if _, err := p.doc.Commit(message); err != nil {
		return fmt.Errorf("failed to commit %q: %w", message, err)
	}
	return nil
}

func (p *Parcel) touch() error {
	now := time.Now().UTC().Format(time.RFC3339)
	if err := p.doc.Path(metadataField, models.MetadataLastModified).Set(now); err != nil {
		return fmt.Errorf("failed to stamp lastModified: %w", err)
	}
	return nil
}

func photoFromValue(v *automerge.Value) (models.PhotoMetadata, error) {
	m := v.Map()

	id, err := automerge.As[string](m.Get(photoID))
	if err != nil {
		return models.PhotoMetadata{}, err
	}
	caption, err := automerge.As[string](m.Get(photoCaption))
	if err != nil {
		return models.PhotoMetadata{}, err
	}
	uri, err := automerge.As[string](m.Get(photoURI))
	if err != nil {
		return models.PhotoMetadata{}, err
	}
	rawTS, err := automerge.As[string](m.Get(photoTimestamp))
	if err != nil {
		return models.PhotoMetadata{}, err
	}
	ts, err := time.Parse(time.RFC3339, rawTS)
	if err != nil {
		return models.PhotoMetadata{}, fmt.Errorf("bad photo timestamp %q: %w", rawTS, err)
	}

	return models.PhotoMetadata{ID: id, Caption: caption, URI: uri, Timestamp: ts}, nil
}
