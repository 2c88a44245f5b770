// Package sync is the client's write path. Every edit goes through the
// local document first, then either syncs with the server immediately or
// lands in the durable queue for later replay, so the user experience is
// identical online and offline.
package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	syncpkg "sync"
	"time"

	"github.com/google/uuid"

	httpclient "github.com/fieldsync/parcelsync/internal/client/api"
	"github.com/fieldsync/parcelsync/internal/client/photos"
	"github.com/fieldsync/parcelsync/internal/client/queue"
	"github.com/fieldsync/parcelsync/internal/client/storage"
	"github.com/fieldsync/parcelsync/internal/document"
	"github.com/fieldsync/parcelsync/internal/models"
	"github.com/fieldsync/parcelsync/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service is the facade the CLI and background workers drive.
type Service interface {
	// EditNotes replaces the notes text of a parcel
	EditNotes(ctx context.Context, parcelKey, text string) error

	// SetMetadataField sets one metadata field on a parcel
	SetMetadataField(ctx context.Context, parcelKey, field, value string) error

	// AddPhoto attaches a photo to a parcel. Content is uploaded to the
	// blob store when online and queued for upload when not.
	AddPhoto(ctx context.Context, parcelKey, caption string, content []byte) (models.PhotoMetadata, error)

	// View returns the plain rendering of the local document
	View(ctx context.Context, parcelKey string) (*models.ParcelView, error)

	// ListParcels returns the parcel keys present locally
	ListParcels(ctx context.Context) ([]string, error)

	// Sync exchanges state with the server for one parcel
	Sync(ctx context.Context, parcelKey string) error

	// SyncAll flushes the queue and syncs every local parcel
	SyncAll(ctx context.Context) (*SyncResult, error)

	// Status reports connectivity and queue depth
	Status(ctx context.Context) (*Status, error)

	// Watch runs the automatic sync triggers until ctx ends: queued
	// operations are replayed when connectivity returns and on a slow
	// periodic timer.
	Watch(ctx context.Context) error
}

// OperationQueue is the slice of queue.Queue the service needs.
type OperationQueue interface {
	Enqueue(ctx context.Context, op models.PendingOperation) error
	Flush(ctx context.Context) (*queue.FlushReport, error)
	PendingCount(ctx context.Context) (int, error)
	Run(ctx context.Context, online <-chan struct{}, onFlush queue.FlushFunc)
}

// PhotoCoordinator is the slice of photos.Coordinator the service needs.
type PhotoCoordinator interface {
	AddPhoto(ctx context.Context, p *document.Parcel, caption string, content []byte, takenAt time.Time) (models.PhotoMetadata, error)
}

// Connectivity reports server reachability. connectivity.Monitor
// satisfies this.
type Connectivity interface {
	Online() bool
	Subscribe() <-chan struct{}
	Run(ctx context.Context)
}

// SyncResult summarizes a SyncAll run.
type SyncResult struct {
	Flush  *queue.FlushReport // queue replay outcome
	Synced int                // parcels exchanged with the server
	Failed int                // parcels that could not be synced
}

// Status is the client's health snapshot.
type Status struct {
	ReplicaID string
	Parcels   int
	Pending   int
	Online    bool
}

type service struct {
	apiClient  httpclient.ClientAPI
	docs       storage.DocumentStorage
	replicas   storage.ReplicaStorage
	ops        OperationQueue
	photos     PhotoCoordinator
	net        Connectivity
	logger     *slog.Logger
	collection string

	// now is replaceable in tests
	now func() time.Time

	replicaID string
}

// NewService creates the sync service. collection is the server-side
// document namespace, normally "parcels".
func NewService(
	apiClient httpclient.ClientAPI,
	docs storage.DocumentStorage,
	replicas storage.ReplicaStorage,
	ops OperationQueue,
	photoCoord PhotoCoordinator,
	net Connectivity,
	collection string,
	logger *slog.Logger,
) Service {
	return &service{
		apiClient:  apiClient,
		docs:       docs,
		replicas:   replicas,
		ops:        ops,
		photos:     photoCoord,
		net:        net,
		collection: collection,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *service) EditNotes(ctx context.Context, parcelKey, text string) error {
	return s.mutate(ctx, parcelKey, func(p *document.Parcel) error {
		return p.SetNotes(text)
	})
}

func (s *service) SetMetadataField(ctx context.Context, parcelKey, field, value string) error {
	return s.mutate(ctx, parcelKey, func(p *document.Parcel) error {
		return p.SetMetadataField(field, value)
	})
}

func (s *service) AddPhoto(ctx context.Context, parcelKey, caption string, content []byte) (models.PhotoMetadata, error) {
	p, err := s.openParcel(ctx, parcelKey)
	if err != nil {
		return models.PhotoMetadata{}, err
	}

	var photo models.PhotoMetadata
	if s.net.Online() {
		photo, err = s.photos.AddPhoto(ctx, p, caption, content, s.now())
		if err != nil && !httpclient.IsPermanent(err) {
			// upload kept failing; fall back to the offline path
			s.logger.Warn("Photo upload failed, queueing", "parcel_key", parcelKey, "error", err)
			photo, err = s.queuePhoto(ctx, p, caption, content)
		}
	} else {
		photo, err = s.queuePhoto(ctx, p, caption, content)
	}
	if err != nil {
		return models.PhotoMetadata{}, err
	}

	if err := s.docs.SaveDocument(ctx, parcelKey, p.Save()); err != nil {
		return models.PhotoMetadata{}, fmt.Errorf("failed to persist document: %w", err)
	}

	if err := s.pushOrQueue(ctx, p); err != nil {
		return models.PhotoMetadata{}, err
	}
	return photo, nil
}

// queuePhoto records the photo locally under its canonical blob URI and
// queues the binary upload for replay.
func (s *service) queuePhoto(ctx context.Context, p *document.Parcel, caption string, content []byte) (models.PhotoMetadata, error) {
	id := uuid.NewString()
	photo := models.PhotoMetadata{
		ID:        id,
		Caption:   caption,
		URI:       api.BlobURI(id),
		Timestamp: s.now().UTC(),
	}

	if err := p.AppendPhoto(photo); err != nil {
		return models.PhotoMetadata{}, fmt.Errorf("failed to record photo %s: %w", id, err)
	}

	err := s.ops.Enqueue(ctx, models.PendingOperation{
		ID:       uuid.NewString(),
		Method:   http.MethodPut,
		Target:   api.BlobPath(id),
		Payload:  content,
		Checksum: photos.Checksum(content),
	})
	if err != nil {
		return models.PhotoMetadata{}, fmt.Errorf("failed to queue blob upload: %w", err)
	}

	return photo, nil
}

func (s *service) View(ctx context.Context, parcelKey string) (*models.ParcelView, error) {
	p, err := s.openParcel(ctx, parcelKey)
	if err != nil {
		return nil, err
	}
	return p.View()
}

func (s *service) ListParcels(ctx context.Context) ([]string, error) {
	return s.docs.ListKeys(ctx)
}

func (s *service) Sync(ctx context.Context, parcelKey string) error {
	p, err := s.openParcel(ctx, parcelKey)
	if err != nil {
		return err
	}
	return s.push(ctx, p)
}

func (s *service) SyncAll(ctx context.Context) (*SyncResult, error) {
	result := &SyncResult{}

	// replay queued operations first so the server sees offline edits
	// before the reciprocal merge
	report, err := s.ops.Flush(ctx)
	if err != nil {
		return nil, fmt.Errorf("queue flush failed: %w", err)
	}
	result.Flush = report

	// dropped blob uploads must be retracted before the parcel pushes
	// below, or the full-state exchange ships dangling photo references
	if err := s.retractDroppedUploads(ctx, report.Dropped); err != nil {
		s.logger.Error("Failed to retract dropped uploads", "error", err)
	}

	keys, err := s.docs.ListKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list parcels: %w", err)
	}

	for _, key := range keys {
		if err := s.Sync(ctx, key); err != nil {
			result.Failed++
			s.logger.Warn("Parcel sync failed", "parcel_key", key, "error", err)
			continue
		}
		result.Synced++
	}

	s.logger.Info("Sync complete",
		"synced", result.Synced,
		"failed", result.Failed,
		"queue_flushed", report.Flushed,
		"queue_remaining", report.Remaining)

	return result, nil
}

func (s *service) Status(ctx context.Context) (*Status, error) {
	replicaID, err := s.loadReplicaID(ctx)
	if err != nil {
		return nil, err
	}

	keys, err := s.docs.ListKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list parcels: %w", err)
	}

	pending, err := s.ops.PendingCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read queue: %w", err)
	}

	return &Status{
		ReplicaID: replicaID,
		Parcels:   len(keys),
		Pending:   pending,
		Online:    s.net.Online(),
	}, nil
}

// Watch runs the connectivity monitor and the queue replay loop until
// ctx is cancelled. This is the long-running mode behind the `watch`
// command; one-shot commands drive SyncAll directly instead.
func (s *service) Watch(ctx context.Context) error {
	s.logger.Info("Watching for connectivity", "collection", s.collection)

	var wg syncpkg.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.net.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		s.ops.Run(ctx, s.net.Subscribe(), s.onFlush)
	}()
	wg.Wait()

	return nil
}

// onFlush reacts to background flush outcomes from the queue replay loop.
func (s *service) onFlush(ctx context.Context, report *queue.FlushReport) {
	if err := s.retractDroppedUploads(ctx, report.Dropped); err != nil {
		s.logger.Error("Failed to retract dropped uploads", "error", err)
	}
}

// retractDroppedUploads removes photo records whose queued binary upload
// was dropped from the queue. Without the bytes the record would stay a
// dangling reference on every replica the next push reaches.
func (s *service) retractDroppedUploads(ctx context.Context, dropped []queue.DroppedOperation) error {
	var errs []error
	for _, d := range dropped {
		blobID, ok := api.BlobIDFromPath(d.Target)
		if !ok {
			continue // not a blob upload
		}
		if err := s.retractPhoto(ctx, blobID, d.Reason); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// retractPhoto finds the parcel referencing blobID and removes its photo
// record. Photo records and their blobs share one ID (see queuePhoto).
func (s *service) retractPhoto(ctx context.Context, blobID, reason string) error {
	keys, err := s.docs.ListKeys(ctx)
	if err != nil {
		return fmt.Errorf("failed to list parcels: %w", err)
	}

	for _, key := range keys {
		p, err := s.openParcel(ctx, key)
		if err != nil {
			return err
		}
		removed, err := p.RemovePhoto(blobID)
		if err != nil {
			return fmt.Errorf("failed to retract photo %s: %w", blobID, err)
		}
		if !removed {
			continue
		}
		if err := s.docs.SaveDocument(ctx, key, p.Save()); err != nil {
			return fmt.Errorf("failed to persist document: %w", err)
		}
		s.logger.Warn("Retracted photo, binary upload dropped",
			"parcel_key", key, "photo_id", blobID, "reason", reason)
		return nil
	}
	return nil
}

// mutate applies a local edit, persists it and then syncs or queues
func (s *service) mutate(ctx context.Context, parcelKey string, fn func(*document.Parcel) error) error {
	p, err := s.openParcel(ctx, parcelKey)
	if err != nil {
		return err
	}

	if err := fn(p); err != nil {
		return fmt.Errorf("edit failed: %w", err)
	}

	if err := s.docs.SaveDocument(ctx, parcelKey, p.Save()); err != nil {
		return fmt.Errorf("failed to persist document: %w", err)
	}

	return s.pushOrQueue(ctx, p)
}

// pushOrQueue sends the full document state to the server, or queues the
// sync operation when the server is unreachable. Permanent rejections
// surface as errors; replaying them would fail identically.
func (s *service) pushOrQueue(ctx context.Context, p *document.Parcel) error {
	if !s.net.Online() {
		return s.enqueueSync(ctx, p)
	}

	err := s.push(ctx, p)
	if err == nil {
		return nil
	}
	if httpclient.IsPermanent(err) {
		return err
	}

	s.logger.Info("Server unreachable, queueing sync", "parcel_key", p.Key(), "error", err)
	return s.enqueueSync(ctx, p)
}

// push exchanges full state with the server and merges the reply back
func (s *service) push(ctx context.Context, p *document.Parcel) error {
	resp, err := s.apiClient.Sync(ctx, s.collection, p.Key(), document.EncodeFull(p))
	if err != nil {
		return err
	}

	if err := document.Apply(p, resp.StateVector); err != nil {
		return fmt.Errorf("failed to merge server state: %w", err)
	}

	if err := s.docs.SaveDocument(ctx, p.Key(), p.Save()); err != nil {
		return fmt.Errorf("failed to persist merged document: %w", err)
	}

	return nil
}

func (s *service) enqueueSync(ctx context.Context, p *document.Parcel) error {
	payload, err := json.Marshal(api.SyncRequest{Update: document.EncodeFull(p)})
	if err != nil {
		return fmt.Errorf("failed to marshal sync request: %w", err)
	}

	return s.ops.Enqueue(ctx, models.PendingOperation{
		ID:      uuid.NewString(),
		Method:  http.MethodPost,
		Target:  httpclient.SyncPath(s.collection, p.Key()),
		Payload: payload,
	})
}

// openParcel loads the local document, creating it on first touch
func (s *service) openParcel(ctx context.Context, parcelKey string) (*document.Parcel, error) {
	replicaID, err := s.loadReplicaID(ctx)
	if err != nil {
		return nil, err
	}

	saved, err := s.docs.GetDocument(ctx, parcelKey)
	if errors.Is(err, storage.ErrDocumentNotFound) {
		p, err := document.New(parcelKey, replicaID)
		if err != nil {
			return nil, fmt.Errorf("failed to create document: %w", err)
		}
		if err := s.docs.SaveDocument(ctx, parcelKey, p.Save()); err != nil {
			return nil, fmt.Errorf("failed to persist new document: %w", err)
		}
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	p, err := document.Load(parcelKey, replicaID, saved)
	if err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return p, nil
}

// loadReplicaID returns the device replica ID, generating and persisting
// one on first use.
func (s *service) loadReplicaID(ctx context.Context) (string, error) {
	if s.replicaID != "" {
		return s.replicaID, nil
	}

	id, err := s.replicas.GetReplicaID(ctx)
	if errors.Is(err, storage.ErrReplicaNotFound) {
		id = uuid.NewString()
		if err := s.replicas.SaveReplicaID(ctx, id); err != nil {
			return "", fmt.Errorf("failed to persist replica ID: %w", err)
		}
		s.logger.Info("Generated replica ID", "replica_id", id)
	} else if err != nil {
		return "", fmt.Errorf("failed to load replica ID: %w", err)
	}

	s.replicaID = id
	return id, nil
}
