package models

import "time"

// PendingOperation is one not-yet-confirmed network effect: a mutating call
// that could not be delivered (offline, or a transient failure) and now waits
// in the durable queue for replay. It is removed only after a confirmed
// successful replay, or dropped and reported once retries are exhausted.
type PendingOperation struct {
	EnqueuedAt time.Time `json:"enqueued_at"`        // EnqueuedAt wall-clock time the operation entered the queue
	ID         string    `json:"id"`                 // ID unique operation identifier (UUID)
	Target     string    `json:"target"`             // Target URL path or endpoint the operation replays against
	Method     string    `json:"method"`             // Method HTTP method of the replay
	Payload    []byte    `json:"payload"`            // Payload request body, already encoded for the wire
	Checksum   string    `json:"checksum,omitempty"` // Checksum hex blake2b digest for binary payloads, empty for JSON
	RetryCount int       `json:"retry_count"`        // RetryCount number of failed replay attempts so far
}

// Age returns how long the operation has been queued.
func (op *PendingOperation) Age(now time.Time) time.Duration {
	return now.Sub(op.EnqueuedAt)
}

// Clone returns a deep copy of the operation.
func (op *PendingOperation) Clone() *PendingOperation {
	payload := make([]byte, len(op.Payload))
	copy(payload, op.Payload)

	return &PendingOperation{
		ID:         op.ID,
		Target:     op.Target,
		Method:     op.Method,
		Payload:    payload,
		Checksum:   op.Checksum,
		EnqueuedAt: op.EnqueuedAt,
		RetryCount: op.RetryCount,
	}
}
