package models

import "time"

// SnapshotKind tells which flow captured a face snapshot.
type SnapshotKind string

const (
	SnapshotRegistration SnapshotKind = "registration"
	SnapshotLogin        SnapshotKind = "login"
)

// Valid reports whether k is a known snapshot kind.
func (k SnapshotKind) Valid() bool {
	return k == SnapshotRegistration || k == SnapshotLogin
}

// Snapshot upload states.
const (
	SnapshotPending  = "pending"
	SnapshotUploaded = "uploaded"
)

// Snapshot describes a face image kept in object storage. The JPEG itself
// never passes through the server, clients upload it with a presigned URL.
type Snapshot struct {
	ID         string
	UserID     string
	Kind       SnapshotKind
	StorageKey string
	Status     string
	CreatedAt  time.Time
}

// SnapshotUpload instructs the client to PUT a JPEG to URL and then confirm
// the snapshot by ID.
type SnapshotUpload struct {
	ID  string
	URL string
}
