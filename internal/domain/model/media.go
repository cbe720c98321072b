package model

import "time"

// MediaDeletion is a queued request to remove a file from the media host.
// Failed deletions stay in the queue and are retried by the cleanup worker.
type MediaDeletion struct {
	ID        int64
	RemoteID  string
	Attempts  int
	LastError string
	CreatedAt time.Time
}
