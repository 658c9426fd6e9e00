package storage

import (
	"time"
)

// EntryMeta is the public, unencrypted metadata kept in the index bucket.
// It describes the envelope, never its contents.
type EntryMeta struct {
	Created time.Time `json:"created"`
	Size    int       `json:"size"` // envelope text length in bytes
	Label   string    `json:"label,omitempty"`
}

// Entry pairs an entry name with its index metadata
type Entry struct {
	Name string
	Meta EntryMeta
}

// NewEntryMeta builds metadata for a freshly stored envelope
func NewEntryMeta(envelope, label string) EntryMeta {
	return EntryMeta{
		Created: time.Now(),
		Size:    len(envelope),
		Label:   label,
	}
}
