package models

import "time"

// Record is implemented by every flat-file entity via an embedded Meta.
type Record interface {
	RecordID() string
	SetRecordID(id string)
	Stamp(now time.Time)
	Touch(now time.Time)
}

// Meta carries the fields every stored record shares.
type Meta struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func (m *Meta) RecordID() string { return m.ID }

func (m *Meta) SetRecordID(id string) { m.ID = id }

// Stamp marks a record as newly created.
func (m *Meta) Stamp(now time.Time) {
	m.CreatedAt = now
	m.UpdatedAt = nil
}

// Touch marks a record as mutated.
func (m *Meta) Touch(now time.Time) {
	m.UpdatedAt = &now
}
