package store

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/betdesk/backoffice/internal/models"
)

// ErrNotFound is returned when no record carries the requested id. Services
// wrap it with an entity-specific message.
var ErrNotFound = errors.New("record not found")

// recordOf ties the record value type to its pointer type, which is where the
// models.Record methods live.
type recordOf[T any] interface {
	models.Record
	*T
}

// Records is one durable collection: an in-memory ordered slice of records
// backed by a single JSON array file. The whole collection is rewritten on
// every mutation; collections are small enough that read-modify-write
// simplicity wins over write amplification.
//
// Every operation holds the collection mutex, so check-then-insert sequences
// expressed through CreateWhere/UpdateWhere are atomic process-wide. Records
// handed back to callers are copies made under the lock; the stored structs
// never escape, so callers can read results while other goroutines mutate the
// collection.
type Records[T any, PT recordOf[T]] struct {
	mu     sync.Mutex
	path   string
	log    *slog.Logger
	items  []PT
	lastID int64
}

// NewRecords loads the collection from path, creating the parent directory
// when missing. A missing or unreadable file is logged and treated as an
// empty collection; construction never fails.
func NewRecords[T any, PT recordOf[T]](path string, log *slog.Logger) *Records[T, PT] {
	rs := &Records[T, PT]{path: path, log: log}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Error("failed to create data directory", "path", path, "error", err)
		return rs
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Error("failed to read data file", "path", path, "error", err)
		}
		return rs
	}
	if err := json.Unmarshal(data, &rs.items); err != nil {
		log.Error("failed to parse data file", "path", path, "error", err)
		rs.items = nil
		return rs
	}

	// Resume the id sequence past anything already on disk.
	for _, rec := range rs.items {
		if n, err := strconv.ParseInt(rec.RecordID(), 10, 64); err == nil && n > rs.lastID {
			rs.lastID = n
		}
	}
	return rs
}

func clone[T any, PT recordOf[T]](rec PT) PT {
	v := *rec
	return PT(&v)
}

// List returns a copy of the collection in insertion order.
func (rs *Records[T, PT]) List() []PT {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	out := make([]PT, len(rs.items))
	for i, rec := range rs.items {
		out[i] = clone[T, PT](rec)
	}
	return out
}

// Create assigns an id and creation timestamp, appends and persists.
func (rs *Records[T, PT]) Create(rec PT) PT {
	created, _ := rs.CreateWhere(rec, nil)
	return created
}

// CreateWhere runs check against the current collection under the store lock
// before inserting; a check error aborts the create. The caller's struct is
// not retained.
func (rs *Records[T, PT]) CreateWhere(rec PT, check func(existing []PT) error) (PT, error) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	if check != nil {
		if err := check(rs.items); err != nil {
			var zero PT
			return zero, err
		}
	}

	rec.SetRecordID(rs.nextID())
	rec.Stamp(time.Now().UTC())
	rs.items = append(rs.items, clone[T, PT](rec))
	rs.persist()
	return rec, nil
}

// Get scans for the record with the given id.
func (rs *Records[T, PT]) Get(id string) (PT, bool) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	for _, rec := range rs.items {
		if rec.RecordID() == id {
			return clone[T, PT](rec), true
		}
	}
	var zero PT
	return zero, false
}

// Update applies mutate to the matching record, stamps updatedAt and
// persists. Returns ErrNotFound when the id is unknown.
func (rs *Records[T, PT]) Update(id string, mutate func(PT)) (PT, error) {
	return rs.UpdateWhere(id, nil, mutate)
}

// UpdateWhere is Update with a pre-check evaluated under the store lock.
func (rs *Records[T, PT]) UpdateWhere(id string, check func(existing []PT) error, mutate func(PT)) (PT, error) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	var zero PT
	for _, rec := range rs.items {
		if rec.RecordID() != id {
			continue
		}
		if check != nil {
			if err := check(rs.items); err != nil {
				return zero, err
			}
		}
		mutate(rec)
		rec.Touch(time.Now().UTC())
		rs.persist()
		return clone[T, PT](rec), nil
	}
	return zero, ErrNotFound
}

// Transition applies a status change that may remove the record: apply
// returning false drops the record instead of keeping the mutated copy.
// The second return reports whether the record was kept.
func (rs *Records[T, PT]) Transition(id string, apply func(PT) bool) (PT, bool, error) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	var zero PT
	for i, rec := range rs.items {
		if rec.RecordID() != id {
			continue
		}
		if !apply(rec) {
			rs.items = append(rs.items[:i], rs.items[i+1:]...)
			rs.persist()
			return clone[T, PT](rec), false, nil
		}
		rec.Touch(time.Now().UTC())
		rs.persist()
		return clone[T, PT](rec), true, nil
	}
	return zero, false, ErrNotFound
}

// Delete removes the record when present and persists either way, so deleting
// an unknown id is a no-op success.
func (rs *Records[T, PT]) Delete(id string) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	kept := rs.items[:0]
	for _, rec := range rs.items {
		if rec.RecordID() != id {
			kept = append(kept, rec)
		}
	}
	rs.items = kept
	rs.persist()
}

// nextID issues a decimal millisecond timestamp, bumped past the previous id
// when two creates land in the same millisecond. Ids therefore stay unique
// and sorted by creation order, matching the data already on disk.
func (rs *Records[T, PT]) nextID() string {
	id := time.Now().UnixMilli()
	if id <= rs.lastID {
		id = rs.lastID + 1
	}
	rs.lastID = id
	return strconv.FormatInt(id, 10)
}

// persist rewrites the whole collection. Failures are logged and the
// in-memory state kept, so a later mutation retries the write. Callers are
// not told; the in-memory copy stays authoritative for the process.
func (rs *Records[T, PT]) persist() {
	items := rs.items
	if items == nil {
		items = []PT{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		rs.log.Error("failed to encode collection", "path", rs.path, "error", err)
		return
	}

	tmp := rs.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		rs.log.Error("failed to write data file", "path", rs.path, "error", err)
		return
	}
	if err := os.Rename(tmp, rs.path); err != nil {
		rs.log.Error("failed to replace data file", "path", rs.path, "error", err)
	}
}
