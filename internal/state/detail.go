package state

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/five82/holocron/internal/swapi"
)

const detailFailedMessage = "failed to fetch character"

var (
	// ErrNoRecord is returned when editing is attempted before a record loads.
	ErrNoRecord = errors.New("no record loaded")
	// ErrNotEditing is returned by edit operations outside an edit session.
	ErrNotEditing = errors.New("not editing")
)

// DetailTicket identifies one single-record fetch.
type DetailTicket struct {
	Seq uint64
	ID  string
}

// DetailOutcome is the result of performing a DetailTicket.
type DetailOutcome struct {
	Seq    uint64
	Person swapi.Person
	Err    error
}

// DetailSnapshot is a copy of the detail view's state. Record and EditBuffer
// are nil until a load succeeds.
type DetailSnapshot struct {
	ID           string
	Record       *swapi.Person
	EditBuffer   *swapi.Person
	IsEditing    bool
	Status       Status
	ErrorMessage string
	LastUpdated  time.Time
}

// Dirty reports whether the edit buffer has diverged from the record.
func (s DetailSnapshot) Dirty() bool {
	if s.Record == nil || s.EditBuffer == nil {
		return false
	}
	for _, field := range swapi.EditableFields {
		a, _ := s.Record.Field(field)
		b, _ := s.EditBuffer.Field(field)
		if a != b {
			return true
		}
	}
	return false
}

// Detail owns one loaded record and its edit buffer. Commits are local to
// this container; nothing is written back to the origin, and the next Load
// discards them.
type Detail struct {
	mu        sync.RWMutex
	seq       uint64
	id        string
	record    *swapi.Person
	buffer    *swapi.Person
	editing   bool
	status    Status
	errMsg    string
	updatedAt time.Time
}

// NewDetail returns an empty container.
func NewDetail() *Detail {
	return &Detail{}
}

// Load discards any current record and edits and issues a ticket for id.
func (d *Detail) Load(id string) DetailTicket {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	d.id = strings.TrimSpace(id)
	d.record = nil
	d.buffer = nil
	d.editing = false
	d.status = StatusLoading
	d.errMsg = ""
	return DetailTicket{Seq: d.seq, ID: d.id}
}

// Apply absorbs a fetch outcome, returning false for superseded tickets.
func (d *Detail) Apply(out DetailOutcome) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if out.Seq != d.seq || d.status != StatusLoading {
		return false
	}
	d.updatedAt = time.Now()
	if out.Err != nil {
		d.record = nil
		d.buffer = nil
		d.status = StatusError
		d.errMsg = errorMessage(out.Err, detailFailedMessage)
		return true
	}
	record := out.Person.Clone()
	buffer := out.Person.Clone()
	d.record = &record
	d.buffer = &buffer
	d.editing = false
	d.status = StatusIdle
	d.errMsg = ""
	return true
}

// Clear returns to the empty initial state. Any load still in flight is
// invalidated.
func (d *Detail) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	d.id = ""
	d.record = nil
	d.buffer = nil
	d.editing = false
	d.status = StatusIdle
	d.errMsg = ""
	d.updatedAt = time.Time{}
}

// BeginEdit starts an edit session. It is a no-op while already editing.
func (d *Detail) BeginEdit() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.record == nil {
		return ErrNoRecord
	}
	if d.editing {
		return nil
	}
	if d.buffer == nil {
		buffer := d.record.Clone()
		d.buffer = &buffer
	}
	d.editing = true
	return nil
}

// SetField changes one attribute of the edit buffer. The record itself is
// never touched.
func (d *Detail) SetField(field, value string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.editing || d.buffer == nil {
		return ErrNotEditing
	}
	return d.buffer.SetField(field, value)
}

// CommitEdit copies the edit buffer into the record and ends the session.
// This is an in-memory commit only.
func (d *Detail) CommitEdit() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.editing || d.buffer == nil {
		return ErrNotEditing
	}
	record := d.buffer.Clone()
	d.record = &record
	d.editing = false
	return nil
}

// CancelEdit resets the edit buffer from the record and ends the session.
func (d *Detail) CancelEdit() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.editing || d.record == nil {
		return ErrNotEditing
	}
	buffer := d.record.Clone()
	d.buffer = &buffer
	d.editing = false
	return nil
}

// Snapshot returns a copy of the current state.
func (d *Detail) Snapshot() DetailSnapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return DetailSnapshot{
		ID:           d.id,
		Record:       clonePerson(d.record),
		EditBuffer:   clonePerson(d.buffer),
		IsEditing:    d.editing,
		Status:       d.status,
		ErrorMessage: d.errMsg,
		LastUpdated:  d.updatedAt,
	}
}

func clonePerson(p *swapi.Person) *swapi.Person {
	if p == nil {
		return nil
	}
	dup := p.Clone()
	return &dup
}
