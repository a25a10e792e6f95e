package state

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/five82/holocron/internal/paging"
	"github.com/five82/holocron/internal/swapi"
)

const listFailedMessage = "failed to fetch characters"

// ListTicket identifies one list fetch. Its Seq must be echoed back in the
// ListOutcome so stale results can be discarded.
type ListTicket struct {
	Seq    uint64
	Page   int
	Search string
}

// ListOutcome is the result of performing a ListTicket.
type ListOutcome struct {
	Seq  uint64
	Page swapi.Page
	Err  error
}

// CollectionSnapshot is a copy of the listing view's state.
type CollectionSnapshot struct {
	Records      []swapi.Person
	TotalCount   int
	CurrentPage  int
	SearchTerm   string
	PerPage      int // page size the origin serves, learned from full pages
	Status       Status
	ErrorMessage string
	LastUpdated  time.Time
}

// Loading reports whether a fetch is outstanding.
func (s CollectionSnapshot) Loading() bool {
	return s.Status == StatusLoading
}

// Pages returns the pagination for the snapshot's count and page.
func (s CollectionSnapshot) Pages() paging.Result {
	return paging.Calculate(s.TotalCount, s.PerPage, s.CurrentPage)
}

// Collection owns the listing view's records, paging and search state. It
// never fetches on its own; callers perform the ticket it issues and hand the
// outcome back through Apply.
//
// A failed fetch keeps the last successful records and count so the previous
// page stays visible next to the error.
type Collection struct {
	mu   sync.RWMutex
	snap CollectionSnapshot
	seq  uint64
}

// NewCollection returns an empty container positioned on page 1.
func NewCollection() *Collection {
	return &Collection{snap: CollectionSnapshot{CurrentPage: 1, PerPage: paging.DefaultPerPage}}
}

// SetPage moves to page n. Values below 1 are ignored. Range checks against
// the total page count belong to the caller.
func (c *Collection) SetPage(n int) {
	if n < 1 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap.CurrentPage = n
}

// SetSearchTerm replaces the search term and resets to page 1.
func (c *Collection) SetSearchTerm(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap.SearchTerm = strings.TrimSpace(term)
	c.snap.CurrentPage = 1
}

// Request marks the container loading for its current page and search term
// and returns the ticket to fetch.
func (c *Collection) Request() ListTicket {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.requestLocked()
}

// RequestPage sets page and search together, then issues a ticket. A search
// term different from the current one forces page 1.
func (c *Collection) RequestPage(page int, search string) ListTicket {
	c.mu.Lock()
	defer c.mu.Unlock()

	search = strings.TrimSpace(search)
	switch {
	case search != c.snap.SearchTerm:
		c.snap.SearchTerm = search
		c.snap.CurrentPage = 1
	case page >= 1:
		c.snap.CurrentPage = page
	}
	return c.requestLocked()
}

func (c *Collection) requestLocked() ListTicket {
	if c.snap.CurrentPage < 1 {
		c.snap.CurrentPage = 1
	}
	c.seq++
	c.snap.Status = StatusLoading
	c.snap.ErrorMessage = ""
	return ListTicket{Seq: c.seq, Page: c.snap.CurrentPage, Search: c.snap.SearchTerm}
}

// Apply absorbs a fetch outcome. It returns false, leaving state untouched,
// when the outcome belongs to a superseded ticket.
func (c *Collection) Apply(out ListOutcome) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if out.Seq != c.seq {
		return false
	}
	c.snap.LastUpdated = time.Now()
	if out.Err != nil {
		c.snap.Status = StatusError
		c.snap.ErrorMessage = errorMessage(out.Err, listFailedMessage)
		return true
	}
	c.snap.Records = cloneRecords(out.Page.Results)
	c.snap.TotalCount = max(out.Page.Count, 0)
	// Only a page with a successor is known to be full.
	if out.Page.Next != "" && len(out.Page.Results) > 0 {
		c.snap.PerPage = len(out.Page.Results)
	}
	c.snap.Status = StatusIdle
	c.snap.ErrorMessage = ""
	return true
}

// Snapshot returns a copy of the current state.
func (c *Collection) Snapshot() CollectionSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := c.snap
	if snap.CurrentPage < 1 {
		snap.CurrentPage = 1
	}
	if snap.PerPage < 1 {
		snap.PerPage = paging.DefaultPerPage
	}
	snap.Records = cloneRecords(c.snap.Records)
	return snap
}

func cloneRecords(records []swapi.Person) []swapi.Person {
	if records == nil {
		return nil
	}
	dup := slices.Clone(records)
	for i := range dup {
		dup[i] = dup[i].Clone()
	}
	return dup
}
