package state

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/holocron/internal/paging"
	"github.com/five82/holocron/internal/swapi"
)

func TestCollection_InitialState(t *testing.T) {
	snap := NewCollection().Snapshot()
	assert.Equal(t, StatusIdle, snap.Status)
	assert.Equal(t, 1, snap.CurrentPage)
	assert.Empty(t, snap.Records)
	assert.Zero(t, snap.TotalCount)

	assert.Equal(t, paging.DefaultPerPage, snap.PerPage)

	var zero Collection
	assert.Equal(t, 1, zero.Snapshot().CurrentPage, "zero value should report page 1")
	assert.Equal(t, paging.DefaultPerPage, zero.Snapshot().PerPage)
}

func TestCollection_FirstPageSuccess(t *testing.T) {
	repo := &fakeRepo{page: swapi.Page{Count: 82, Results: people(10)}}
	c := NewCollection()

	ticket := c.RequestPage(1, "")
	assert.Equal(t, StatusLoading, c.Snapshot().Status)
	assert.Equal(t, ListTicket{Seq: 1, Page: 1, Search: ""}, ticket)

	require.True(t, c.Apply(FetchList(context.Background(), repo, ticket)))

	snap := c.Snapshot()
	assert.Equal(t, StatusIdle, snap.Status)
	assert.Len(t, snap.Records, 10)
	assert.Equal(t, 82, snap.TotalCount)
	assert.Empty(t, snap.ErrorMessage)
	assert.False(t, snap.LastUpdated.IsZero())
}

func TestCollection_FailureKeepsLastGoodData(t *testing.T) {
	c := NewCollection()
	t1 := c.Request()
	c.Apply(ListOutcome{Seq: t1.Seq, Page: swapi.Page{Count: 82, Results: people(10)}})

	c.SetPage(2)
	t2 := c.Request()
	assert.Equal(t, 2, t2.Page)
	require.True(t, c.Apply(ListOutcome{Seq: t2.Seq, Err: errors.New("list https://swapi.dev/api/people/: api returned status 502")}))

	snap := c.Snapshot()
	assert.Equal(t, StatusError, snap.Status)
	assert.Contains(t, snap.ErrorMessage, "502")
	assert.Len(t, snap.Records, 10)
	assert.Equal(t, 82, snap.TotalCount)
	assert.Equal(t, 2, snap.CurrentPage)
}

func TestCollection_FailureWithEmptyMessageUsesFallback(t *testing.T) {
	c := NewCollection()
	ticket := c.Request()
	c.Apply(ListOutcome{Seq: ticket.Seq, Err: errors.New("")})
	assert.Equal(t, listFailedMessage, c.Snapshot().ErrorMessage)
}

func TestCollection_RequestClearsError(t *testing.T) {
	c := NewCollection()
	ticket := c.Request()
	c.Apply(ListOutcome{Seq: ticket.Seq, Err: errors.New("boom")})
	require.Equal(t, StatusError, c.Snapshot().Status)

	c.Request()
	snap := c.Snapshot()
	assert.Equal(t, StatusLoading, snap.Status)
	assert.Empty(t, snap.ErrorMessage)
}

func TestCollection_SearchResetsPage(t *testing.T) {
	c := NewCollection()
	c.SetPage(5)
	require.Equal(t, 5, c.Snapshot().CurrentPage)

	c.SetSearchTerm("  sky  ")
	snap := c.Snapshot()
	assert.Equal(t, 1, snap.CurrentPage)
	assert.Equal(t, "sky", snap.SearchTerm)

	c.SetPage(3)
	c.SetSearchTerm("sky")
	assert.Equal(t, 1, c.Snapshot().CurrentPage, "re-submitting the same term still resets the page")
}

func TestCollection_RequestPageWithNewSearchForcesFirstPage(t *testing.T) {
	c := NewCollection()
	c.RequestPage(5, "")

	ticket := c.RequestPage(5, "vader")
	assert.Equal(t, 1, ticket.Page)
	assert.Equal(t, "vader", ticket.Search)

	ticket = c.RequestPage(2, "vader")
	assert.Equal(t, 2, ticket.Page)
}

func TestCollection_SetPageIgnoresInvalid(t *testing.T) {
	c := NewCollection()
	c.SetPage(4)
	c.SetPage(0)
	c.SetPage(-1)
	assert.Equal(t, 4, c.Snapshot().CurrentPage)
}

func TestCollection_StaleOutcomeDiscarded(t *testing.T) {
	c := NewCollection()
	first := c.RequestPage(1, "lu")
	second := c.RequestPage(1, "luke")

	// The newer request resolves first.
	require.True(t, c.Apply(ListOutcome{Seq: second.Seq, Page: swapi.Page{Count: 1, Results: people(1)}}))
	// The older one arrives late and must not win.
	assert.False(t, c.Apply(ListOutcome{Seq: first.Seq, Page: swapi.Page{Count: 3, Results: people(3)}}))

	snap := c.Snapshot()
	assert.Equal(t, 1, snap.TotalCount)
	assert.Len(t, snap.Records, 1)
	assert.Equal(t, "luke", snap.SearchTerm)
	assert.Equal(t, StatusIdle, snap.Status)
}

func TestCollection_StaleOutcomeWhileLoadingKeepsLoading(t *testing.T) {
	c := NewCollection()
	first := c.Request()
	c.Request()

	assert.False(t, c.Apply(ListOutcome{Seq: first.Seq, Err: errors.New("late failure")}))
	snap := c.Snapshot()
	assert.Equal(t, StatusLoading, snap.Status)
	assert.Empty(t, snap.ErrorMessage)
}

func TestCollection_SnapshotClonesRecords(t *testing.T) {
	c := NewCollection()
	ticket := c.Request()
	c.Apply(ListOutcome{Seq: ticket.Seq, Page: swapi.Page{Count: 1, Results: []swapi.Person{luke()}}})

	snap := c.Snapshot()
	snap.Records[0].Name = "changed"
	snap.Records[0].Films[0] = "changed"

	again := c.Snapshot()
	assert.Equal(t, "Luke Skywalker", again.Records[0].Name)
	assert.Equal(t, "1", again.Records[0].Films[0])
}

func TestCollection_ApplyClonesInput(t *testing.T) {
	c := NewCollection()
	ticket := c.Request()
	results := []swapi.Person{luke()}
	c.Apply(ListOutcome{Seq: ticket.Seq, Page: swapi.Page{Count: 1, Results: results}})

	results[0].Name = "mutated after apply"
	assert.Equal(t, "Luke Skywalker", c.Snapshot().Records[0].Name)
}

func TestCollection_PageSizeFollowsOrigin(t *testing.T) {
	c := NewCollection()

	// A full page with a successor sets the page size.
	t1 := c.Request()
	c.Apply(ListOutcome{Seq: t1.Seq, Page: swapi.Page{Count: 82, Next: "page=2", Results: people(10)}})
	snap := c.Snapshot()
	assert.Equal(t, 10, snap.PerPage)
	assert.Equal(t, paging.Result{TotalPages: 9, DisplayPage: 1}, snap.Pages())

	// The short last page does not.
	c.SetPage(9)
	t2 := c.Request()
	c.Apply(ListOutcome{Seq: t2.Seq, Page: swapi.Page{Count: 82, Previous: "page=8", Results: people(2)}})
	snap = c.Snapshot()
	assert.Equal(t, 10, snap.PerPage)
	assert.Equal(t, paging.Result{TotalPages: 9, DisplayPage: 9}, snap.Pages())

	// An origin serving larger pages is followed.
	t3 := c.RequestPage(1, "")
	c.Apply(ListOutcome{Seq: t3.Seq, Page: swapi.Page{Count: 82, Next: "page=2", Results: people(20)}})
	snap = c.Snapshot()
	assert.Equal(t, 20, snap.PerPage)
	assert.Equal(t, 5, snap.Pages().TotalPages)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "idle", StatusIdle.String())
	assert.Equal(t, "loading", StatusLoading.String())
	assert.Equal(t, "error", StatusError.String())
}
