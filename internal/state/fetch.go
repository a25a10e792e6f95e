package state

import (
	"context"

	"github.com/five82/holocron/internal/swapi"
)

// FetchList performs a list ticket against repo. It blocks until the
// request completes; callers run it off the event loop.
func FetchList(ctx context.Context, repo swapi.Repository, t ListTicket) ListOutcome {
	page, err := repo.ListPeople(ctx, t.Page, t.Search)
	return ListOutcome{Seq: t.Seq, Page: page, Err: err}
}

// FetchDetail performs a detail ticket against repo.
func FetchDetail(ctx context.Context, repo swapi.Repository, t DetailTicket) DetailOutcome {
	person, err := repo.GetPerson(ctx, t.ID)
	return DetailOutcome{Seq: t.Seq, Person: person, Err: err}
}
