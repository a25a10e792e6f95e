package state

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/five82/holocron/internal/swapi"
)

// fakeRepo serves canned pages and people and counts every call.
type fakeRepo struct {
	calls  atomic.Int32
	page   swapi.Page
	person swapi.Person
	err    error
}

func (f *fakeRepo) ListPeople(_ context.Context, _ int, _ string) (swapi.Page, error) {
	f.calls.Add(1)
	if f.err != nil {
		return swapi.Page{}, f.err
	}
	return f.page, nil
}

func (f *fakeRepo) GetPerson(_ context.Context, _ string) (swapi.Person, error) {
	f.calls.Add(1)
	if f.err != nil {
		return swapi.Person{}, f.err
	}
	return f.person, nil
}

func people(n int) []swapi.Person {
	out := make([]swapi.Person, n)
	for i := range out {
		out[i] = swapi.Person{
			Name: fmt.Sprintf("Person %d", i+1),
			URL:  fmt.Sprintf("https://swapi.dev/api/people/%d/", i+1),
		}
	}
	return out
}

func luke() swapi.Person {
	return swapi.Person{
		Name:      "Luke Skywalker",
		Height:    "172",
		Mass:      "77",
		HairColor: "blond",
		SkinColor: "fair",
		EyeColor:  "blue",
		BirthYear: "19BBY",
		Gender:    "male",
		Films:     []string{"1", "2", "3", "6"},
		Vehicles:  []string{"14", "30"},
		Starships: []string{"12", "22"},
		URL:       "https://swapi.dev/api/people/1/",
	}
}
