package app

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/five82/holocron/internal/labels"
	"github.com/five82/holocron/internal/logging"
	"github.com/five82/holocron/internal/state"
	"github.com/five82/holocron/internal/swapi"
)

// Reporter prints repository reads for the non-interactive commands. It
// goes through the same state containers the TUI uses.
type Reporter struct {
	Repo   swapi.Repository
	Labels labels.Set
	Out    io.Writer
}

// List prints one page of characters followed by the pagination line.
func (r Reporter) List(ctx context.Context, page int, search string) error {
	coll := state.NewCollection()
	coll.SetSearchTerm(search)
	coll.SetPage(page)
	coll.Apply(state.FetchList(ctx, r.Repo, coll.Request()))

	snap := coll.Snapshot()
	if snap.Status == state.StatusError {
		return fmt.Errorf("list people: %s", snap.ErrorMessage)
	}
	if len(snap.Records) == 0 {
		fmt.Fprintln(r.Out, r.Labels.NothingFound)
		return nil
	}

	tw := tabwriter.NewWriter(r.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\t%s\t%s\t%s\t%s\n",
		r.Labels.Field(swapi.FieldName),
		r.Labels.Field(swapi.FieldHeight),
		r.Labels.Field(swapi.FieldMass),
		r.Labels.Field(swapi.FieldGender))
	for _, p := range snap.Records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID(), p.Name, p.Height, p.Mass, p.Gender)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	info := snap.Pages()
	fmt.Fprintf(r.Out, "\n%s", fmt.Sprintf(r.Labels.TotalCount, snap.TotalCount))
	if info.ShowControls() {
		fmt.Fprintf(r.Out, "  %s", fmt.Sprintf(r.Labels.PageOf, info.DisplayPage, info.TotalPages))
	}
	fmt.Fprintln(r.Out)
	return nil
}

// Show prints one character's attributes and association counts.
func (r Reporter) Show(ctx context.Context, id string) error {
	detail := state.NewDetail()
	detail.Apply(state.FetchDetail(ctx, r.Repo, detail.Load(id)))

	snap := detail.Snapshot()
	if snap.Status == state.StatusError || snap.Record == nil {
		return fmt.Errorf("%s: %s", r.Labels.NotFound, snap.ErrorMessage)
	}

	tw := tabwriter.NewWriter(r.Out, 0, 4, 2, ' ', 0)
	for _, field := range swapi.EditableFields {
		value, _ := snap.Record.Field(field)
		fmt.Fprintf(tw, "%s\t%s\n", r.Labels.Field(field), value)
	}
	counts := snap.Record.Counts()
	fmt.Fprintf(tw, "%s\t%d\n", r.Labels.Films, counts.Films)
	fmt.Fprintf(tw, "%s\t%d\n", r.Labels.Species, counts.Species)
	fmt.Fprintf(tw, "%s\t%d\n", r.Labels.Vehicles, counts.Vehicles)
	fmt.Fprintf(tw, "%s\t%d\n", r.Labels.Starships, counts.Starships)
	return tw.Flush()
}

// Logs prints the tail of the TUI log file.
func Logs(out io.Writer, path string, lines int, minLevel string) error {
	tail, err := logging.Tail(path, lines, logging.ParseLevel(minLevel))
	if err != nil {
		return err
	}
	if len(tail) > 0 {
		fmt.Fprintln(out, strings.Join(tail, "\n"))
	}
	return nil
}
