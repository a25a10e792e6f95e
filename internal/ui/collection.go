package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/holocron/internal/paging"
	"github.com/five82/holocron/internal/state"
	"github.com/five82/holocron/internal/swapi"
)

// columns returns the character table columns for the current labels.
func (m Model) columns() []table.Column {
	return []table.Column{
		{Title: m.labels.Field(swapi.FieldName), Width: nameColumnWidth},
		{Title: m.labels.Field(swapi.FieldHeight), Width: valueColumnWidth},
		{Title: m.labels.Field(swapi.FieldMass), Width: valueColumnWidth},
		{Title: m.labels.Field(swapi.FieldGender), Width: valueColumnWidth},
		{Title: m.labels.Field(swapi.FieldHairColor), Width: valueColumnWidth + 2},
		{Title: m.labels.Field(swapi.FieldEyeColor), Width: valueColumnWidth + 2},
	}
}

func personRow(p swapi.Person) table.Row {
	return table.Row{
		truncate(p.Name, nameColumnWidth),
		orDash(p.Height),
		orDash(p.Mass),
		orDash(p.Gender),
		truncate(orDash(p.HairColor), valueColumnWidth+2),
		truncate(orDash(p.EyeColor), valueColumnWidth+2),
	}
}

// syncTable rebuilds the table rows from the collection snapshot.
func (m *Model) syncTable() {
	snap := m.collection.Snapshot()
	rows := make([]table.Row, 0, len(snap.Records))
	for _, p := range snap.Records {
		rows = append(rows, personRow(p))
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) || m.table.Cursor() < 0 {
		m.table.SetCursor(0)
	}
}

func (m *Model) resizeTable() {
	height := m.height - chromeHeight
	if height < minTableHeight {
		height = minTableHeight
	}
	// header row plus its border, then one line per record
	if rows := m.collection.Snapshot().PerPage + 2; height > rows {
		height = rows
	}
	m.table.SetHeight(height)
	if m.width > 0 {
		m.table.SetWidth(m.width - 2)
	}
	m.search.Width = max(m.width-lipgloss.Width(m.search.Prompt)-4, 10)
}

// pageInfo reports pagination for the current snapshot.
func (m Model) pageInfo(snap state.CollectionSnapshot) paging.Result {
	return snap.Pages()
}

// goToPage requests page when it is within bounds. Out-of-range targets are
// rejected without a state change or fetch.
func (m Model) goToPage(page int) (tea.Model, tea.Cmd) {
	snap := m.collection.Snapshot()
	info := m.pageInfo(snap)
	if !info.CanNavigate(page) || page == snap.CurrentPage {
		return m, nil
	}
	m.collection.SetPage(page)
	m.table.SetCursor(0)
	return m, m.requestList(m.collection.Request())
}

// handleCollectionKey processes keyboard input for the collection view.
func (m Model) handleCollectionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.collection.Snapshot()
	info := m.pageInfo(snap)

	switch {
	case key.Matches(msg, m.keys.Search):
		m.search.SetValue(snap.SearchTerm)
		m.search.CursorEnd()
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Clear):
		if snap.SearchTerm == "" {
			return m, nil
		}
		m.search.SetValue("")
		return m.submitSearch("")

	case key.Matches(msg, m.keys.Open):
		idx := m.table.Cursor()
		if idx < 0 || idx >= len(snap.Records) {
			return m, nil
		}
		return m.openDetail(snap.Records[idx].ID())

	case key.Matches(msg, m.keys.NextPage):
		if page, ok := info.Next(); ok {
			return m.goToPage(page)
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		if page, ok := info.Prev(); ok {
			return m.goToPage(page)
		}
		return m, nil

	case key.Matches(msg, m.keys.FirstPage):
		return m.goToPage(1)

	case key.Matches(msg, m.keys.LastPage):
		return m.goToPage(info.TotalPages)

	case key.Matches(msg, m.keys.Reload):
		return m, m.requestList(m.collection.Request())
	}

	if r := msg.Runes; msg.Type == tea.KeyRunes && len(r) == 1 && r[0] >= '1' && r[0] <= '9' {
		return m.goToPage(int(r[0] - '0'))
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// handleSearchKey processes input while the search bar has focus.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.search.Blur()
		return m.submitSearch(m.search.Value())
	case key.Matches(msg, m.keys.BlurSearch):
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// submitSearch sets the term, which resets to page 1, and fetches.
func (m Model) submitSearch(term string) (tea.Model, tea.Cmd) {
	m.collection.SetSearchTerm(term)
	m.table.SetCursor(0)
	m.log.Info("search submitted", slog.String("term", strings.TrimSpace(term)))
	return m, m.requestList(m.collection.Request())
}

// openDetail switches to the detail view and loads id.
func (m Model) openDetail(id string) (tea.Model, tea.Cmd) {
	if id == "" {
		return m, nil
	}
	m.currentView = ViewDetail
	m.notice = ""
	return m, m.requestDetail(m.detail.Load(id))
}

// renderCollection renders the listing view.
func (m Model) renderCollection() string {
	styles := m.theme.Styles()
	snap := m.collection.Snapshot()
	info := m.pageInfo(snap)

	var b strings.Builder
	b.WriteString(styles.Title.Render(m.labels.Title))
	b.WriteString("  ")
	b.WriteString(styles.MutedText.Render(fmt.Sprintf(m.labels.TotalCount, snap.TotalCount)))
	b.WriteString("\n\n")

	if m.search.Focused() {
		b.WriteString(m.search.View())
	} else {
		term := snap.SearchTerm
		if term == "" {
			term = styles.FaintText.Render(m.labels.SearchPlaceholder)
		}
		b.WriteString(styles.MutedText.Render(m.labels.SearchPrompt) + term)
	}
	b.WriteString("\n\n")

	switch {
	case snap.Loading() && len(snap.Records) == 0:
		b.WriteString(m.spinner.View() + " " + m.labels.Loading)
	case snap.Status == state.StatusIdle && len(snap.Records) == 0:
		b.WriteString(styles.MutedText.Render(m.labels.NothingFound))
	case len(snap.Records) > 0:
		b.WriteString(m.table.View())
	}
	b.WriteString("\n")

	if snap.Loading() && len(snap.Records) > 0 {
		b.WriteString(m.spinner.View() + " " + styles.MutedText.Render(m.labels.Loading))
		b.WriteString("\n")
	}
	if snap.Status == state.StatusError {
		b.WriteString(styles.DangerText.Render(snap.ErrorMessage))
		b.WriteString("\n")
	}

	if info.ShowControls() {
		pager := m.pager
		pager.TotalPages = info.TotalPages
		pager.Page = info.DisplayPage - 1
		if info.TotalPages > 20 {
			pager.Type = paginator.Arabic
		}
		b.WriteString("\n")
		b.WriteString(pager.View())
		b.WriteString("  ")
		b.WriteString(styles.MutedText.Render(fmt.Sprintf(m.labels.PageOf, info.DisplayPage, info.TotalPages)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Footer.Render(m.help.View(m.keys)))
	return b.String()
}
