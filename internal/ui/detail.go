package ui

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/holocron/internal/state"
	"github.com/five82/holocron/internal/swapi"
)

// handleDetailKey processes keyboard input for the detail view outside an
// edit session.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.detail.Snapshot()

	switch {
	case key.Matches(msg, m.keys.Back):
		m.detail.Clear()
		m.currentView = ViewCollection
		m.notice = ""
		m.syncFields()
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		if snap.ID == "" {
			return m, nil
		}
		m.notice = ""
		return m, m.requestDetail(m.detail.Load(snap.ID))

	case key.Matches(msg, m.keys.Edit):
		if err := m.detail.BeginEdit(); err != nil {
			m.log.Debug("begin edit rejected", slog.Any("error", err))
			return m, nil
		}
		m.notice = ""
		m.syncFields()
		return m, m.focusField(0)
	}
	return m, nil
}

// handleEditKey processes keyboard input during an edit session. Every
// keystroke that changes an input is written to the edit buffer.
func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Save):
		if err := m.detail.CommitEdit(); err != nil {
			m.log.Warn("commit edit failed", slog.Any("error", err))
			return m, nil
		}
		m.log.Info("edit committed locally", slog.String("id", m.detail.Snapshot().ID))
		m.notice = m.labels.LocalOnly
		m.syncFields()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		if err := m.detail.CancelEdit(); err != nil {
			m.log.Warn("cancel edit failed", slog.Any("error", err))
		}
		m.notice = ""
		m.syncFields()
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		return m, m.focusField((m.fieldIdx + 1) % len(m.fields))

	case key.Matches(msg, m.keys.PrevField):
		return m, m.focusField((m.fieldIdx - 1 + len(m.fields)) % len(m.fields))
	}

	idx := m.fieldIdx
	before := m.fields[idx].Value()
	var cmd tea.Cmd
	m.fields[idx], cmd = m.fields[idx].Update(msg)
	if value := m.fields[idx].Value(); value != before {
		if err := m.detail.SetField(swapi.EditableFields[idx], value); err != nil {
			m.log.Warn("set field failed", slog.String("field", swapi.EditableFields[idx]), slog.Any("error", err))
		}
	}
	return m, cmd
}

// focusField moves input focus to the field at idx.
func (m *Model) focusField(idx int) tea.Cmd {
	for i := range m.fields {
		m.fields[i].Blur()
	}
	m.fieldIdx = idx
	return m.fields[idx].Focus()
}

// syncFields loads the edit inputs from the detail snapshot.
func (m *Model) syncFields() {
	snap := m.detail.Snapshot()
	for i, field := range swapi.EditableFields {
		value := ""
		if snap.EditBuffer != nil {
			value, _ = snap.EditBuffer.Field(field)
		}
		m.fields[i].SetValue(value)
		m.fields[i].CursorEnd()
		if !snap.IsEditing {
			m.fields[i].Blur()
		}
	}
	if !snap.IsEditing {
		m.fieldIdx = 0
	}
}

// renderDetail renders the single character view.
func (m Model) renderDetail() string {
	styles := m.theme.Styles()
	snap := m.detail.Snapshot()

	crumb := snap.ID
	if snap.Record != nil && snap.Record.Name != "" {
		crumb = snap.Record.Name
	}
	var b strings.Builder
	b.WriteString(styles.MutedText.Render(m.labels.Breadcrumb + " / "))
	b.WriteString(styles.Title.Render(crumb))
	b.WriteString("\n\n")

	switch {
	case snap.Status == state.StatusLoading:
		b.WriteString(m.spinner.View() + " " + m.labels.Loading)
		b.WriteString("\n")

	case snap.Status == state.StatusError || snap.Record == nil:
		b.WriteString(m.renderNotFound(snap))

	default:
		b.WriteString(m.renderRecord(snap))
	}

	b.WriteString("\n")
	b.WriteString(styles.Footer.Render(m.help.View(detailHelp{keys: m.keys, editing: snap.IsEditing})))
	return b.String()
}

func (m Model) renderNotFound(snap state.DetailSnapshot) string {
	styles := m.theme.Styles()
	lines := []string{styles.DangerText.Render(m.labels.NotFound)}
	if snap.ErrorMessage != "" {
		lines = append(lines, styles.MutedText.Render(snap.ErrorMessage))
	}
	lines = append(lines, "", styles.AccentText.Render(m.keys.Back.Help().Key)+" "+m.labels.BackHome)
	return styles.Panel.Render(strings.Join(lines, "\n")) + "\n"
}

// Panel layout of the editable fields; the name is the heading above them.
var (
	characteristicFields = []string{swapi.FieldHeight, swapi.FieldMass, swapi.FieldHairColor, swapi.FieldSkinColor}
	informationFields    = []string{swapi.FieldEyeColor, swapi.FieldBirthYear, swapi.FieldGender}
)

func (m Model) renderRecord(snap state.DetailSnapshot) string {
	styles := m.theme.Styles()

	var b strings.Builder
	if snap.IsEditing {
		b.WriteString(styles.Label.Render(m.labels.Field(swapi.FieldName)) + m.fields[0].View())
	} else {
		b.WriteString(styles.Title.Render(snap.Record.Name))
	}
	b.WriteString("\n\n")

	left := m.fieldPanel(snap, m.labels.Characteristics, characteristicFields)
	right := m.fieldPanel(snap, m.labels.Information, informationFields)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	b.WriteString("\n")

	counts := snap.Record.Counts()
	chips := []string{
		m.countChip(m.labels.Films, counts.Films),
		m.countChip(m.labels.Species, counts.Species),
		m.countChip(m.labels.Vehicles, counts.Vehicles),
		m.countChip(m.labels.Starships, counts.Starships),
	}
	b.WriteString(styles.Header.Render(m.labels.Additional))
	b.WriteString("\n")
	b.WriteString(strings.Join(chips, " "))
	if edited := snap.Record.ParsedEdited(); !edited.IsZero() {
		b.WriteString("  " + styles.FaintText.Render(edited.Format("2006-01-02 15:04")))
	}
	b.WriteString("\n")

	var notes []string
	if snap.IsEditing {
		notes = append(notes, styles.WarningText.Render(m.labels.Editing))
	}
	if snap.Dirty() {
		notes = append(notes, styles.WarningText.Render(m.labels.Unsaved))
	}
	if m.notice != "" {
		notes = append(notes, styles.SuccessText.Render(m.notice))
	}
	if len(notes) > 0 {
		b.WriteString(strings.Join(notes, styles.FaintText.Render(" · ")))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) fieldPanel(snap state.DetailSnapshot, title string, names []string) string {
	styles := m.theme.Styles()
	lines := []string{styles.Header.Render(title)}
	for _, field := range names {
		label := styles.Label.Render(m.labels.Field(field))
		var value string
		if i := slices.Index(swapi.EditableFields, field); snap.IsEditing && i >= 0 {
			value = m.fields[i].View()
		} else {
			raw, _ := snap.Record.Field(field)
			value = styles.Text.Render(orDash(raw))
		}
		lines = append(lines, label+value)
	}
	return styles.Panel.Render(strings.Join(lines, "\n"))
}

func (m Model) countChip(label string, n int) string {
	return m.theme.Styles().Chip.Render(fmt.Sprintf("%s: %d", label, n))
}
