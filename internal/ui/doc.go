// Package ui renders Holocron's terminal interface with Bubble Tea.
//
// # Views
//
// Two views are available:
//
//   - Collection: a searchable, paginated table of characters
//   - Detail: one character's attributes and association counts, with a
//     local edit session
//
// # Data flow
//
// The model never fetches inline. Navigation asks a state container for a
// ticket (state.Collection.Request, state.Detail.Load) and returns a
// tea.Cmd that performs it against the repository. The command's result
// arrives back in Update as a message and is handed to the container's
// Apply, which drops it when a newer ticket has been issued since.
// Rendering reads only container snapshots.
//
// # Files
//
//   - app.go: Model, Update routing, commands, Run
//   - collection.go: table, search and page navigation
//   - detail.go: detail view and edit session
//   - help.go: keyboard shortcut overlay
//   - keys.go: key bindings
//   - theme.go: color themes and lipgloss styles
package ui
