// Package tui is the terminal interface of the vault client.
//
// A single bubbletea model routes between the action menu, the amount and
// bank name forms, the accounts view and the operation history. Every
// action runs as a [tea.Cmd] off the UI loop; outcomes arrive through the
// notifier and are shown as toasts.
package tui
