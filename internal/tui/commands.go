package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-sol-vault/internal/service"
	"github.com/MKhiriev/go-sol-vault/models"
)

const (
	statusTTL       = 2 * time.Second
	notificationTTL = 6 * time.Second
	historyLimit    = 50
)

// waitForNotification blocks until the notifier yields the next message.
// It is re-armed after each delivery.
func waitForNotification(notifier service.Notifier) tea.Cmd {
	if notifier == nil {
		return nil
	}
	ch := notifier.Notifications()
	return func() tea.Msg {
		n, ok := <-ch
		if !ok {
			return nil
		}
		return notificationMsg{notification: n}
	}
}

func cmdDismissNotification(id string) tea.Cmd {
	return tea.Tick(notificationTTL, func(time.Time) tea.Msg {
		return dismissNotificationMsg{id: id}
	})
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m appModel) cmdRun(action models.Action, run func(ctx context.Context) models.OperationResult) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return operationDoneMsg{action: action, result: run(ctx)}
	}
}

func (m appModel) cmdConnect() tea.Cmd {
	ctx, actions := m.ctx, m.actions
	return func() tea.Msg {
		owner, err := actions.ConnectWallet(ctx)
		return walletConnectedMsg{owner: owner, err: err}
	}
}

func (m appModel) cmdDisconnect() tea.Cmd {
	ctx, actions := m.ctx, m.actions
	return func() tea.Msg {
		actions.DisconnectWallet(ctx)
		return walletDisconnectedMsg{}
	}
}

func (m appModel) cmdLoadAccounts(refresh bool) tea.Cmd {
	ctx, actions := m.ctx, m.actions
	return func() tea.Msg {
		snapshot, err := actions.Accounts(ctx, refresh)
		return accountsLoadedMsg{snapshot: snapshot, err: err}
	}
}

func (m appModel) cmdLoadOperations() tea.Cmd {
	ctx, actions := m.ctx, m.actions
	return func() tea.Msg {
		operations, err := actions.Operations(ctx, historyLimit)
		return operationsLoadedMsg{operations: operations, err: err}
	}
}

func (m appModel) cmdCopy(what, value string) tea.Cmd {
	write := m.clipboard
	return func() tea.Msg {
		return copiedMsg{what: what, err: write(value)}
	}
}
