package tui

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gagliardetto/solana-go"

	"github.com/MKhiriev/go-sol-vault/internal/service"
	"github.com/MKhiriev/go-sol-vault/models"
)

type screen int

const (
	screenMenu screen = iota
	screenForm
	screenAccounts
	screenHistory
)

type appModel struct {
	ctx       context.Context
	actions   service.ActionService
	notifier  service.Notifier
	buildInfo models.AppBuildInfo
	clipboard func(string) error

	currentScreen screen
	owner         solana.PublicKey
	connected     bool

	menu     menuModel
	form     formModel
	accounts accountsModel
	history  historyModel

	toasts        []models.Notification
	inFlight      int
	status        string
	showBuildInfo bool
	quitByUser    bool
}

func newAppModel(ctx context.Context, actions service.ActionService, notifier service.Notifier, buildInfo models.AppBuildInfo) appModel {
	m := appModel{
		ctx:       ctx,
		actions:   actions,
		notifier:  notifier,
		buildInfo: buildInfo,
		clipboard: clipboard.WriteAll,
	}
	m.owner, m.connected = actions.Owner()
	return m
}

func (m appModel) Init() tea.Cmd {
	return waitForNotification(m.notifier)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			m.quitByUser = true
			return m, tea.Quit
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	case notificationMsg:
		m.toasts = pushToast(m.toasts, msg.notification)
		return m, tea.Batch(waitForNotification(m.notifier), cmdDismissNotification(msg.notification.ID))
	case dismissNotificationMsg:
		m.toasts = dropToast(m.toasts, msg.id)
		return m, nil
	case walletConnectedMsg:
		m.inFlight--
		if msg.err == nil {
			m.owner, m.connected = msg.owner, true
			m.accounts = accountsModel{}
		}
		return m, nil
	case walletDisconnectedMsg:
		m.inFlight--
		m.owner, m.connected = solana.PublicKey{}, false
		m.accounts = accountsModel{}
		return m, nil
	case operationDoneMsg:
		m.inFlight--
		if msg.result.OK() && m.currentScreen == screenAccounts {
			m.accounts.loading = true
			return m, m.cmdLoadAccounts(false)
		}
		return m, nil
	case accountsLoadedMsg:
		m.accounts.loading = false
		if msg.err != nil {
			m.accounts.err = humanizeError(msg.err)
			return m, nil
		}
		m.accounts.err = ""
		m.accounts.snapshot = &msg.snapshot
		if rows := len(m.accounts.rows()); m.accounts.idx >= rows {
			m.accounts.idx = max(rows-1, 0)
		}
		return m, nil
	case operationsLoadedMsg:
		m.history.loading = false
		if msg.err != nil {
			m.history.err = humanizeError(msg.err)
			return m, nil
		}
		m.history.err = ""
		m.history.operations = msg.operations
		if m.history.idx >= len(msg.operations) {
			m.history.idx = max(len(msg.operations)-1, 0)
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.status = "Copy failed: " + msg.err.Error()
		} else {
			m.status = msg.what + " copied!"
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	switch m.currentScreen {
	case screenForm:
		return m.updateForm(msg)
	case screenAccounts:
		return m.updateAccounts(msg)
	case screenHistory:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var page string
	switch m.currentScreen {
	case screenForm:
		page = m.viewForm()
	case screenAccounts:
		page = m.viewAccounts()
	case screenHistory:
		page = m.viewHistory()
	default:
		page = m.viewMenu()
	}

	if toasts := renderToasts(m.toasts); toasts != "" {
		page += "\n\n" + toasts
	}
	return appStyle.Render(page)
}
