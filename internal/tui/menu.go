package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-sol-vault/models"
)

type menuAction int

const (
	menuConnect menuAction = iota
	menuInitialize
	menuDeposit
	menuWithdraw
	menuCreateBank
	menuBankDeposit
	menuBankWithdraw
	menuAccounts
	menuHistory
)

var menuActions = []menuAction{
	menuConnect,
	menuInitialize,
	menuDeposit,
	menuWithdraw,
	menuCreateBank,
	menuBankDeposit,
	menuBankWithdraw,
	menuAccounts,
	menuHistory,
}

func (a menuAction) title(connected bool) string {
	switch a {
	case menuConnect:
		if connected {
			return "Disconnect wallet"
		}
		return "Connect wallet"
	case menuInitialize:
		return "Initialize vault"
	case menuDeposit:
		return "Deposit to vault"
	case menuWithdraw:
		return "Withdraw from vault"
	case menuCreateBank:
		return "Create bank account"
	case menuBankDeposit:
		return "Deposit to bank account"
	case menuBankWithdraw:
		return "Withdraw from bank account"
	case menuAccounts:
		return "Accounts"
	case menuHistory:
		return "History"
	default:
		return ""
	}
}

// operation is the journal action a form submits.
func (a menuAction) operation() models.Action {
	switch a {
	case menuDeposit:
		return models.ActionVaultDeposit
	case menuWithdraw:
		return models.ActionVaultWithdraw
	case menuBankDeposit:
		return models.ActionBankDeposit
	case menuBankWithdraw:
		return models.ActionBankWithdraw
	case menuCreateBank:
		return models.ActionBankCreate
	default:
		return models.ActionVaultInitialize
	}
}

type menuModel struct {
	idx int
}

func (m appModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.menu.idx > 0 {
			m.menu.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.menu.idx < len(menuActions)-1 {
			m.menu.idx++
		}
	case key.Matches(keyMsg, keys.version):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.enter):
		return m.selectMenu(menuActions[m.menu.idx])
	}
	return m, nil
}

// selectMenu dispatches without checking preconditions: the action service
// reports a missing wallet or provider itself.
func (m appModel) selectMenu(action menuAction) (tea.Model, tea.Cmd) {
	switch action {
	case menuConnect:
		m.inFlight++
		if m.connected {
			return m, m.cmdDisconnect()
		}
		return m, m.cmdConnect()
	case menuInitialize:
		m.inFlight++
		return m, m.cmdRun(models.ActionVaultInitialize, m.actions.InitializeVault)
	case menuDeposit, menuWithdraw, menuBankDeposit, menuBankWithdraw:
		m.form = newAmountForm(action)
		m.currentScreen = screenForm
		return m, m.form.init()
	case menuCreateBank:
		m.form = newBankNameForm()
		m.currentScreen = screenForm
		return m, m.form.init()
	case menuAccounts:
		m.currentScreen = screenAccounts
		m.accounts.loading = true
		return m, m.cmdLoadAccounts(false)
	case menuHistory:
		m.currentScreen = screenHistory
		m.history.loading = true
		return m, m.cmdLoadOperations()
	}
	return m, nil
}

func (m appModel) viewMenu() string {
	var b strings.Builder

	if m.connected {
		b.WriteString("Wallet: ")
		b.WriteString(successStyle.Render(m.owner.String()))
	} else {
		b.WriteString("Wallet: ")
		b.WriteString(warningStyle.Render("not connected"))
	}
	b.WriteString("\n")
	if m.inFlight > 0 {
		b.WriteString(infoStyle.Render(fmt.Sprintf("%d operation(s) in progress...", m.inFlight)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	width := 0
	for _, a := range menuActions {
		if w := lipgloss.Width(a.title(m.connected)); w > width {
			width = w
		}
	}

	for i, a := range menuActions {
		line := fmt.Sprintf("%s %d │ %-*s", cursor(i == m.menu.idx), i+1, width, a.title(m.connected))
		if i == m.menu.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return renderPage("VAULT", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ v: version │ q: quit")
}
