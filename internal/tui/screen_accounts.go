package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gagliardetto/solana-go"

	"github.com/MKhiriev/go-sol-vault/models"
)

type accountsModel struct {
	snapshot *models.AccountsSnapshot
	idx      int
	loading  bool
	err      string
}

type accountRow struct {
	label   string
	address solana.PublicKey
	balance string
}

// rows lists the wallet, the vault accounts and every bank account; the
// owner's own banks are marked.
func (a accountsModel) rows() []accountRow {
	if a.snapshot == nil {
		return nil
	}
	s := a.snapshot

	vaultBalance := "-"
	if s.Vault.Initialized {
		vaultBalance = s.Vault.Balance.SOL() + " SOL"
	}

	rows := []accountRow{
		{label: "Wallet", address: s.Owner},
		{label: "Vault state", address: s.Vault.Addresses.State},
		{label: "Vault", address: s.Vault.Addresses.Vault, balance: vaultBalance},
	}
	for _, bank := range s.Banks {
		label := "Bank " + fitText(bank.Name, 20)
		if bank.Owner.Equals(s.Owner) {
			label += " *"
		}
		rows = append(rows, accountRow{label: label, address: bank.Address, balance: bank.Balance.SOL() + " SOL"})
	}
	return rows
}

func (m appModel) updateAccounts(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	rows := m.accounts.rows()
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.up):
		if m.accounts.idx > 0 {
			m.accounts.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.accounts.idx < len(rows)-1 {
			m.accounts.idx++
		}
	case key.Matches(keyMsg, keys.refresh):
		m.accounts.loading = true
		return m, m.cmdLoadAccounts(true)
	case key.Matches(keyMsg, keys.copy):
		if m.accounts.idx < len(rows) {
			row := rows[m.accounts.idx]
			return m, m.cmdCopy(row.label+" address", row.address.String())
		}
	}
	return m, nil
}

func (m appModel) viewAccounts() string {
	var b strings.Builder

	switch {
	case m.accounts.loading:
		b.WriteString("Loading accounts...")
	case m.accounts.err != "":
		b.WriteString(errorStyle.Render(m.accounts.err))
	case m.accounts.snapshot != nil:
		for i, row := range m.accounts.rows() {
			line := fmt.Sprintf("%s %-26s %-46s %s", cursor(i == m.accounts.idx), row.label, row.address, row.balance)
			if i == m.accounts.idx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		if m.accounts.snapshot.Stale {
			b.WriteString(warningStyle.Render("outdated, press r to refresh"))
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("updated " + m.accounts.snapshot.FetchedAt.Local().Format("15:04:05")))
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(successStyle.Render(m.status))
	}

	return renderPage("ACCOUNTS", b.String(), "c: copy address │ r: refresh │ esc: back")
}
