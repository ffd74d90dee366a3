package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-sol-vault/internal/service"
	"github.com/MKhiriev/go-sol-vault/models"
)

const defaultAmount = "0.1"

// formModel is a single-field input: a SOL amount or a bank account name.
type formModel struct {
	action menuAction
	input  textinput.Model
	err    string
}

func newAmountForm(action menuAction) formModel {
	input := textinput.New()
	input.Prompt = "SOL > "
	input.Placeholder = defaultAmount
	input.CharLimit = 24
	input.SetValue(defaultAmount)
	input.CursorEnd()

	return formModel{action: action, input: input}
}

func newBankNameForm() formModel {
	input := textinput.New()
	input.Prompt = "Name > "
	input.Placeholder = "savings"
	input.CharLimit = models.MaxBankNameLength

	return formModel{action: menuCreateBank, input: input}
}

func (f *formModel) init() tea.Cmd {
	f.input.Focus()
	return textinput.Blink
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenMenu
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m.submitForm()
		}
	}

	var cmd tea.Cmd
	m.form.input, cmd = m.form.input.Update(msg)
	m.form.err = ""
	return m, cmd
}

func (m appModel) submitForm() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.form.input.Value())

	var run func(ctx context.Context) models.OperationResult
	if m.form.action == menuCreateBank {
		if err := service.ValidateBankName(value); err != nil {
			m.form.err = "Name must be 1 to 32 bytes"
			return m, nil
		}
		run = func(ctx context.Context) models.OperationResult {
			return m.actions.CreateBank(ctx, value)
		}
	} else {
		amount, err := models.ParseSOL(value)
		if err != nil {
			m.form.err = "Enter a positive SOL amount with at most 9 decimals"
			return m, nil
		}
		run = m.amountAction(amount)
	}

	m.currentScreen = screenMenu
	m.inFlight++
	return m, m.cmdRun(m.form.action.operation(), run)
}

func (m appModel) amountAction(amount models.Lamports) func(ctx context.Context) models.OperationResult {
	actions := m.actions
	switch m.form.action {
	case menuWithdraw:
		return func(ctx context.Context) models.OperationResult { return actions.Withdraw(ctx, amount) }
	case menuBankDeposit:
		return func(ctx context.Context) models.OperationResult { return actions.BankDeposit(ctx, amount) }
	case menuBankWithdraw:
		return func(ctx context.Context) models.OperationResult { return actions.BankWithdraw(ctx, amount) }
	default:
		return func(ctx context.Context) models.OperationResult { return actions.Deposit(ctx, amount) }
	}
}

func (m appModel) viewForm() string {
	var b strings.Builder
	b.WriteString(m.form.input.View())
	if m.form.err != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.form.err))
	}
	return renderPage(strings.ToUpper(m.form.action.title(m.connected)), b.String(), "enter: submit │ esc: back")
}
