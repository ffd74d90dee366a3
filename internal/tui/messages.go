package tui

import (
	"github.com/gagliardetto/solana-go"

	"github.com/MKhiriev/go-sol-vault/models"
)

type notificationMsg struct {
	notification models.Notification
}

type dismissNotificationMsg struct {
	id string
}

type walletConnectedMsg struct {
	owner solana.PublicKey
	err   error
}

type walletDisconnectedMsg struct{}

type operationDoneMsg struct {
	action models.Action
	result models.OperationResult
}

type accountsLoadedMsg struct {
	snapshot models.AccountsSnapshot
	err      error
}

type operationsLoadedMsg struct {
	operations []models.Operation
	err        error
}

type copiedMsg struct {
	what string
	err  error
}

type clearStatusMsg struct{}
