package service

import "errors"

var (
	ErrWalletNotConnected  = errors.New("wallet not connected")
	ErrProviderUnavailable = errors.New("provider not initialized")
	ErrBlockhashExpired    = errors.New("blockhash expired before the transaction was confirmed")
	ErrTransactionFailed   = errors.New("transaction failed")
	ErrBankNotFound        = errors.New("bank account not found")
)

// User-facing notification texts.
const (
	MsgConnectWallet       = "Please connect your wallet"
	MsgProviderUnavailable = "Provider not initialized"
	MsgVaultNotInitialized = "Vault not initialized."

	MsgInitializeSuccess = "Vault initialized successfully!"
	MsgInitializeFailure = "Failed to initialize vault"
	MsgDepositSuccess    = "Deposit successful!"
	MsgDepositFailure    = "Deposit failed"
	MsgWithdrawSuccess   = "Withdrawal successful!"
	MsgWithdrawFailure   = "Withdrawal failed"

	MsgBankCreateSuccess = "Bank account created successfully!"
	MsgBankCreateFailure = "Failed to create bank account"

	MsgWalletConnected    = "Wallet connected"
	MsgWalletConnectError = "Failed to connect wallet"
	MsgWalletDisconnected = "Wallet disconnected"
	MsgFetchFailure       = "Failed to fetch accounts"
)
