package wallet

import "errors"

var (
	ErrNotConnected   = errors.New("wallet not connected")
	ErrNoKeypairPath  = errors.New("keypair path is not configured")
	ErrSignerMismatch = errors.New("transaction does not require the wallet signature")
)
