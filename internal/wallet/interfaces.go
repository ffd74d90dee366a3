// Package wallet provides the signing capability used to authorize
// transactions.
//
// The client never generates or stores keys itself. A [Connector] is
// connected to an existing key source (a Solana CLI keypair file) and then
// exposes the public key and a signing function to the service layer.
package wallet

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/wallet_mock.go -package=mock

// Wallet exposes the public key of the connected account and signs
// transactions on its behalf.
type Wallet interface {
	// PublicKey returns the connected account; ok is false when no wallet
	// is connected.
	PublicKey() (key solana.PublicKey, ok bool)

	// SignTransaction adds the wallet's signature to tx.
	SignTransaction(ctx context.Context, tx *solana.Transaction) error
}

// Connector is a [Wallet] whose connection is controlled by the user.
type Connector interface {
	Wallet

	Connect(ctx context.Context) (solana.PublicKey, error)
	Disconnect()
}
