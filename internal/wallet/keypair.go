package wallet

import (
	"context"
	"fmt"
	"sync"

	"github.com/gagliardetto/solana-go"

	"github.com/MKhiriev/go-sol-vault/internal/logger"
)

// KeypairWallet signs with a key loaded from a Solana CLI keypair file
// (a JSON array of 64 bytes).
type KeypairWallet struct {
	path string

	mu  sync.RWMutex
	key *solana.PrivateKey

	logger *logger.Logger
}

// NewKeypairWallet returns a disconnected wallet backed by the keypair file
// at path.
func NewKeypairWallet(path string, logger *logger.Logger) *KeypairWallet {
	return &KeypairWallet{path: path, logger: logger}
}

// NewConnectedWallet returns a wallet already connected to key.
func NewConnectedWallet(key solana.PrivateKey, logger *logger.Logger) *KeypairWallet {
	return &KeypairWallet{key: &key, logger: logger}
}

func (w *KeypairWallet) Connect(ctx context.Context) (solana.PublicKey, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.key != nil {
		return w.key.PublicKey(), nil
	}
	if w.path == "" {
		return solana.PublicKey{}, ErrNoKeypairPath
	}

	key, err := solana.PrivateKeyFromSolanaKeygenFile(w.path)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("load keypair %s: %w", w.path, err)
	}
	w.key = &key

	pub := key.PublicKey()
	w.logger.Info().Str("public_key", pub.String()).Msg("wallet connected")
	return pub, nil
}

func (w *KeypairWallet) Disconnect() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.key != nil {
		w.logger.Info().Str("public_key", w.key.PublicKey().String()).Msg("wallet disconnected")
	}
	w.key = nil
}

func (w *KeypairWallet) PublicKey() (solana.PublicKey, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.key == nil {
		return solana.PublicKey{}, false
	}
	return w.key.PublicKey(), true
}

func (w *KeypairWallet) SignTransaction(ctx context.Context, tx *solana.Transaction) error {
	w.mu.RLock()
	key := w.key
	w.mu.RUnlock()

	if key == nil {
		return ErrNotConnected
	}

	pub := key.PublicKey()
	if !tx.IsSigner(pub) {
		return ErrSignerMismatch
	}

	_, err := tx.Sign(func(signer solana.PublicKey) *solana.PrivateKey {
		if signer.Equals(pub) {
			return key
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("sign transaction: %w", err)
	}
	return nil
}
