package wallet

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sol-vault/internal/logger"
)

func writeKeypairFile(t *testing.T, key solana.PrivateKey) string {
	t.Helper()

	ints := make([]int, len(key))
	for i, b := range key {
		ints[i] = int(b)
	}
	raw, err := json.Marshal(ints)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "id.json")
	require.NoError(t, os.WriteFile(path, raw, 0o600))
	return path
}

func testTransaction(t *testing.T, payer solana.PublicKey) *solana.Transaction {
	t.Helper()
	tx, err := solana.NewTransaction(
		[]solana.Instruction{solana.NewInstruction(solana.SystemProgramID, solana.AccountMetaSlice{solana.Meta(payer).WRITE().SIGNER()}, []byte{0})},
		solana.Hash{7},
		solana.TransactionPayer(payer),
	)
	require.NoError(t, err)
	return tx
}

func TestKeypairWallet_ConnectAndSign(t *testing.T) {
	key := solana.NewWallet().PrivateKey
	w := NewKeypairWallet(writeKeypairFile(t, key), logger.Nop())

	_, ok := w.PublicKey()
	assert.False(t, ok)

	pub, err := w.Connect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, key.PublicKey(), pub)

	got, ok := w.PublicKey()
	require.True(t, ok)
	assert.Equal(t, pub, got)

	tx := testTransaction(t, pub)
	require.NoError(t, w.SignTransaction(context.Background(), tx))
	require.Len(t, tx.Signatures, 1)
	assert.NoError(t, tx.VerifySignatures())
}

func TestKeypairWallet_Disconnect(t *testing.T) {
	key := solana.NewWallet().PrivateKey
	w := NewConnectedWallet(key, logger.Nop())

	_, ok := w.PublicKey()
	require.True(t, ok)

	w.Disconnect()
	_, ok = w.PublicKey()
	assert.False(t, ok)

	err := w.SignTransaction(context.Background(), testTransaction(t, key.PublicKey()))
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestKeypairWallet_ConnectErrors(t *testing.T) {
	_, err := NewKeypairWallet("", logger.Nop()).Connect(context.Background())
	assert.ErrorIs(t, err, ErrNoKeypairPath)

	_, err = NewKeypairWallet(filepath.Join(t.TempDir(), "missing.json"), logger.Nop()).Connect(context.Background())
	assert.Error(t, err)
}

func TestKeypairWallet_SignerMismatch(t *testing.T) {
	w := NewConnectedWallet(solana.NewWallet().PrivateKey, logger.Nop())

	err := w.SignTransaction(context.Background(), testTransaction(t, solana.NewWallet().PublicKey()))
	assert.ErrorIs(t, err, ErrSignerMismatch)
}
