package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sol-vault/internal/adapter"
	"github.com/MKhiriev/go-sol-vault/internal/mock"
	"github.com/MKhiriev/go-sol-vault/internal/program"
	"github.com/MKhiriev/go-sol-vault/models"
)

const testLastValidBlockHeight = 100

func testBlockhash() *rpc.LatestBlockhashResult {
	return &rpc.LatestBlockhashResult{Blockhash: solana.Hash{1, 2, 3}, LastValidBlockHeight: testLastValidBlockHeight}
}

func status(level rpc.ConfirmationStatusType) []*rpc.SignatureStatusesResult {
	return []*rpc.SignatureStatusesResult{{Slot: 1, ConfirmationStatus: level}}
}

// instructionError is a decoded {"InstructionError":[index,{"Custom":code}]}.
func instructionError(index int, code uint32) map[string]any {
	return map[string]any{
		"InstructionError": []any{float64(index), map[string]any{"Custom": float64(code)}},
	}
}

// simulationFailure is the error a node returns when preflight fails with a
// custom program error.
func simulationFailure(code uint32) *adapter.RPCError {
	return &adapter.RPCError{
		Method: "sendTransaction",
		Err: &jsonrpc.RPCError{
			Code:    -32002,
			Message: fmt.Sprintf("Transaction simulation failed: Error processing Instruction 0: custom program error: 0x%x", code),
			Data: map[string]any{
				"err":  instructionError(0, code),
				"logs": []any{"Program log: simulation failed"},
			},
		},
	}
}

func accountWithData(lamports uint64, data []byte) *rpc.Account {
	return &rpc.Account{Lamports: lamports, Data: rpc.DataBytesOrJSONFromBytes(data)}
}

// expectSubmit expects one blockhash fetch and one send, and checks the
// submitted transaction is signed and carries the named instruction.
func expectSubmit(t *testing.T, rpcMock *mock.MockRPCAdapter, instruction string, sendErr error) *gomock.Call {
	t.Helper()

	rpcMock.EXPECT().GetLatestBlockhash(gomock.Any(), rpc.CommitmentConfirmed).Return(testBlockhash(), nil)
	return rpcMock.EXPECT().SendTransaction(gomock.Any(), gomock.Any(), rpc.CommitmentConfirmed).
		DoAndReturn(func(_ context.Context, tx *solana.Transaction, _ rpc.CommitmentType) (solana.Signature, error) {
			require.NoError(t, tx.VerifySignatures())
			require.Len(t, tx.Message.Instructions, 1)
			disc := program.InstructionDiscriminator(instruction)
			require.Equal(t, disc[:], []byte(tx.Message.Instructions[0].Data[:8]), "unexpected instruction submitted")
			if sendErr != nil {
				return solana.Signature{}, sendErr
			}
			return tx.Signatures[0], nil
		})
}

// drain returns every queued notification without blocking.
func drain(n Notifier) []models.Notification {
	var out []models.Notification
	for {
		select {
		case notification := <-n.Notifications():
			out = append(out, notification)
		default:
			return out
		}
	}
}
