package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/gagliardetto/solana-go/rpc/jsonrpc"

	"github.com/MKhiriev/go-sol-vault/internal/program"
	"github.com/MKhiriev/go-sol-vault/models"
)

var customProgramErrorRe = regexp.MustCompile(`custom program error: (0x[0-9a-fA-F]+)`)

// mapAdapterError turns a program failure reported by the node into a
// *models.ProgramError wrapping the original error. Other errors are
// returned unchanged.
//
// The code is read from the structured data of a JSON-RPC error first; the
// message text is only scanned for errors that carry no such data.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var rpcErr *jsonrpc.RPCError
	if errors.As(err, &rpcErr) {
		if data, ok := rpcErr.Data.(map[string]any); ok {
			if code, ix, ok := parseInstructionError(data["err"]); ok {
				return &models.ProgramError{Code: code, Instruction: ix, Err: err}
			}
			return err
		}
	}

	if m := customProgramErrorRe.FindStringSubmatch(err.Error()); m != nil {
		if code, parseErr := strconv.ParseUint(m[1][2:], 16, 32); parseErr == nil {
			return &models.ProgramError{Code: uint32(code), Instruction: -1, Err: err}
		}
	}

	return err
}

// statusError converts the err member of a failed signature status.
func statusError(txErr any) error {
	if code, ix, ok := parseInstructionError(txErr); ok {
		return &models.ProgramError{
			Code:        code,
			Instruction: ix,
			Err:         fmt.Errorf("%w: custom program error: 0x%x", ErrTransactionFailed, code),
		}
	}
	return fmt.Errorf("%w: %v", ErrTransactionFailed, txErr)
}

// parseInstructionError reads a decoded
// {"InstructionError":[<index>,{"Custom":<code>}]}.
func parseInstructionError(txErr any) (code uint32, instruction int, ok bool) {
	obj, isObj := txErr.(map[string]any)
	if !isObj {
		return 0, 0, false
	}
	pair, isPair := obj["InstructionError"].([]any)
	if !isPair || len(pair) != 2 {
		return 0, 0, false
	}
	index, ok := toUint32(pair[0])
	if !ok {
		return 0, 0, false
	}
	detail, isObj := pair[1].(map[string]any)
	if !isObj {
		return 0, 0, false
	}
	code, ok = toUint32(detail["Custom"])
	if !ok {
		return 0, 0, false
	}

	return code, int(index), true
}

func toUint32(v any) (uint32, bool) {
	switch n := v.(type) {
	case float64:
		if n < 0 || n > math.MaxUint32 || n != math.Trunc(n) {
			return 0, false
		}
		return uint32(n), true
	case json.Number:
		u, err := strconv.ParseUint(n.String(), 10, 32)
		return uint32(u), err == nil
	default:
		return 0, false
	}
}

// IsNotInitialized reports whether err is a program error meaning the target
// account was never initialized.
func IsNotInitialized(err error) bool {
	var programErr *models.ProgramError
	return errors.As(err, &programErr) && program.IsNotInitializedCode(programErr.Code)
}
