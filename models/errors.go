package models

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAmount is returned for zero, negative, malformed or
	// over-precise SOL amounts.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidBankName is returned when a bank account name is empty or
	// longer than MaxBankNameLength bytes.
	ErrInvalidBankName = errors.New("invalid bank account name")
)

// ProgramError is an error raised by an on-chain program while executing an
// instruction, identified by its custom error code.
type ProgramError struct {
	// Code is the program's custom error code.
	Code uint32
	// Instruction is the index of the failing instruction, or -1 when the
	// RPC node did not report it.
	Instruction int
	// Err is the transport-level error the code was extracted from.
	Err error
}

// Error returns the node's original message when available so that the
// text shown to users is the one the RPC node produced.
func (e *ProgramError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("custom program error: 0x%x", e.Code)
}

func (e *ProgramError) Unwrap() error {
	return e.Err
}
