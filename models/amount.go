// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// LamportsPerSOL is the number of lamports in one SOL.
const LamportsPerSOL uint64 = 1_000_000_000

// solDecimals is the number of fractional digits a SOL amount may carry.
const solDecimals = 9

var (
	lamportsPerSOLDecimal = decimal.NewFromUint64(LamportsPerSOL)
	maxLamportsDecimal    = decimal.NewFromUint64(math.MaxUint64)
)

// Lamports is an amount of SOL expressed in its smallest unit.
//
// Amounts travel through the client as integers only. Decimal SOL strings
// typed by a user are converted with [ParseSOL], which never rounds.
type Lamports uint64

// ParseSOL converts a decimal SOL string (e.g. "0.1", "2", "1.000000001")
// into lamports.
//
// The conversion is exact: inputs with more than nine fractional digits,
// zero, negative or overflowing values are rejected with [ErrInvalidAmount].
func ParseSOL(s string) (Lamports, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty amount", ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	if !d.IsPositive() {
		return 0, fmt.Errorf("%w: amount must be positive", ErrInvalidAmount)
	}
	if d.Exponent() < -solDecimals && !d.Equal(d.Truncate(solDecimals)) {
		return 0, fmt.Errorf("%w: more than %d decimal places", ErrInvalidAmount, solDecimals)
	}

	lamports := d.Mul(lamportsPerSOLDecimal)
	if lamports.GreaterThan(maxLamportsDecimal) {
		return 0, fmt.Errorf("%w: amount is too large", ErrInvalidAmount)
	}

	v, err := strconv.ParseUint(lamports.Truncate(0).String(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}

	return Lamports(v), nil
}

// MustParseSOL is like [ParseSOL] but panics on error. Intended for
// constants and tests.
func MustParseSOL(s string) Lamports {
	l, err := ParseSOL(s)
	if err != nil {
		panic(err)
	}
	return l
}

// SOL renders the amount as a decimal SOL string without trailing zeros.
// ParseSOL(l.SOL()) returns l for every non-zero l.
func (l Lamports) SOL() string {
	return decimal.NewFromUint64(uint64(l)).Shift(-solDecimals).String()
}

// Uint64 returns the raw lamport count.
func (l Lamports) Uint64() uint64 {
	return uint64(l)
}

// String implements [fmt.Stringer].
func (l Lamports) String() string {
	return l.SOL() + " SOL"
}

// MarshalJSON encodes the amount as a decimal SOL string so that
// JSON consumers never lose precision on large values.
func (l Lamports) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.SOL())
}

// UnmarshalJSON accepts a decimal SOL string. Zero is accepted here so
// that stored balances of empty accounts decode.
func (l *Lamports) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	if d.IsZero() {
		*l = 0
		return nil
	}

	v, err := ParseSOL(s)
	if err != nil {
		return err
	}
	*l = v
	return nil
}
