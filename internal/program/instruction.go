package program

import (
	"bytes"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// Accounts maps IDL account names to the keys passed to one instruction.
type Accounts map[string]solana.PublicKey

// fixed accounts resolved without the caller naming them.
var wellKnownAccounts = Accounts{
	"systemProgram": solana.SystemProgramID,
}

// BuildInstruction lays out an instruction the way the IDL describes it:
// account metas in IDL order with IDL flags, data as discriminator followed
// by the borsh-encoded args.
func (i *IDL) BuildInstruction(programID solana.PublicKey, name string, accounts Accounts, args ...any) (*solana.GenericInstruction, error) {
	def, err := i.Instruction(name)
	if err != nil {
		return nil, err
	}

	metas := make(solana.AccountMetaSlice, 0, len(def.Accounts))
	for _, acc := range def.Accounts {
		key, ok := accounts[acc.Name]
		if !ok {
			key, ok = wellKnownAccounts[acc.Name]
		}
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s", ErrMissingAccount, name, acc.Name)
		}
		metas = append(metas, solana.NewAccountMeta(key, acc.IsMut, acc.IsSigner))
	}

	data, err := encodeInstructionData(def, args)
	if err != nil {
		return nil, err
	}

	return solana.NewInstruction(programID, metas, data), nil
}

func encodeInstructionData(def *IDLInstruction, args []any) ([]byte, error) {
	if len(args) != len(def.Args) {
		return nil, fmt.Errorf("%w: %s takes %d args, got %d", ErrArgumentMismatch, def.Name, len(def.Args), len(args))
	}

	buf := new(bytes.Buffer)
	enc := bin.NewBorshEncoder(buf)

	disc := InstructionDiscriminator(def.Name)
	if err := enc.WriteBytes(disc[:], false); err != nil {
		return nil, err
	}

	for idx, field := range def.Args {
		if err := encodeArg(enc, field, args[idx]); err != nil {
			return nil, fmt.Errorf("%s.%s: %w", def.Name, field.Name, err)
		}
	}

	return buf.Bytes(), nil
}

func encodeArg(enc *bin.Encoder, field IDLField, v any) error {
	switch field.Type {
	case "u64":
		n, ok := v.(uint64)
		if !ok {
			return fmt.Errorf("%w: want u64, got %T", ErrArgumentMismatch, v)
		}
		return enc.WriteUint64(n, bin.LE)
	case "u8":
		n, ok := v.(uint8)
		if !ok {
			return fmt.Errorf("%w: want u8, got %T", ErrArgumentMismatch, v)
		}
		return enc.WriteUint8(n)
	case "string":
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("%w: want string, got %T", ErrArgumentMismatch, v)
		}
		return enc.WriteString(s)
	case "publicKey":
		pk, ok := v.(solana.PublicKey)
		if !ok {
			return fmt.Errorf("%w: want publicKey, got %T", ErrArgumentMismatch, v)
		}
		return enc.WriteBytes(pk[:], false)
	default:
		return fmt.Errorf("%w: unsupported type %q", ErrArgumentMismatch, field.Type)
	}
}
