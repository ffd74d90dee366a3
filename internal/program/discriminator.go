package program

import (
	"crypto/sha256"
	"strings"
	"unicode"
)

// Discriminator is the 8-byte prefix Anchor puts in front of instruction
// data and account data.
type Discriminator [8]byte

var (
	VaultStateDiscriminator = AccountDiscriminator("VaultState")
	BankDiscriminator       = AccountDiscriminator("Bank")
)

// InstructionDiscriminator returns sha256("global:<snake_name>")[:8].
func InstructionDiscriminator(name string) Discriminator {
	return sighash("global", toSnakeCase(name))
}

// AccountDiscriminator returns sha256("account:<Name>")[:8].
func AccountDiscriminator(name string) Discriminator {
	return sighash("account", name)
}

func sighash(namespace, name string) Discriminator {
	sum := sha256.Sum256([]byte(namespace + ":" + name))

	var d Discriminator
	copy(d[:], sum[:8])
	return d
}

func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
