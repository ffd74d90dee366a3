package program

import (
	"crypto/sha256"
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sol-vault/models"
)

// owner is base58(sha256("owner")), a fixed key shared by the vectors below.
var testOwner = solana.MustPublicKeyFromBase58("67vHA8qZGCJKw1UNGUJZME4MwEWDRGWzp7MGvsut43A8")

func TestTestOwnerFixture(t *testing.T) {
	sum := sha256.Sum256([]byte("owner"))
	assert.Equal(t, solana.PublicKeyFromBytes(sum[:]), testOwner)
}

func TestDiscriminators(t *testing.T) {
	tests := []struct {
		name string
		got  Discriminator
		want Discriminator
	}{
		{"initialize", InstructionDiscriminator("initialize"), Discriminator{175, 175, 109, 31, 13, 152, 155, 237}},
		{"deposit", InstructionDiscriminator("deposit"), Discriminator{242, 35, 198, 137, 82, 225, 242, 182}},
		{"withdraw", InstructionDiscriminator("withdraw"), Discriminator{183, 18, 70, 156, 148, 109, 161, 34}},
		{"create", InstructionDiscriminator("create"), Discriminator{24, 30, 200, 40, 5, 28, 7, 119}},
		{"VaultState", VaultStateDiscriminator, Discriminator{228, 196, 82, 165, 98, 210, 235, 152}},
		{"Bank", BankDiscriminator, Discriminator{142, 49, 166, 242, 50, 66, 97, 188}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestToSnakeCase(t *testing.T) {
	assert.Equal(t, "initialize", toSnakeCase("initialize"))
	assert.Equal(t, "create_bank_account", toSnakeCase("createBankAccount"))
}

func TestEmbeddedIDLs(t *testing.T) {
	vaultAddr, err := VaultIDL().Address()
	require.NoError(t, err)
	assert.Equal(t, DefaultVaultProgramID, vaultAddr)

	bankAddr, err := BankIDL().Address()
	require.NoError(t, err)
	assert.Equal(t, DefaultBankProgramID, bankAddr)

	for _, name := range []string{"initialize", "deposit", "withdraw"} {
		_, err := VaultIDL().Instruction(name)
		assert.NoError(t, err, name)
	}
	for _, name := range []string{"create", "deposit", "withdraw"} {
		_, err := BankIDL().Instruction(name)
		assert.NoError(t, err, name)
	}

	_, err = VaultIDL().Instruction("close")
	assert.ErrorIs(t, err, ErrUnknownInstruction)

	_, ok := VaultIDL().Account("VaultState")
	assert.True(t, ok)
	_, ok = BankIDL().Account("Bank")
	assert.True(t, ok)
}

func TestAddressDerivation(t *testing.T) {
	vault := NewVault(solana.PublicKey{})
	bank := NewBank(solana.PublicKey{})

	addrs, err := vault.Addresses(testOwner)
	require.NoError(t, err)
	assert.Equal(t, "7FHX75XQ5rkfGb8zYpGRS4sgN8MvAH6j7PKSW3C3zY4x", addrs.State.String())
	assert.Equal(t, uint8(254), addrs.StateBump)
	assert.Equal(t, "3TXmQzUhEKhspMK1fJX75WdfYYteUiQuUBmhqRQTmdvJ", addrs.Vault.String())
	assert.Equal(t, uint8(255), addrs.VaultBump)

	bankPDA, err := bank.Address(testOwner)
	require.NoError(t, err)
	assert.Equal(t, "BaG9cpzTLmPWWMSyvXcB7vmj8zVeuyVpBS95aDnAmc3J", bankPDA.Address.String())
	assert.Equal(t, uint8(255), bankPDA.Bump)

	again, err := vault.Addresses(testOwner)
	require.NoError(t, err)
	assert.Equal(t, addrs, again)

	other, err := vault.Addresses(solana.NewWallet().PublicKey())
	require.NoError(t, err)
	assert.NotEqual(t, addrs.State, other.State)
}

func TestAddressDerivation_AgreesWithCreateProgramAddress(t *testing.T) {
	pda, err := StateAddress(DefaultVaultProgramID, testOwner)
	require.NoError(t, err)

	addr, err := solana.CreateProgramAddress([][]byte{StateSeedPrefix, testOwner.Bytes(), {pda.Bump}}, DefaultVaultProgramID)
	require.NoError(t, err)
	assert.Equal(t, pda.Address, addr)
}

func TestVaultInstructions(t *testing.T) {
	vault := NewVault(DefaultVaultProgramID)
	addrs, err := vault.Addresses(testOwner)
	require.NoError(t, err)

	amount := models.MustParseSOL("0.1")

	tests := []struct {
		name     string
		build    func() (solana.Instruction, error)
		wantDisc Discriminator
		wantArg  bool
	}{
		{"initialize", func() (solana.Instruction, error) { return vault.Initialize(testOwner) }, InstructionDiscriminator("initialize"), false},
		{"deposit", func() (solana.Instruction, error) { return vault.Deposit(testOwner, amount) }, InstructionDiscriminator("deposit"), true},
		{"withdraw", func() (solana.Instruction, error) { return vault.Withdraw(testOwner, amount) }, InstructionDiscriminator("withdraw"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix, err := tt.build()
			require.NoError(t, err)

			assert.Equal(t, DefaultVaultProgramID, ix.ProgramID())

			accounts := ix.Accounts()
			require.Len(t, accounts, 4)
			assert.Equal(t, testOwner, accounts[0].PublicKey)
			assert.True(t, accounts[0].IsSigner)
			assert.True(t, accounts[0].IsWritable)
			assert.Equal(t, addrs.State, accounts[1].PublicKey)
			assert.True(t, accounts[1].IsWritable)
			assert.False(t, accounts[1].IsSigner)
			assert.Equal(t, addrs.Vault, accounts[2].PublicKey)
			assert.Equal(t, solana.SystemProgramID, accounts[3].PublicKey)
			assert.False(t, accounts[3].IsWritable)

			data, err := ix.Data()
			require.NoError(t, err)
			assert.Equal(t, tt.wantDisc[:], data[:8])
			if tt.wantArg {
				require.Len(t, data, 16)
				assert.Equal(t, uint64(100_000_000), binary.LittleEndian.Uint64(data[8:]))
			} else {
				assert.Len(t, data, 8)
			}
		})
	}
}

func TestBankInstructions(t *testing.T) {
	bank := NewBank(DefaultBankProgramID)
	pda, err := bank.Address(testOwner)
	require.NoError(t, err)

	ix, err := bank.Create(testOwner, "savings")
	require.NoError(t, err)
	accounts := ix.Accounts()
	require.Len(t, accounts, 3)
	assert.Equal(t, pda.Address, accounts[0].PublicKey)
	assert.Equal(t, testOwner, accounts[1].PublicKey)
	assert.True(t, accounts[1].IsSigner)
	assert.Equal(t, solana.SystemProgramID, accounts[2].PublicKey)

	data, err := ix.Data()
	require.NoError(t, err)
	disc := InstructionDiscriminator("create")
	assert.Equal(t, disc[:], data[:8])
	assert.Equal(t, uint32(7), binary.LittleEndian.Uint32(data[8:12]))
	assert.Equal(t, "savings", string(data[12:]))

	ix, err = bank.Withdraw(testOwner, 42)
	require.NoError(t, err)
	assert.Len(t, ix.Accounts(), 2)
	data, err = ix.Data()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), binary.LittleEndian.Uint64(data[8:]))
}

func TestBuildInstruction_Errors(t *testing.T) {
	_, err := VaultIDL().BuildInstruction(DefaultVaultProgramID, "deposit", Accounts{"signer": testOwner}, uint64(1))
	assert.ErrorIs(t, err, ErrMissingAccount)

	full := Accounts{"signer": testOwner, "state": testOwner, "vault": testOwner}
	_, err = VaultIDL().BuildInstruction(DefaultVaultProgramID, "deposit", full)
	assert.ErrorIs(t, err, ErrArgumentMismatch)

	_, err = VaultIDL().BuildInstruction(DefaultVaultProgramID, "deposit", full, "one")
	assert.ErrorIs(t, err, ErrArgumentMismatch)
}

func TestDecodeVaultState(t *testing.T) {
	state, err := DecodeVaultState(EncodeVaultState(models.VaultState{VaultBump: 255, StateBump: 254}))
	require.NoError(t, err)
	assert.Equal(t, models.VaultState{VaultBump: 255, StateBump: 254}, state)

	_, err = DecodeVaultState([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidAccountData)

	_, err = DecodeVaultState(append(BankDiscriminator[:], 1, 2))
	assert.ErrorIs(t, err, ErrDiscriminatorMismatch)

	_, err = DecodeVaultState(VaultStateDiscriminator[:])
	assert.ErrorIs(t, err, ErrInvalidAccountData)
}

func TestDecodeBank(t *testing.T) {
	addr := solana.NewWallet().PublicKey()
	want := models.BankAccount{
		Address: addr,
		Name:    "savings",
		Balance: 1_500_000_000,
		Owner:   testOwner,
	}

	data, err := EncodeBank(want)
	require.NoError(t, err)

	got, err := DecodeBank(addr, data)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = DecodeBank(addr, data[:len(data)-1])
	assert.ErrorIs(t, err, ErrInvalidAccountData)
}

func TestIsNotInitializedCode(t *testing.T) {
	assert.True(t, IsNotInitializedCode(0))
	assert.True(t, IsNotInitializedCode(3012))
	assert.False(t, IsNotInitializedCode(1))
	assert.False(t, IsNotInitializedCode(6000))
}
