package program

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

//go:embed idl/*.json
var idlFS embed.FS

var (
	vaultIDL = mustLoadIDL("idl/vault.json")
	bankIDL  = mustLoadIDL("idl/bank.json")
)

// IDL is the subset of an Anchor IDL the client needs to lay out
// instructions and recognize accounts.
type IDL struct {
	Version      string           `json:"version"`
	Name         string           `json:"name"`
	Instructions []IDLInstruction `json:"instructions"`
	Accounts     []IDLTypeDef     `json:"accounts"`
	Metadata     struct {
		Address string `json:"address"`
	} `json:"metadata"`
}

type IDLInstruction struct {
	Name     string           `json:"name"`
	Accounts []IDLAccountItem `json:"accounts"`
	Args     []IDLField       `json:"args"`
}

type IDLAccountItem struct {
	Name     string `json:"name"`
	IsMut    bool   `json:"isMut"`
	IsSigner bool   `json:"isSigner"`
}

type IDLField struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type IDLTypeDef struct {
	Name string `json:"name"`
	Type struct {
		Kind   string     `json:"kind"`
		Fields []IDLField `json:"fields"`
	} `json:"type"`
}

// VaultIDL returns the embedded IDL of the vault program.
func VaultIDL() *IDL { return vaultIDL }

// BankIDL returns the embedded IDL of the bank program.
func BankIDL() *IDL { return bankIDL }

func loadIDL(name string) (*IDL, error) {
	raw, err := idlFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read idl %s: %w", name, err)
	}

	idl := new(IDL)
	if err = json.Unmarshal(raw, idl); err != nil {
		return nil, fmt.Errorf("decode idl %s: %w", name, err)
	}
	return idl, nil
}

func mustLoadIDL(name string) *IDL {
	idl, err := loadIDL(name)
	if err != nil {
		panic(err)
	}
	return idl
}

// Instruction looks up an instruction definition by name.
func (i *IDL) Instruction(name string) (*IDLInstruction, error) {
	for idx := range i.Instructions {
		if i.Instructions[idx].Name == name {
			return &i.Instructions[idx], nil
		}
	}
	return nil, fmt.Errorf("%w: %s.%s", ErrUnknownInstruction, i.Name, name)
}

// Account looks up an account type definition by name.
func (i *IDL) Account(name string) (*IDLTypeDef, bool) {
	for idx := range i.Accounts {
		if i.Accounts[idx].Name == name {
			return &i.Accounts[idx], true
		}
	}
	return nil, false
}

// Address returns the program address recorded in the IDL metadata.
func (i *IDL) Address() (solana.PublicKey, error) {
	return solana.PublicKeyFromBase58(i.Metadata.Address)
}
