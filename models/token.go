package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token is a gateway access token. The embedded claims' Subject is the
// caller the token was issued to; SignedString is its compact form.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	SignedString string `json:"-"`
}

func (t *Token) String() string {
	return t.SignedString
}
