package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// HMACKey signs and verifies HS256 tokens with one shared secret. Access and
// refresh tokens each get their own key so that leaking one secret does not
// let anyone forge the other kind.
type HMACKey struct {
	secret []byte
	issuer string
	parser *jwt.Parser
}

var _ interface {
	Signer
	Verifier
} = (*HMACKey)(nil)

// NewHMACKey builds a key for secret. Tokens it signs are stamped with issuer
// and tokens it verifies must carry the same issuer and an expiry.
func NewHMACKey(secret, issuer string) (*HMACKey, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrSecretTooShort
	}

	return &HMACKey{
		secret: []byte(secret),
		issuer: issuer,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
			jwt.WithStrictDecoding(),
		),
	}, nil
}

// Issuer returns the issuer this key stamps and expects.
func (k *HMACKey) Issuer() string { return k.issuer }

// Sign returns the compact HS256 serialization of claims.
func (k *HMACKey) Sign(claims jwt.Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(k.secret)
}

// Verify parses token into claims, which must be a pointer. Any failure comes
// back wrapping one of the package sentinels.
func (k *HMACKey) Verify(token string, claims jwt.Claims) error {
	parsed, err := k.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return k.secret, nil
	})
	if err != nil {
		return classify(err)
	}
	if !parsed.Valid {
		return errors.Join(ErrInvalidClaim, errors.New("jwtx: token not valid"))
	}
	return nil
}
