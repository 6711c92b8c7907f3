package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Claims is the payload carried by an access token. Field order is the
// canonical serialization order; the signature covers these exact bytes.
type Claims struct {
	// Subject is the email the token asserts.
	Subject string `json:"sub"`

	// ExpiresAt is the expiry as Unix seconds. The token is invalid once
	// this time has passed.
	ExpiresAt int64 `json:"exp"`

	// Nonce makes two tokens issued for the same subject in the same
	// second differ.
	Nonce string `json:"nonce"`
}

// Codec issues and verifies self-contained bearer tokens. A token is the
// base64url-encoded claims JSON and an HMAC-SHA256 signature over that
// encoded segment, joined by a dot, with base64 padding stripped. There is
// no header segment and exactly one algorithm.
type Codec struct {
	secret []byte
	ttl    time.Duration

	// now is replaceable in tests.
	now func() time.Time
}

// NewCodec constructs a Codec signing with secret and issuing tokens that
// expire after ttl.
func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue creates a signed token for the subject.
func (c *Codec) Issue(subject string) (string, error) {
	claims := Claims{
		Subject:   subject,
		ExpiresAt: c.now().Add(c.ttl).Unix(),
		Nonce:     uuid.NewString(),
	}
	payload, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}
	payloadSegment := base64.RawURLEncoding.EncodeToString(payload)
	return payloadSegment + "." + c.sign(payloadSegment), nil
}

// Decode verifies the token and returns its claims. The signature is
// checked before the payload is parsed, and expiry is only trusted on a
// verified payload.
func (c *Codec) Decode(token string) (Claims, error) {
	payloadSegment, signatureSegment, found := strings.Cut(token, ".")
	if !found {
		return Claims{}, ErrTokenMalformed
	}

	expected := c.sign(payloadSegment)
	if !hmac.Equal([]byte(signatureSegment), []byte(expected)) {
		return Claims{}, ErrTokenInvalidSig
	}

	payload, err := base64.RawURLEncoding.DecodeString(payloadSegment)
	if err != nil {
		return Claims{}, ErrTokenMalformed
	}
	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return Claims{}, ErrTokenMalformed
	}

	if c.now().Unix() >= claims.ExpiresAt {
		return Claims{}, ErrTokenExpired
	}
	return claims, nil
}

func (c *Codec) sign(payloadSegment string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(payloadSegment))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
