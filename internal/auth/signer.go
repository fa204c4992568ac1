package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// Signer produces and verifies tamper-evident cookie values. The secret
// is injected at startup; every instance sharing it verifies the same
// tokens, so no server-side session state is needed.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Sign returns "<value>|<hexdigest>" where the digest is an HMAC-SHA256
// over the value.
func (s *Signer) Sign(value string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(value))
	return value + "|" + hex.EncodeToString(mac.Sum(nil))
}

// Verify extracts the value from a signed token. It returns false if the
// token was not produced by Sign with the same secret.
func (s *Signer) Verify(token string) (string, bool) {
	value, _, ok := strings.Cut(token, "|")
	if !ok {
		return "", false
	}
	if subtle.ConstantTimeCompare([]byte(s.Sign(value)), []byte(token)) != 1 {
		return "", false
	}
	return value, true
}
