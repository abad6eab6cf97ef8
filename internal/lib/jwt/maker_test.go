package jwt

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMaker(t *testing.T) *MakerImpl {
	t.Helper()
	key, err := NewKey()
	require.NoError(t, err)
	return NewMaker(key, "", 0)
}

func TestMaker_IssueAndSubject(t *testing.T) {
	maker := newTestMaker(t)

	tests := []struct {
		name    string
		subject string
	}{
		{name: "plain email", subject: "a@x.com"},
		{name: "email with plus", subject: "user+notes@domain.com"},
		{name: "empty subject", subject: ""},
		{name: "unicode subject", subject: "пользователь@пример.рф"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := maker.Issue(tt.subject)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			assert.True(t, maker.Validate(token))

			subject, err := maker.Subject(token)
			require.NoError(t, err)
			assert.Equal(t, tt.subject, subject)
		})
	}
}

func TestMaker_ClaimsShape(t *testing.T) {
	maker := newTestMaker(t)

	token, err := maker.Issue("a@x.com")
	require.NoError(t, err)

	claims, err := maker.parse(token)
	require.NoError(t, err)
	assert.Equal(t, DefaultIssuer, claims.Issuer)
	assert.Equal(t, "a@x.com", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestMaker_Validate_InvalidTokens(t *testing.T) {
	maker := newTestMaker(t)

	valid, err := maker.Issue("a@x.com")
	require.NoError(t, err)

	otherKey, err := NewKey()
	require.NoError(t, err)
	foreign, err := NewMaker(otherKey, "", 0).Issue("a@x.com")
	require.NoError(t, err)

	otherIssuer, err := NewMaker(maker.key, "someone-else", 0).Issue("a@x.com")
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:    DefaultIssuer,
		Subject:   "a@x.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:  DefaultIssuer,
		Subject: "a@x.com",
	}).SignedString(maker.key)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "malformed token", token: "invalid.token.here"},
		{name: "garbage", token: "not a token at all"},
		{name: "tampered signature", token: tamperSignature(valid)},
		{name: "appended bytes", token: valid + "tampered"},
		{name: "signed with another key", token: foreign},
		{name: "wrong issuer", token: otherIssuer},
		{name: "alg none", token: none},
		{name: "no expiry", token: noExpiry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, maker.Validate(tt.token))
			})
			_, err := maker.Subject(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestMaker_Expiry(t *testing.T) {
	maker := newTestMaker(t)
	issuedAt := time.Now()
	maker.now = func() time.Time { return issuedAt }

	token, err := maker.Issue("a@x.com")
	require.NoError(t, err)

	maker.now = func() time.Time { return issuedAt.Add(24*time.Hour - time.Minute) }
	assert.True(t, maker.Validate(token))

	maker.now = func() time.Time { return issuedAt.Add(24*time.Hour + time.Second) }
	assert.False(t, maker.Validate(token))
}

func TestMaker_KeyIsProcessScoped(t *testing.T) {
	first := newTestMaker(t)
	token, err := first.Issue("a@x.com")
	require.NoError(t, err)

	restarted := newTestMaker(t)
	assert.False(t, restarted.Validate(token))
	assert.True(t, first.Validate(token))
}

func TestNewKey(t *testing.T) {
	k1, err := NewKey()
	require.NoError(t, err)
	k2, err := NewKey()
	require.NoError(t, err)

	assert.Len(t, k1, keySize)
	assert.NotEqual(t, k1, k2)
}

// tamperSignature меняет один символ в середине подписи.
func tamperSignature(token string) string {
	parts := strings.Split(token, ".")
	sig := []byte(parts[2])
	i := len(sig) / 2
	if sig[i] == 'A' {
		sig[i] = 'B'
	} else {
		sig[i] = 'A'
	}
	parts[2] = string(sig)
	return strings.Join(parts, ".")
}
