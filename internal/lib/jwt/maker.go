package jwt

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Issue создаёт токен {iss, sub, iat, exp = now + ttl}, подписанный HS256.
func (m *MakerImpl) Issue(subject string) (string, error) {
	const op = "jwt.Issue"
	now := m.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.key)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return signed, nil
}

// Validate проверяет подпись, алгоритм, issuer и срок действия.
// Любая ошибка разбора сворачивается в false.
func (m *MakerImpl) Validate(token string) bool {
	_, err := m.parse(token)
	return err == nil
}

// Subject возвращает claim sub. Вызывается после успешного Validate.
func (m *MakerImpl) Subject(token string) (string, error) {
	const op = "jwt.Subject"
	claims, err := m.parse(token)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return claims.Subject, nil
}

func (m *MakerImpl) parse(token string) (*Claims, error) {
	if token == "" {
		return nil, jwt.ErrTokenMalformed
	}
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(_ *jwt.Token) (any, error) {
		return m.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
