// Package jwt выпускает и проверяет подписанные HS256 bearer-токены.
//
// Токен содержит issuer, subject (email пользователя) и срок действия.
// Ключ подписи живёт в памяти процесса: при пустом секрете он генерируется
// при старте, и все выданные ранее токены после перезапуска недействительны.
package jwt

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// DefaultIssuer - значение claim iss по умолчанию.
	DefaultIssuer = "post-it.com"
	// DefaultTTL - время жизни токена по умолчанию.
	DefaultTTL = 24 * time.Hour

	keySize = 32
)

// Claims - набор claim полей токена.
type Claims struct {
	jwt.RegisteredClaims
}

// Maker описывает выпуск и проверку токенов.
type Maker interface {
	// Issue выпускает токен для subject.
	Issue(subject string) (string, error)
	// Validate возвращает true только для корректно подписанного и не истёкшего токена.
	Validate(token string) bool
	// Subject возвращает subject токена, уже прошедшего Validate.
	Subject(token string) (string, error)
}

// MakerImpl реализует Maker на симметричном ключе.
type MakerImpl struct {
	key    []byte           // Ключ подписи, только для чтения после создания
	issuer string           // Значение claim iss
	ttl    time.Duration    // Время жизни токена
	now    func() time.Time // Источник времени
}

// NewMaker создаёт MakerImpl. Пустой issuer и неположительный ttl
// заменяются значениями по умолчанию.
func NewMaker(key []byte, issuer string, ttl time.Duration) *MakerImpl {
	if issuer == "" {
		issuer = DefaultIssuer
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MakerImpl{
		key:    key,
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// NewKey генерирует случайный 256-битный ключ подписи.
func NewKey() ([]byte, error) {
	const op = "jwt.NewKey"
	key := make([]byte, keySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return key, nil
}
