package domain

import "errors"

var ErrTokenInvalid = errors.New("token is invalid or expired")

// Claims - проверенные утверждения из bearer-токена. Токен выдает внешний
// сервис аутентификации, мы только проверяем подпись и срок действия.
type Claims struct {
	UserID string
	Email  string
}
