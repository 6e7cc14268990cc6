package models

import "errors"

// Ошибки доменного уровня. Обработчики переводят их в HTTP статусы
// через errors.Is, текст уходит клиенту как есть.
var (
	ErrUserNotFound    = errors.New("пользователь не найден")
	ErrEmailTaken      = errors.New("пользователь с таким email уже существует")
	ErrBadCredentials  = errors.New("неверный email или пароль")
	ErrPostNotFound    = errors.New("пост не найден")
	ErrCommentNotFound = errors.New("комментарий не найден")
	ErrProfileNotFound = errors.New("профиль не найден")
	ErrAlreadyLiked    = errors.New("пост уже лайкнут")
	ErrNotLiked        = errors.New("пост еще не лайкнут")
	ErrUnauthorized    = errors.New("нет прав на это действие")
)
