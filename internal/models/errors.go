package models

import "errors"

var (
	// ErrNotFound - запись не найдена или принадлежит другому пользователю
	ErrNotFound = errors.New("not found")
	// ErrDuplicate - нарушено ограничение уникальности
	ErrDuplicate = errors.New("already exists")
)
