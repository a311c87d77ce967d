// service содержит бизнес-логику блога: регистрацию/аутентификацию
// учётных записей, постраничную выдачу статей и комментарии.
//
// Основные аспекты:
//   - Все операции синхронны и выполняются до конца в рамках вызова;
//     фоновых писателей и отложенной персистентности нет — это осознанное
//     ограничение модели исполнения системы.
//   - Набор учётных записей и текущая сессия загружаются из хранилища один
//     раз при создании Service; мутирующие операции записывают обновлённый
//     набор/сессию целиком.
//   - Все ожидаемые отказы — ошибки валидации; они возвращаются как
//     различимые sentinel-ошибки, на которые вызывающая сторона ветвится.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pribylovaa/go-local-blog/internal/config"
	"github.com/pribylovaa/go-local-blog/internal/models"
	"github.com/pribylovaa/go-local-blog/internal/storage"
)

var (
	// ErrIncompleteFields — заполнены не все обязательные поля формы.
	ErrIncompleteFields = errors.New("incomplete fields")

	// ErrAccountLength — длина логина вне границ 6–20 символов.
	ErrAccountLength = errors.New("account must be 6-20 characters long")

	// ErrAccountCharset — логин содержит символы вне [A-Za-z0-9_].
	ErrAccountCharset = errors.New("account may only contain letters, digits and underscores")

	// ErrAccountTaken — логин уже занят другой учётной записью.
	ErrAccountTaken = errors.New("account already taken")

	// ErrInvalidEmail — e-mail имеет некорректный формат.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrEmailTaken — e-mail уже занят другой учётной записью.
	ErrEmailTaken = errors.New("email already taken")

	// ErrShortPassword — пароль короче минимальной длины.
	ErrShortPassword = errors.New("password must be at least 6 characters long")

	// ErrPasswordMismatch — пароль и подтверждение не совпадают.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrMissingCredentials — не указан логин или пароль при входе.
	ErrMissingCredentials = errors.New("missing credentials")

	// ErrAccountNotFound — учётная запись с таким логином не существует.
	// Намеренно различима с ErrWrongPassword: поведение исходной системы
	// сохраняется, ошибки входа не схлопываются в одну.
	ErrAccountNotFound = errors.New("account not found")

	// ErrWrongPassword — пароль не подходит к учётной записи.
	ErrWrongPassword = errors.New("wrong password")

	// ErrArticleNotFound — статья с таким идентификатором не существует.
	ErrArticleNotFound = errors.New("article not found")

	// ErrAlreadyImported — файл импорта содержит повторяющиеся идентификаторы.
	ErrAlreadyImported = errors.New("duplicate article id")
)

// Service — бизнес-логика блога поверх storage.Storage.
//
// Экземпляр держит in-memory копию набора учётных записей и текущей сессии,
// снятую при создании; IsLoggedIn и проверки уникальности отвечают по этой
// копии, не перечитывая хранилище.
type Service struct {
	storage  storage.Storage
	cfg      config.Config
	accounts []models.Account
	session  *models.Session
	lastID   int64
}

// New создаёт Service, загружая набор учётных записей и текущую сессию
// (если она есть) из хранилища.
func New(ctx context.Context, st storage.Storage, cfg config.Config) (*Service, error) {
	const op = "service.New"

	accounts, err := st.LoadAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	session, err := st.LoadSession(ctx)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var lastID int64
	for _, acc := range accounts {
		if acc.ID > lastID {
			lastID = acc.ID
		}
	}

	return &Service{
		storage:  st,
		cfg:      cfg,
		accounts: accounts,
		session:  session,
		lastID:   lastID,
	}, nil
}
