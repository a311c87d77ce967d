package badgerdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/pribylovaa/go-local-blog/internal/models"
	"github.com/pribylovaa/go-local-blog/internal/storage"
)

// LoadAccounts возвращает весь набор учётных записей.
// Отсутствие ключа означает, что регистраций ещё не было, — пустой срез.
func (s *Storage) LoadAccounts(ctx context.Context) ([]models.Account, error) {
	const op = "storage.badgerdb.LoadAccounts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var accounts []models.Account
	if err := s.read(keyAccounts, &accounts); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []models.Account{}, nil
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return accounts, nil
}

// SaveAccounts записывает весь набор учётных записей целиком.
func (s *Storage) SaveAccounts(ctx context.Context, accounts []models.Account) error {
	const op = "storage.badgerdb.SaveAccounts"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.write(keyAccounts, accounts); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
