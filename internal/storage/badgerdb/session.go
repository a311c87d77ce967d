package badgerdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/pribylovaa/go-local-blog/internal/models"
	"github.com/pribylovaa/go-local-blog/internal/storage"
)

// LoadSession возвращает текущую сессию или storage.ErrNotFound,
// если никто не залогинен.
func (s *Storage) LoadSession(ctx context.Context) (*models.Session, error) {
	const op = "storage.badgerdb.LoadSession"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var session models.Session
	if err := s.read(keySession, &session); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &session, nil
}

// SaveSession сохраняет текущую сессию, перезаписывая предыдущую.
func (s *Storage) SaveSession(ctx context.Context, session *models.Session) error {
	const op = "storage.badgerdb.SaveSession"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.write(keySession, session); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeleteSession удаляет текущую сессию; отсутствие сессии не является ошибкой.
func (s *Storage) DeleteSession(ctx context.Context) error {
	const op = "storage.badgerdb.DeleteSession"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.delete(keySession); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
