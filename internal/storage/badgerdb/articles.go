package badgerdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/pribylovaa/go-local-blog/internal/models"
	"github.com/pribylovaa/go-local-blog/internal/storage"
)

// LoadArticles возвращает все статьи в порядке импорта.
// Если контент ещё не импортирован — пустой срез.
func (s *Storage) LoadArticles(ctx context.Context) ([]models.Article, error) {
	const op = "storage.badgerdb.LoadArticles"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var articles []models.Article
	if err := s.read(keyArticles, &articles); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []models.Article{}, nil
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return articles, nil
}

// SaveArticles записывает весь набор статей целиком.
func (s *Storage) SaveArticles(ctx context.Context, articles []models.Article) error {
	const op = "storage.badgerdb.SaveArticles"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.write(keyArticles, articles); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
