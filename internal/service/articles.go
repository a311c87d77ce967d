package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pribylovaa/go-local-blog/internal/models"
	"github.com/pribylovaa/go-local-blog/internal/pkg/log"
)

// ImportArticles заменяет набор статей целиком содержимым файла импорта.
// Статьи — внешний источник контента: сервис не генерирует их сам и не
// меняет после записи, дальше ими управляет только пагинация.
func (s *Service) ImportArticles(ctx context.Context, articles []models.Article) error {
	const op = "service.articles.ImportArticles"

	seen := make(map[string]struct{}, len(articles))
	for _, a := range articles {
		if a.ID == "" {
			return fmt.Errorf("%s: article without id: %w", op, ErrIncompleteFields)
		}
		if _, ok := seen[a.ID]; ok {
			return fmt.Errorf("%s: duplicate article id %q: %w", op, a.ID, ErrAlreadyImported)
		}
		seen[a.ID] = struct{}{}
	}

	if err := s.storage.SaveArticles(ctx, articles); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("articles_imported",
		slog.String("op", op),
		slog.Int("count", len(articles)),
	)

	return nil
}

// Article возвращает статью по идентификатору.
// ErrArticleNotFound — если записи нет.
func (s *Service) Article(ctx context.Context, id string) (*models.Article, error) {
	const op = "service.articles.Article"

	articles, err := s.storage.LoadArticles(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range articles {
		if articles[i].ID == id {
			return &articles[i], nil
		}
	}

	return nil, fmt.Errorf("%s: %w", op, ErrArticleNotFound)
}
