package badgerdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/pribylovaa/go-local-blog/internal/models"
	"github.com/pribylovaa/go-local-blog/internal/storage"
)

// CommentsByArticle возвращает все комментарии статьи в порядке добавления.
// Если комментариев нет — пустой срез.
func (s *Storage) CommentsByArticle(ctx context.Context, articleID string) ([]models.Comment, error) {
	const op = "storage.badgerdb.CommentsByArticle"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var comments []models.Comment
	if err := s.read(keyCommentsPrefix+articleID, &comments); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []models.Comment{}, nil
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return comments, nil
}

// SaveComments записывает список комментариев статьи целиком.
func (s *Storage) SaveComments(ctx context.Context, articleID string, comments []models.Comment) error {
	const op = "storage.badgerdb.SaveComments"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.write(keyCommentsPrefix+articleID, comments); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
