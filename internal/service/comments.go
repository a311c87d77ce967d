package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-local-blog/internal/models"
	"github.com/pribylovaa/go-local-blog/internal/pkg/log"
)

// Форма комментария исторически использует более строгий шаблон e-mail,
// чем форма регистрации (TLD из 2–4 букв); оба шаблона — часть
// наблюдаемого контракта своих форм.
var commentEmailPattern = regexp.MustCompile(`^[A-Za-z0-9_\-.]+@[A-Za-z0-9_\-.]+\.[A-Za-z]{2,4}$`)

// CommentInput — поля формы комментария.
type CommentInput struct {
	ArticleID string
	Author    string
	Email     string
	Content   string
}

// Comments возвращает комментарии статьи в порядке добавления.
// ErrArticleNotFound — если статьи с таким идентификатором нет.
func (s *Service) Comments(ctx context.Context, articleID string) ([]models.Comment, error) {
	const op = "service.comments.Comments"

	if err := s.requireArticle(ctx, articleID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	comments, err := s.storage.CommentsByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return comments, nil
}

// AddComment — создание комментария к статье.
//
// Валидация:
//   - Author, Email и Content нормализуются (TrimSpace) и не должны быть
//     пустыми (ErrIncompleteFields);
//   - Email должен соответствовать шаблону формы (ErrInvalidEmail);
//   - статья должна существовать (ErrArticleNotFound).
//
// Инициал аватара берётся из никнейма явно переданной сессии; без сессии —
// из имени автора. Сессия — явный аргумент, а не ambient-глобал: компонент,
// которому нужна идентичность, получает её от вызывающей стороны.
func (s *Service) AddComment(ctx context.Context, session *models.Session, in CommentInput) (*models.Comment, error) {
	const op = "service.comments.AddComment"

	lg := log.From(ctx)

	author := strings.TrimSpace(in.Author)
	email := strings.TrimSpace(in.Email)
	content := strings.TrimSpace(in.Content)

	if author == "" || email == "" || content == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrIncompleteFields)
	}

	if !commentEmailPattern.MatchString(email) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	if err := s.requireArticle(ctx, in.ArticleID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	avatar := initial(author)
	if session != nil {
		avatar = initial(session.Nickname)
	}

	comment := models.Comment{
		ID:        uuid.New(),
		ArticleID: in.ArticleID,
		Author:    author,
		Email:     email,
		Content:   content,
		Avatar:    avatar,
		CreatedAt: time.Now().UTC(),
	}

	comments, err := s.storage.CommentsByArticle(ctx, in.ArticleID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	comments = append(comments, comment)
	if err := s.storage.SaveComments(ctx, in.ArticleID, comments); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("comment_added",
		slog.String("op", op),
		slog.String("article_id", in.ArticleID),
		slog.String("comment_id", comment.ID.String()),
		slog.Bool("authenticated", session != nil),
	)

	return &comment, nil
}

// requireArticle проверяет существование статьи.
func (s *Service) requireArticle(ctx context.Context, articleID string) error {
	articles, err := s.storage.LoadArticles(ctx)
	if err != nil {
		return err
	}

	for _, a := range articles {
		if a.ID == articleID {
			return nil
		}
	}

	return ErrArticleNotFound
}

// initial возвращает первую руну имени в верхнем регистре.
func initial(name string) string {
	for _, r := range name {
		return string(unicode.ToUpper(r))
	}

	return ""
}
