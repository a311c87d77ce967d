// storage определяет контракты доступа к персистентному хранилищу блога.
//
// Хранилище — синхронный локальный key-value стор: каждая коллекция
// читается и записывается целиком (частичных обновлений нет, это
// осознанное ограничение модели персистентности системы).
package storage

import (
	"context"
	"errors"

	"github.com/pribylovaa/go-local-blog/internal/models"
)

var (
	// ErrNotFound — запись отсутствует в хранилище (сессия/коллекция).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности.
	ErrAlreadyExists = errors.New("already exists")
)

// AccountStorage выполняет операции над набором учётных записей.
type AccountStorage interface {
	// LoadAccounts возвращает весь набор учётных записей.
	// Если ключ ещё не создавался — пустой срез без ошибки.
	LoadAccounts(ctx context.Context) ([]models.Account, error)
	// SaveAccounts записывает весь набор учётных записей целиком.
	SaveAccounts(ctx context.Context, accounts []models.Account) error
}

// SessionStorage выполняет операции над текущей сессией.
type SessionStorage interface {
	// LoadSession возвращает текущую сессию.
	// Если никто не залогинен — ErrNotFound.
	LoadSession(ctx context.Context) (*models.Session, error)
	// SaveSession сохраняет текущую сессию (перезаписывая предыдущую).
	SaveSession(ctx context.Context, session *models.Session) error
	// DeleteSession удаляет текущую сессию.
	// Отсутствие сессии не является ошибкой.
	DeleteSession(ctx context.Context) error
}

// ArticleStorage выполняет операции над набором статей.
type ArticleStorage interface {
	// LoadArticles возвращает все статьи в исходном порядке.
	// Если контент ещё не импортирован — пустой срез без ошибки.
	LoadArticles(ctx context.Context) ([]models.Article, error)
	// SaveArticles записывает весь набор статей целиком.
	SaveArticles(ctx context.Context, articles []models.Article) error
}

// CommentStorage выполняет операции над комментариями статьи.
type CommentStorage interface {
	// CommentsByArticle возвращает все комментарии статьи в порядке добавления.
	// Если комментариев нет — пустой срез без ошибки.
	CommentsByArticle(ctx context.Context, articleID string) ([]models.Comment, error)
	// SaveComments записывает список комментариев статьи целиком.
	SaveComments(ctx context.Context, articleID string, comments []models.Comment) error
}

// Storage задаёт контракт доступа к хранилищу блога.
type Storage interface {
	AccountStorage
	SessionStorage
	ArticleStorage
	CommentStorage
	Close()
}
