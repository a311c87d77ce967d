package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment — комментарий к статье.
//
// Особенности:
//   - ID — UUIDv4;
//   - Avatar — одна буква-инициал: от никнейма текущей сессии, если
//     комментарий оставлен залогиненным пользователем, иначе от имени автора;
//   - комментарии хранятся списком на статью и только добавляются.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	ArticleID string    `json:"article_id"`
	Author    string    `json:"author"`
	Email     string    `json:"email"`
	Content   string    `json:"content"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}
