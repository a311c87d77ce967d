package models

import "time"

// Article — доменная сущность статьи.
//
// Статья неизменяема после загрузки: пейджер управляет только тем,
// какой срез последовательности виден, и никогда не меняет содержимое.
// YAML-теги используются файлом импорта контента (cmd/blogcli import).
type Article struct {
	// ID — строковый идентификатор статьи (например, "tech-1").
	ID string `json:"id" yaml:"id"`
	// Title — заголовок статьи.
	Title string `json:"title" yaml:"title"`
	// Summary — краткое описание.
	Summary string `json:"summary" yaml:"summary"`
	// Category — отображаемое название категории.
	Category string `json:"category" yaml:"category"`
	// CategoryKey — ключ категории для фильтрации (tech/life/study...).
	CategoryKey string `json:"category_key" yaml:"category_key"`
	// CommentCount — количество комментариев.
	CommentCount int `json:"comments" yaml:"comments"`
	// Views — количество просмотров.
	Views int `json:"views" yaml:"views"`
	// Likes — количество лайков.
	Likes int `json:"likes" yaml:"likes"`
	// ImageURL — ссылка на обложку.
	ImageURL string `json:"image" yaml:"image"`
	// PublishedAt — дата публикации.
	PublishedAt time.Time `json:"published_at" yaml:"published_at"`
}
