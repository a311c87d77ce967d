package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-local-blog/internal/models"
)

func seedArticle(t *testing.T, svc *Service) {
	t.Helper()

	require.NoError(t, svc.ImportArticles(context.Background(), []models.Article{
		{ID: "tech-1", Title: "Closures in depth", CategoryKey: "tech"},
	}))
}

func validComment() CommentInput {
	return CommentInput{
		ArticleID: "tech-1",
		Author:    "alice",
		Email:     "alice@example.com",
		Content:   "Great article!",
	}
}

func TestAddComment_IncompleteFields(t *testing.T) {
	t.Parallel()

	svc, _ := newSvc(t)
	seedArticle(t, svc)

	in := validComment()
	in.Content = "   "

	_, err := svc.AddComment(context.Background(), nil, in)
	require.ErrorIs(t, err, ErrIncompleteFields)
}

func TestAddComment_InvalidEmail(t *testing.T) {
	t.Parallel()

	svc, _ := newSvc(t)
	seedArticle(t, svc)

	in := validComment()
	in.Email = "alice@example.technology" // TLD длиннее четырёх букв.

	_, err := svc.AddComment(context.Background(), nil, in)
	require.ErrorIs(t, err, ErrInvalidEmail)
}

func TestAddComment_UnknownArticle(t *testing.T) {
	t.Parallel()

	svc, _ := newSvc(t)
	seedArticle(t, svc)

	in := validComment()
	in.ArticleID = "tech-999"

	_, err := svc.AddComment(context.Background(), nil, in)
	require.ErrorIs(t, err, ErrArticleNotFound)
}

// TestAddComment_AvatarInitial_FromAuthor —
// без сессии инициал аватара берётся из имени автора.
func TestAddComment_AvatarInitial_FromAuthor(t *testing.T) {
	t.Parallel()

	svc, _ := newSvc(t)
	seedArticle(t, svc)

	comment, err := svc.AddComment(context.Background(), nil, validComment())
	require.NoError(t, err)
	require.Equal(t, "A", comment.Avatar)
}

// TestAddComment_AvatarInitial_FromSession —
// явно переданная сессия перекрывает имя автора.
func TestAddComment_AvatarInitial_FromSession(t *testing.T) {
	t.Parallel()

	svc, _ := newSvc(t)
	seedArticle(t, svc)

	session := &models.Session{ID: 1, Nickname: "neo", Handle: "user01"}

	comment, err := svc.AddComment(context.Background(), session, validComment())
	require.NoError(t, err)
	require.Equal(t, "N", comment.Avatar)
}

func TestComments_AppendOrderAndPersistence(t *testing.T) {
	t.Parallel()

	svc, _ := newSvc(t)
	seedArticle(t, svc)
	ctx := context.Background()

	first := validComment()
	_, err := svc.AddComment(ctx, nil, first)
	require.NoError(t, err)

	second := validComment()
	second.Author = "bob"
	second.Email = "bob@example.com"
	second.Content = "Thanks for sharing."
	_, err = svc.AddComment(ctx, nil, second)
	require.NoError(t, err)

	comments, err := svc.Comments(ctx, "tech-1")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	require.Equal(t, "alice", comments[0].Author)
	require.Equal(t, "bob", comments[1].Author)
	require.NotEqual(t, comments[0].ID, comments[1].ID)
}

func TestComments_UnknownArticle(t *testing.T) {
	t.Parallel()

	svc, _ := newSvc(t)
	seedArticle(t, svc)

	_, err := svc.Comments(context.Background(), "life-1")
	require.ErrorIs(t, err, ErrArticleNotFound)
}

func TestImportArticles_DuplicateID(t *testing.T) {
	t.Parallel()

	svc, _ := newSvc(t)

	err := svc.ImportArticles(context.Background(), []models.Article{
		{ID: "tech-1"},
		{ID: "tech-1"},
	})
	require.ErrorIs(t, err, ErrAlreadyImported)
}

func TestArticle_ByID(t *testing.T) {
	t.Parallel()

	svc, _ := newSvc(t)
	seedArticle(t, svc)
	ctx := context.Background()

	art, err := svc.Article(ctx, "tech-1")
	require.NoError(t, err)
	require.Equal(t, "Closures in depth", art.Title)

	_, err = svc.Article(ctx, "missing")
	require.ErrorIs(t, err, ErrArticleNotFound)
}
