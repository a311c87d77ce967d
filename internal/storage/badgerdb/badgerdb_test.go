package badgerdb

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-local-blog/internal/models"
	"github.com/pribylovaa/go-local-blog/internal/storage"
)

func newStore(t *testing.T) *Storage {
	t.Helper()

	st, err := New(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(st.Close)

	return st
}

func TestLoadAccounts_EmptyWhenMissing(t *testing.T) {
	t.Parallel()

	st := newStore(t)

	accounts, err := st.LoadAccounts(context.Background())
	require.NoError(t, err)
	require.Empty(t, accounts)
}

func TestAccounts_SaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	st := newStore(t)
	ctx := context.Background()

	want := []models.Account{
		{
			ID:           1700000000000,
			Nickname:     "Neo",
			Handle:       "user01",
			Email:        "neo@example.com",
			PasswordHash: "$2a$04$fakehash",
			Avatar:       "images/avatar1.jpg",
			CreatedAt:    time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC),
			Role:         models.RoleUser,
		},
		{
			ID:       1700000000001,
			Nickname: "Smith",
			Handle:   "agent_smith",
			Email:    "smith@example.com",
			Role:     models.RoleAdmin,
		},
	}

	require.NoError(t, st.SaveAccounts(ctx, want))

	got, err := st.LoadAccounts(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)

	// Повторная запись перезаписывает набор целиком.
	require.NoError(t, st.SaveAccounts(ctx, want[:1]))
	got, err = st.LoadAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestSession_Lifecycle(t *testing.T) {
	t.Parallel()

	st := newStore(t)
	ctx := context.Background()

	_, err := st.LoadSession(ctx)
	require.ErrorIs(t, err, storage.ErrNotFound)

	want := &models.Session{
		ID:       1700000000000,
		Nickname: "Neo",
		Handle:   "user01",
		Email:    "neo@example.com",
		Role:     models.RoleUser,
	}
	require.NoError(t, st.SaveSession(ctx, want))

	got, err := st.LoadSession(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)

	require.NoError(t, st.DeleteSession(ctx))
	_, err = st.LoadSession(ctx)
	require.ErrorIs(t, err, storage.ErrNotFound)

	// Удаление отсутствующей сессии — не ошибка.
	require.NoError(t, st.DeleteSession(ctx))
}

func TestArticles_SaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	st := newStore(t)
	ctx := context.Background()

	articles, err := st.LoadArticles(ctx)
	require.NoError(t, err)
	require.Empty(t, articles)

	want := []models.Article{
		{ID: "tech-1", Title: "Closures in depth", CategoryKey: "tech", Views: 420},
		{ID: "life-1", Title: "Weekend hike", CategoryKey: "life", Views: 77},
	}
	require.NoError(t, st.SaveArticles(ctx, want))

	got, err := st.LoadArticles(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

// TestComments_PerArticleIsolation — комментарии хранятся по-статейно:
// списки разных статей не пересекаются.
func TestComments_PerArticleIsolation(t *testing.T) {
	t.Parallel()

	st := newStore(t)
	ctx := context.Background()

	comments, err := st.CommentsByArticle(ctx, "tech-1")
	require.NoError(t, err)
	require.Empty(t, comments)

	first := []models.Comment{{
		ID:        uuid.New(),
		ArticleID: "tech-1",
		Author:    "alice",
		Content:   "Great article!",
		Avatar:    "A",
	}}
	second := []models.Comment{{
		ID:        uuid.New(),
		ArticleID: "life-1",
		Author:    "bob",
		Content:   "Nice trail.",
		Avatar:    "B",
	}}

	require.NoError(t, st.SaveComments(ctx, "tech-1", first))
	require.NoError(t, st.SaveComments(ctx, "life-1", second))

	got, err := st.CommentsByArticle(ctx, "tech-1")
	require.NoError(t, err)
	require.Equal(t, first, got)

	got, err = st.CommentsByArticle(ctx, "life-1")
	require.NoError(t, err)
	require.Equal(t, second, got)
}

func TestStorage_CancelledContext(t *testing.T) {
	t.Parallel()

	st := newStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := st.LoadAccounts(ctx)
	require.ErrorIs(t, err, context.Canceled)

	err = st.SaveAccounts(ctx, nil)
	require.ErrorIs(t, err, context.Canceled)
}
