//go:build integration

package db_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/blog-cms/internal/db"
	"github.com/daniilsolovey/blog-cms/internal/db/dbtest"
)

var testDB *pg.DB

func TestMain(m *testing.M) {
	database, cleanup, err := dbtest.Setup(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up test database: %v\n", err)
		os.Exit(1)
	}
	testDB = database

	code := m.Run()

	cleanup()
	os.Exit(code)
}

func withTx(t *testing.T) (context.Context, *db.Repository) {
	t.Helper()
	ctx := context.Background()

	tx, err := testDB.Begin()
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("failed to rollback transaction: %v", err)
		}
	})

	return ctx, db.New(tx)
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func TestRepository_Articles(t *testing.T) {
	t.Run("FilterByStatusAndTag", func(t *testing.T) {
		ctx, repo := withTx(t)

		f := db.ArticleFilter{Status: strPtr(db.ArticleStatusPublished), TagID: intPtr(1)}
		articles, err := repo.Articles(ctx, f, db.Pager{Page: 1, PageSize: 10})
		require.NoError(t, err)

		slugs := make([]string, 0, len(articles))
		for _, a := range articles {
			slugs = append(slugs, a.Slug)
		}
		assert.Equal(t, []string{"getting-started-with-go", "testing-in-go", "year-in-review"}, slugs)

		total, err := repo.ArticlesCount(ctx, f)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
	})

	t.Run("KeywordEscapesWildcards", func(t *testing.T) {
		ctx, repo := withTx(t)

		total, err := repo.ArticlesCount(ctx, db.ArticleFilter{Keyword: strPtr("%")})
		require.NoError(t, err)
		assert.Zero(t, total)

		total, err = repo.ArticlesCount(ctx, db.ArticleFilter{Keyword: strPtr("explain analyze")})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
	})

	t.Run("InvalidPager", func(t *testing.T) {
		ctx, repo := withTx(t)

		_, err := repo.Articles(ctx, db.ArticleFilter{}, db.Pager{Page: 0, PageSize: 10})
		assert.Error(t, err)
	})

	t.Run("LookupsReturnNilWhenMissing", func(t *testing.T) {
		ctx, repo := withTx(t)

		article, err := repo.ArticleByID(ctx, 9999)
		require.NoError(t, err)
		assert.Nil(t, article)

		article, err = repo.ArticleBySlug(ctx, "no-such-article")
		require.NoError(t, err)
		assert.Nil(t, article)

		exists, err := repo.SlugExists(ctx, "draft-ideas")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("IncrementViewCount", func(t *testing.T) {
		ctx, repo := withTx(t)

		views, err := repo.IncrementViewCount(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 121, views)

		views, err = repo.IncrementViewCount(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 122, views)
	})

	t.Run("DeleteRemovesLinksAndComments", func(t *testing.T) {
		ctx, repo := withTx(t)

		deleted, err := repo.DeleteArticle(ctx, 1)
		require.NoError(t, err)
		assert.True(t, deleted)

		links, err := repo.ArticleTags(ctx, []int{1})
		require.NoError(t, err)
		assert.Empty(t, links)

		counts, err := repo.CommentCounts(ctx, []int{1})
		require.NoError(t, err)
		assert.Empty(t, counts)

		deleted, err = repo.DeleteArticle(ctx, 1)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestRepository_ArticleTags(t *testing.T) {
	ctx, repo := withTx(t)

	require.NoError(t, repo.InsertArticleTags(ctx, 5, []int{1, 2}))
	require.NoError(t, repo.DeleteArticleTags(ctx, 1, []int{4}))

	links, err := repo.ArticleTags(ctx, []int{1, 5})
	require.NoError(t, err)

	byArticle := map[int][]string{}
	for _, l := range links {
		require.NotNil(t, l.Tag)
		byArticle[l.ArticleID] = append(byArticle[l.ArticleID], l.Tag.Name)
	}
	assert.Equal(t, []string{"Go"}, byArticle[1])
	assert.Equal(t, []string{"Go", "PostgreSQL"}, byArticle[5])

	counts, err := repo.TagArticleCounts(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 4, 2: 2, 3: 1, 4: 1}, counts)
}

func TestRepository_Comments(t *testing.T) {
	ctx, repo := withTx(t)

	f := db.CommentFilter{Status: strPtr(db.CommentStatusPending)}
	comments, err := repo.Comments(ctx, f, db.Pager{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "Bob", comments[0].Author)
	require.NotNil(t, comments[0].Article)
	assert.Equal(t, "getting-started-with-go", comments[0].Article.Slug)

	counts, err := repo.CommentCounts(ctx, []int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 2, counts[1])
	assert.Equal(t, 1, counts[2])
	assert.Zero(t, counts[3])
}

func TestRepository_Profile(t *testing.T) {
	ctx, repo := withTx(t)

	inserted, err := repo.InsertProfile(ctx, &db.Profile{ID: db.ProfileID, Title: strPtr("First")}, true)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.InsertProfile(ctx, &db.Profile{ID: db.ProfileID, Title: strPtr("Second")}, true)
	require.NoError(t, err)
	assert.False(t, inserted)

	profile, err := repo.ProfileByID(ctx, db.ProfileID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "First", *profile.Title)
}

func TestRepository_Monthly(t *testing.T) {
	ctx, repo := withTx(t)

	articles, err := repo.MonthlyArticles(ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, []db.MonthlyCount{{Month: 3, Count: 1}, {Month: 4, Count: 1}, {Month: 5, Count: 1}, {Month: 6, Count: 2}}, articles)

	views, err := repo.MonthlyViews(ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, []db.MonthlyCount{{Month: 3, Count: 200}, {Month: 4, Count: 0}, {Month: 5, Count: 80}, {Month: 6, Count: 125}}, views)

	comments, err := repo.MonthlyComments(ctx, 2023)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestRepository_Users(t *testing.T) {
	ctx, repo := withTx(t)

	user, err := repo.UserByUsernameOrEmail(ctx, "someone", dbtest.AdminEmail)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, dbtest.AdminUsername, user.Username)

	err = repo.InsertUser(ctx, &db.User{Username: dbtest.AdminUsername, Email: "other@example.com", Password: "x", CreatedAt: time.Now()})
	require.Error(t, err)
	assert.True(t, db.IsUniqueViolation(err))
}

func TestRepository_RunInTransaction(t *testing.T) {
	ctx := context.Background()
	repo := db.New(testDB)
	errAbort := errors.New("abort")

	err := repo.RunInTransaction(ctx, func(tx *db.Repository) error {
		if err := tx.InsertTag(ctx, &db.Tag{Name: "Rolled Back"}); err != nil {
			return err
		}
		return errAbort
	})
	require.ErrorIs(t, err, errAbort)

	tag, err := repo.TagByName(ctx, "Rolled Back")
	require.NoError(t, err)
	assert.Nil(t, tag)
}
