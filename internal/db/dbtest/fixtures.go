package dbtest

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/daniilsolovey/blog-cms/internal/db"
)

const (
	// AdminUsername and AdminPassword are the credentials of the fixture user.
	AdminUsername = "admin"
	AdminPassword = "admin-password"
	AdminEmail    = "admin@example.com"

	// Fixture totals.
	ArticlesTotal     = 6
	ArticlesPublished = 4
	ArticlesDraft     = 2
	TagsTotal         = 4
	CommentsTotal     = 4
	CommentsPending   = 2
	ProjectsTotal     = 3
	ProjectsFeatured  = 1
	ViewsTotal        = 455
)

var (
	// BaseTime is the base time used for test data
	BaseTime = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

// LoadTestData truncates all tables and inserts the fixture data set.
func LoadTestData(ctx context.Context, database pg.DBI) error {
	_, err := database.ExecContext(ctx, `
		TRUNCATE TABLE "articleTags", "comments", "articles", "tags", "projects", "profiles", "users" RESTART IDENTITY CASCADE;
	`)
	if err != nil {
		return fmt.Errorf("truncate tables: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(AdminPassword), bcrypt.MinCost)
	if err != nil {
		return fmt.Errorf("hash fixture password: %w", err)
	}

	admin := db.User{Username: AdminUsername, Email: AdminEmail, Password: string(hash), CreatedAt: BaseTime}
	if _, err := database.ModelContext(ctx, &admin).Insert(); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	tags := []db.Tag{
		{Name: "Go", Color: strPtr("#00ADD8"), CreatedAt: BaseTime.Add(-4 * time.Hour)},
		{Name: "PostgreSQL", Color: strPtr("#336791"), CreatedAt: BaseTime.Add(-3 * time.Hour)},
		{Name: "Docker", Color: strPtr("#2496ED"), CreatedAt: BaseTime.Add(-2 * time.Hour)},
		{Name: "Testing", CreatedAt: BaseTime.Add(-1 * time.Hour)},
	}
	for i := range tags {
		tags[i].UpdatedAt = tags[i].CreatedAt
		if _, err := database.ModelContext(ctx, &tags[i]).Insert(); err != nil {
			return fmt.Errorf("insert tag %q: %w", tags[i].Name, err)
		}
	}

	articles := []db.Article{
		{
			Title:       "Getting Started with Go",
			Slug:        "getting-started-with-go",
			Content:     "Go is an open source programming language that makes it simple to build software.",
			Summary:     strPtr("A first look at Go"),
			ViewCount:   120,
			Status:      db.ArticleStatusPublished,
			IsPublished: true,
			PublishedAt: timePtr(BaseTime.Add(-5 * 24 * time.Hour)),
			CreatedAt:   BaseTime.Add(-5 * 24 * time.Hour),
		},
		{
			Title:       "PostgreSQL Tips and Tricks",
			Slug:        "postgresql-tips-and-tricks",
			Content:     "Indexes, EXPLAIN ANALYZE and a few habits that keep queries fast.",
			ViewCount:   80,
			Status:      db.ArticleStatusPublished,
			IsPublished: true,
			PublishedAt: timePtr(BaseTime.Add(-40 * 24 * time.Hour)),
			CreatedAt:   BaseTime.Add(-40 * 24 * time.Hour),
		},
		{
			Title:     "Docker for Developers",
			Slug:      "docker-for-developers",
			Content:   "Containers make local environments reproducible.",
			Status:    db.ArticleStatusDraft,
			CreatedAt: BaseTime.Add(-70 * 24 * time.Hour),
		},
		{
			Title:       "Testing in Go",
			Slug:        "testing-in-go",
			Content:     "Table driven tests and the testing package.",
			Summary:     strPtr("How we test services"),
			ViewCount:   200,
			Status:      db.ArticleStatusPublished,
			IsPublished: true,
			PublishedAt: timePtr(BaseTime.Add(-100 * 24 * time.Hour)),
			CreatedAt:   BaseTime.Add(-100 * 24 * time.Hour),
		},
		{
			Title:     "Draft Ideas",
			Slug:      "draft-ideas",
			Content:   "Notes for upcoming posts.",
			ViewCount: 5,
			Status:    db.ArticleStatusDraft,
			CreatedAt: BaseTime.Add(-1 * 24 * time.Hour),
		},
		{
			Title:       "Year in Review",
			Slug:        "year-in-review",
			Content:     "Looking back at the previous year.",
			ViewCount:   50,
			Status:      db.ArticleStatusPublished,
			IsPublished: true,
			PublishedAt: timePtr(time.Date(2023, 12, 20, 10, 0, 0, 0, time.UTC)),
			CreatedAt:   time.Date(2023, 12, 20, 10, 0, 0, 0, time.UTC),
		},
	}
	for i := range articles {
		articles[i].UpdatedAt = articles[i].CreatedAt
		if _, err := database.ModelContext(ctx, &articles[i]).Insert(); err != nil {
			return fmt.Errorf("insert article %q: %w", articles[i].Title, err)
		}
	}

	links := []db.ArticleTag{
		{ArticleID: articles[0].ID, TagID: tags[0].ID},
		{ArticleID: articles[0].ID, TagID: tags[3].ID},
		{ArticleID: articles[1].ID, TagID: tags[1].ID},
		{ArticleID: articles[2].ID, TagID: tags[2].ID},
		{ArticleID: articles[3].ID, TagID: tags[0].ID},
		{ArticleID: articles[3].ID, TagID: tags[3].ID},
		{ArticleID: articles[5].ID, TagID: tags[0].ID},
	}
	if _, err := database.ModelContext(ctx, &links).Insert(); err != nil {
		return fmt.Errorf("insert article tags: %w", err)
	}

	comments := []db.Comment{
		{
			Content:   "Great introduction!",
			Author:    "Alice",
			Email:     "alice@example.com",
			Status:    db.CommentStatusApproved,
			ArticleID: articles[0].ID,
			CreatedAt: BaseTime.Add(-4 * 24 * time.Hour),
		},
		{
			Content:   "Could you cover generics next?",
			Author:    "Bob",
			Email:     "bob@example.com",
			Website:   strPtr("https://bob.dev"),
			Status:    db.CommentStatusPending,
			ArticleID: articles[0].ID,
			CreatedAt: BaseTime.Add(-3 * 24 * time.Hour),
		},
		{
			Content:   "Buy cheap watches",
			Author:    "Spammer",
			Email:     "spam@example.com",
			Status:    db.CommentStatusRejected,
			ArticleID: articles[1].ID,
			CreatedAt: BaseTime.Add(-35 * 24 * time.Hour),
		},
		{
			Content:   "Very helpful, thanks.",
			Author:    "Carol",
			Email:     "carol@example.com",
			Status:    db.CommentStatusPending,
			ArticleID: articles[3].ID,
			CreatedAt: BaseTime.Add(-90 * 24 * time.Hour),
		},
	}
	for i := range comments {
		comments[i].UpdatedAt = comments[i].CreatedAt
		if _, err := database.ModelContext(ctx, &comments[i]).Insert(); err != nil {
			return fmt.Errorf("insert comment by %q: %w", comments[i].Author, err)
		}
	}

	projects := []db.Project{
		{
			Title:       "blog-cms",
			Description: "This blog's backend",
			GithubURL:   strPtr("https://github.com/daniilsolovey/blog-cms"),
			TechStack:   strPtr(`["Go","PostgreSQL"]`),
			Featured:    true,
			CreatedAt:   BaseTime.Add(-30 * 24 * time.Hour),
		},
		{
			Title:       "dotfiles",
			Description: "Personal configuration",
			CreatedAt:   BaseTime.Add(-2 * 24 * time.Hour),
		},
		{
			Title:       "news-portal",
			Description: "News portal API",
			ProjectURL:  strPtr("https://news.example.com"),
			CreatedAt:   BaseTime.Add(-200 * 24 * time.Hour),
		},
	}
	for i := range projects {
		projects[i].UpdatedAt = projects[i].CreatedAt
		if _, err := database.ModelContext(ctx, &projects[i]).Insert(); err != nil {
			return fmt.Errorf("insert project %q: %w", projects[i].Title, err)
		}
	}

	return nil
}
