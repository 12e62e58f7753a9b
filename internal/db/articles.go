package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

type ArticleFilter struct {
	Keyword *string
	Status  *string
	TagID   *int
}

// ArticlePatch holds the article columns to update; nil fields are left untouched.
type ArticlePatch struct {
	Title       *string
	Content     *string
	Summary     *string
	CoverImage  *string
	Status      *string
	IsPublished *bool
	PublishedAt *time.Time
}

func (p ArticlePatch) empty() bool {
	return p.Title == nil && p.Content == nil && p.Summary == nil && p.CoverImage == nil &&
		p.Status == nil && p.IsPublished == nil && p.PublishedAt == nil
}

func applyArticleFilter(q *pg.Query, f ArticleFilter) *pg.Query {
	if f.Keyword != nil && *f.Keyword != "" {
		pattern := likePattern(*f.Keyword)
		q = q.WhereGroup(func(q *pg.Query) (*pg.Query, error) {
			q = q.WhereOr(`"t"."title" ILIKE ?`, pattern).
				WhereOr(`"t"."content" ILIKE ?`, pattern).
				WhereOr(`"t"."summary" ILIKE ?`, pattern)
			return q, nil
		})
	}

	if f.Status != nil {
		q = q.Where(`"t"."status" = ?`, *f.Status)
	}

	if f.TagID != nil {
		q = q.Where(`EXISTS (SELECT 1 FROM "articleTags" AS "at" WHERE "at"."articleId" = "t"."articleId" AND "at"."tagId" = ?)`, *f.TagID)
	}

	return q
}

// Articles returns a page of articles matching the filter, newest first.
func (r *Repository) Articles(ctx context.Context, f ArticleFilter, p Pager) ([]Article, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	var articles []Article
	query := applyArticleFilter(r.db.ModelContext(ctx, &articles), f)

	err := p.apply(query).
		OrderExpr(`"t"."createdAt" DESC, "t"."articleId" DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}

	return articles, nil
}

func (r *Repository) ArticlesCount(ctx context.Context, f ArticleFilter) (int, error) {
	query := applyArticleFilter(r.db.ModelContext(ctx, (*Article)(nil)), f)

	count, err := query.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get articles count: %w", err)
	}

	return count, nil
}

func (r *Repository) ArticleByID(ctx context.Context, articleID int) (*Article, error) {
	article := &Article{}
	err := r.db.ModelContext(ctx, article).
		Where(`"t"."articleId" = ?`, articleID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get article by id: %w", err)
	}

	return article, nil
}

func (r *Repository) ArticleBySlug(ctx context.Context, slug string) (*Article, error) {
	article := &Article{}
	err := r.db.ModelContext(ctx, article).
		Where(`"t"."slug" = ?`, slug).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get article by slug: %w", err)
	}

	return article, nil
}

func (r *Repository) SlugExists(ctx context.Context, slug string) (bool, error) {
	exists, err := r.db.ModelContext(ctx, (*Article)(nil)).
		Where(`"t"."slug" = ?`, slug).
		Exists()
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}

	return exists, nil
}

// InsertArticle inserts the article and fills its generated columns.
func (r *Repository) InsertArticle(ctx context.Context, article *Article) error {
	if _, err := r.db.ModelContext(ctx, article).Returning("*").Insert(); err != nil {
		return fmt.Errorf("failed to insert article: %w", err)
	}

	return nil
}

// UpdateArticle applies the patch and bumps updatedAt. It reports whether a row matched.
func (r *Repository) UpdateArticle(ctx context.Context, articleID int, p ArticlePatch) (bool, error) {
	if p.empty() {
		return r.touch(ctx, (*Article)(nil), Columns.Article.ID, articleID)
	}

	q := r.db.ModelContext(ctx, (*Article)(nil))
	if p.Title != nil {
		q = set(q, Columns.Article.Title, *p.Title)
	}
	if p.Content != nil {
		q = set(q, Columns.Article.Content, *p.Content)
	}
	if p.Summary != nil {
		q = set(q, Columns.Article.Summary, *p.Summary)
	}
	if p.CoverImage != nil {
		q = set(q, Columns.Article.CoverImage, *p.CoverImage)
	}
	if p.Status != nil {
		q = set(q, Columns.Article.Status, *p.Status)
	}
	if p.IsPublished != nil {
		q = set(q, Columns.Article.IsPublished, *p.IsPublished)
	}
	if p.PublishedAt != nil {
		q = set(q, Columns.Article.PublishedAt, *p.PublishedAt)
	}

	res, err := q.Set(`"updatedAt" = NOW()`).
		Where(`"articleId" = ?`, articleID).
		Update()
	if err != nil {
		return false, fmt.Errorf("failed to update article: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// IncrementViewCount atomically adds one view and returns the new counter value.
func (r *Repository) IncrementViewCount(ctx context.Context, articleID int) (int, error) {
	var views int
	_, err := r.db.QueryOneContext(ctx, pg.Scan(&views),
		`UPDATE "articles" SET "viewCount" = "viewCount" + 1 WHERE "articleId" = ? RETURNING "viewCount"`,
		articleID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to increment view count: %w", err)
	}

	return views, nil
}

// DeleteArticle removes the article with its tag links and comments.
func (r *Repository) DeleteArticle(ctx context.Context, articleID int) (bool, error) {
	if _, err := r.db.ModelContext(ctx, (*ArticleTag)(nil)).
		Where(`"articleId" = ?`, articleID).
		Delete(); err != nil {
		return false, fmt.Errorf("failed to delete article tags: %w", err)
	}

	if _, err := r.db.ModelContext(ctx, (*Comment)(nil)).
		Where(`"articleId" = ?`, articleID).
		Delete(); err != nil {
		return false, fmt.Errorf("failed to delete article comments: %w", err)
	}

	res, err := r.db.ModelContext(ctx, (*Article)(nil)).
		Where(`"articleId" = ?`, articleID).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete article: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// ArticleTags returns tag links with their tags for the given articles.
func (r *Repository) ArticleTags(ctx context.Context, articleIDs []int) ([]ArticleTag, error) {
	if len(articleIDs) == 0 {
		return []ArticleTag{}, nil
	}

	links := []ArticleTag{}
	err := r.db.ModelContext(ctx, &links).
		Relation(Columns.ArticleTag.Tag).
		Where(`"t"."articleId" IN (?)`, pg.In(articleIDs)).
		OrderExpr(`"t"."articleTagId" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query article tags: %w", err)
	}

	return links, nil
}

func (r *Repository) InsertArticleTags(ctx context.Context, articleID int, tagIDs []int) error {
	if len(tagIDs) == 0 {
		return nil
	}

	links := make([]ArticleTag, len(tagIDs))
	for i, tagID := range tagIDs {
		links[i] = ArticleTag{ArticleID: articleID, TagID: tagID}
	}

	if _, err := r.db.ModelContext(ctx, &links).Insert(); err != nil {
		return fmt.Errorf("failed to insert article tags: %w", err)
	}

	return nil
}

func (r *Repository) DeleteArticleTags(ctx context.Context, articleID int, tagIDs []int) error {
	if len(tagIDs) == 0 {
		return nil
	}

	_, err := r.db.ModelContext(ctx, (*ArticleTag)(nil)).
		Where(`"articleId" = ?`, articleID).
		Where(`"tagId" IN (?)`, pg.In(tagIDs)).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete article tags: %w", err)
	}

	return nil
}

// CommentCounts returns the number of comments per article id.
func (r *Repository) CommentCounts(ctx context.Context, articleIDs []int) (map[int]int, error) {
	if len(articleIDs) == 0 {
		return map[int]int{}, nil
	}

	var rows []idCount
	err := r.db.ModelContext(ctx, (*Comment)(nil)).
		ColumnExpr(`"t"."articleId" AS "id"`).
		ColumnExpr(`count(*) AS "count"`).
		Where(`"t"."articleId" IN (?)`, pg.In(articleIDs)).
		GroupExpr(`"t"."articleId"`).
		Select(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}

	return countsByID(rows), nil
}

func (r *Repository) touch(ctx context.Context, model interface{}, pkColumn string, id int) (bool, error) {
	res, err := r.db.ModelContext(ctx, model).
		Set(`"updatedAt" = NOW()`).
		Where("? = ?", pg.Ident(pkColumn), id).
		Update()
	if err != nil {
		return false, fmt.Errorf("failed to touch row: %w", err)
	}

	return res.RowsAffected() > 0, nil
}
