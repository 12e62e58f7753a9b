package blog

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/daniilsolovey/blog-cms/internal/db"
)

const maxSlugAttempts = 10

type ArticleManager struct {
	db  *db.Repository
	now func() time.Time
}

func NewArticleManager(repo *db.Repository) *ArticleManager {
	return &ArticleManager{
		db:  repo,
		now: time.Now,
	}
}

// Create inserts the article with its tag links and returns it re-read.
func (m *ArticleManager) Create(ctx context.Context, in ArticleInput) (*Article, error) {
	status := StatusDraft
	if in.Status != nil {
		status = *in.Status
	}
	if err := checkArticleStatus(status); err != nil {
		return nil, err
	}

	var articleID int
	err := m.db.RunInTransaction(ctx, func(repo *db.Repository) error {
		tagIDs, err := checkTags(ctx, repo, in.TagIDs)
		if err != nil {
			return err
		}

		slug, err := m.uniqueSlug(ctx, repo, in.Title)
		if err != nil {
			return err
		}

		article := &db.Article{
			Title:      in.Title,
			Slug:       slug,
			Content:    in.Content,
			Summary:    in.Summary,
			CoverImage: in.CoverImage,
			Status:     status,
		}
		if status == StatusPublished {
			now := m.now()
			article.IsPublished = true
			article.PublishedAt = &now
		}

		if err := repo.InsertArticle(ctx, article); err != nil {
			if db.IsUniqueViolation(err) {
				return conflictError("article with slug %q already exists", slug)
			}
			return fmt.Errorf("db insert article: %w", err)
		}

		if err := repo.InsertArticleTags(ctx, article.ID, tagIDs); err != nil {
			return fmt.Errorf("db insert article tags: %w", err)
		}

		articleID = article.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return m.ArticleByID(ctx, articleID)
}

// Articles returns a page of articles matching the query, newest first.
func (m *ArticleManager) Articles(ctx context.Context, q ArticleQuery) (Page[Article], error) {
	paging, err := q.Paging.Normalize()
	if err != nil {
		return Page[Article]{}, err
	}
	if q.Status != nil {
		if err := checkArticleStatus(*q.Status); err != nil {
			return Page[Article]{}, err
		}
	}

	filter := db.ArticleFilter{Keyword: q.Keyword, Status: q.Status, TagID: q.TagID}

	list, err := m.db.Articles(ctx, filter, paging.pager())
	if err != nil {
		return Page[Article]{}, fmt.Errorf("db get articles: %w", err)
	}

	total, err := m.db.ArticlesCount(ctx, filter)
	if err != nil {
		return Page[Article]{}, fmt.Errorf("db get articles count: %w", err)
	}

	articles, err := m.fill(ctx, m.db, list)
	if err != nil {
		return Page[Article]{}, err
	}

	return newPage(articles, paging, total), nil
}

// PublishedArticles is Articles restricted to published ones.
func (m *ArticleManager) PublishedArticles(ctx context.Context, q ArticleQuery) (Page[Article], error) {
	status := StatusPublished
	q.Status = &status
	return m.Articles(ctx, q)
}

func (m *ArticleManager) ArticleByID(ctx context.Context, articleID int) (*Article, error) {
	article, err := m.db.ArticleByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("db get article by id: %w", err)
	} else if article == nil {
		return nil, ErrArticleNotFound
	}

	return m.one(ctx, m.db, *article)
}

// ArticleBySlug returns the article and counts the read as a view.
func (m *ArticleManager) ArticleBySlug(ctx context.Context, slug string) (*Article, error) {
	article, err := m.db.ArticleBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db get article by slug: %w", err)
	} else if article == nil {
		return nil, ErrArticleNotFound
	}

	views, err := m.db.IncrementViewCount(ctx, article.ID)
	if err != nil {
		return nil, fmt.Errorf("db increment view count: %w", err)
	}
	article.ViewCount = views

	return m.one(ctx, m.db, *article)
}

// Update changes the provided fields. Status changes drive isPublished and publishedAt.
func (m *ArticleManager) Update(ctx context.Context, articleID int, in ArticleUpdate) (*Article, error) {
	if in.Status != nil {
		if err := checkArticleStatus(*in.Status); err != nil {
			return nil, err
		}
	}

	err := m.db.RunInTransaction(ctx, func(repo *db.Repository) error {
		current, err := repo.ArticleByID(ctx, articleID)
		if err != nil {
			return fmt.Errorf("db get article by id: %w", err)
		} else if current == nil {
			return ErrArticleNotFound
		}

		patch := db.ArticlePatch{
			Title:      in.Title,
			Content:    in.Content,
			Summary:    in.Summary,
			CoverImage: in.CoverImage,
			Status:     in.Status,
		}
		if in.Status != nil {
			patch.IsPublished, patch.PublishedAt = publishState(*current, *in.Status, m.now())
		}

		if _, err := repo.UpdateArticle(ctx, articleID, patch); err != nil {
			return fmt.Errorf("db update article: %w", err)
		}

		if in.TagIDs == nil {
			return nil
		}

		return m.replaceTags(ctx, repo, articleID, *in.TagIDs)
	})
	if err != nil {
		return nil, err
	}

	return m.ArticleByID(ctx, articleID)
}

// Remove deletes the article with its tag links and comments and returns what was deleted.
func (m *ArticleManager) Remove(ctx context.Context, articleID int) (*Article, error) {
	var removed *Article
	err := m.db.RunInTransaction(ctx, func(repo *db.Repository) error {
		current, err := repo.ArticleByID(ctx, articleID)
		if err != nil {
			return fmt.Errorf("db get article by id: %w", err)
		} else if current == nil {
			return ErrArticleNotFound
		}

		removed, err = m.one(ctx, repo, *current)
		if err != nil {
			return err
		}

		if ok, err := repo.DeleteArticle(ctx, articleID); err != nil {
			return fmt.Errorf("db delete article: %w", err)
		} else if !ok {
			return ErrArticleNotFound
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return removed, nil
}

func (m *ArticleManager) replaceTags(ctx context.Context, repo *db.Repository, articleID int, ids []int) error {
	desired, err := checkTags(ctx, repo, ids)
	if err != nil {
		return err
	}

	links, err := repo.ArticleTags(ctx, []int{articleID})
	if err != nil {
		return fmt.Errorf("db get article tags: %w", err)
	}

	current := make([]int, len(links))
	for i := range links {
		current[i] = links[i].TagID
	}

	add, remove := diffTagIDs(current, desired)

	if err := repo.DeleteArticleTags(ctx, articleID, remove); err != nil {
		return fmt.Errorf("db delete article tags: %w", err)
	}

	if err := repo.InsertArticleTags(ctx, articleID, add); err != nil {
		return fmt.Errorf("db insert article tags: %w", err)
	}

	return nil
}

// fill attaches tag links and comment counts.
func (m *ArticleManager) fill(ctx context.Context, repo *db.Repository, list []db.Article) ([]Article, error) {
	ids := articleIDs(list)

	links, err := repo.ArticleTags(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("db get article tags: %w", err)
	}

	counts, err := repo.CommentCounts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("db get comment counts: %w", err)
	}

	return NewArticles(list, links, counts), nil
}

func (m *ArticleManager) one(ctx context.Context, repo *db.Repository, article db.Article) (*Article, error) {
	list, err := m.fill(ctx, repo, []db.Article{article})
	if err != nil {
		return nil, err
	}

	return &list[0], nil
}

func (m *ArticleManager) uniqueSlug(ctx context.Context, repo *db.Repository, title string) (string, error) {
	base := Slugify(title)
	candidate := base

	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		exists, err := repo.SlugExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("db check slug: %w", err)
		} else if !exists {
			return candidate, nil
		}

		candidate = slugCandidate(base, m.now(), attempt)
	}

	return "", conflictError("could not find a free slug for %q", title)
}

// slugCandidate returns base-<unix millis> for the first retry and base-<unix millis>-<n> after that.
func slugCandidate(base string, now time.Time, attempt int) string {
	candidate := base + "-" + strconv.FormatInt(now.UnixMilli(), 10)
	if attempt > 1 {
		candidate += "-" + strconv.Itoa(attempt)
	}

	return candidate
}

// publishState returns the isPublished and publishedAt changes a status change implies.
// Publishing an already published article keeps its original publishedAt.
func publishState(current db.Article, status string, now time.Time) (*bool, *time.Time) {
	switch status {
	case StatusPublished:
		if current.IsPublished {
			return nil, nil
		}
		published := true
		return &published, &now
	case StatusDraft:
		published := false
		return &published, nil
	}

	return nil, nil
}

func checkArticleStatus(status string) error {
	if status != StatusDraft && status != StatusPublished {
		return validationError("status must be one of %s, %s", StatusDraft, StatusPublished)
	}

	return nil
}

// checkTags deduplicates ids and verifies that every tag exists.
func checkTags(ctx context.Context, repo *db.Repository, ids []int) ([]int, error) {
	ids = dedupeIDs(ids)
	if len(ids) == 0 {
		return ids, nil
	}

	tags, err := repo.TagsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("db get tags by ids: %w", err)
	}

	if len(tags) != len(ids) {
		found := tagIDs(tags)
		var missing []int
		for _, id := range ids {
			if !slices.Contains(found, id) {
				missing = append(missing, id)
			}
		}
		return nil, validationError("unknown tag ids: %v", missing)
	}

	return ids, nil
}

// dedupeIDs drops repeated ids, keeping first occurrences in order.
func dedupeIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	result := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}

	return result
}

// diffTagIDs returns the ids to link and to unlink to turn current into desired.
func diffTagIDs(current, desired []int) (add, remove []int) {
	for _, id := range desired {
		if !slices.Contains(current, id) {
			add = append(add, id)
		}
	}

	for _, id := range current {
		if !slices.Contains(desired, id) {
			remove = append(remove, id)
		}
	}

	return add, remove
}
