package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

type TagPatch struct {
	Name  *string
	Color *string
}

// Tags returns all tags ordered by creation time, newest first.
func (r *Repository) Tags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	err := r.db.ModelContext(ctx, &tags).
		OrderExpr(`"t"."createdAt" DESC, "t"."tagId" DESC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}

	return tags, nil
}

// PopularTags returns tags ordered by the number of linked articles.
// A non-positive limit returns all tags.
func (r *Repository) PopularTags(ctx context.Context, limit int) ([]Tag, error) {
	var tags []Tag
	query := r.db.ModelContext(ctx, &tags).
		ColumnExpr(`"t".*`).
		Join(`LEFT JOIN "articleTags" AS "at" ON "at"."tagId" = "t"."tagId"`).
		GroupExpr(`"t"."tagId"`).
		OrderExpr(`count("at"."articleTagId") DESC, "t"."name" ASC`)

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Select(); err != nil {
		return nil, fmt.Errorf("failed to query popular tags: %w", err)
	}

	return tags, nil
}

func (r *Repository) TagByID(ctx context.Context, tagID int) (*Tag, error) {
	tag := &Tag{}
	err := r.db.ModelContext(ctx, tag).
		Where(`"t"."tagId" = ?`, tagID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get tag by id: %w", err)
	}

	return tag, nil
}

func (r *Repository) TagByName(ctx context.Context, name string) (*Tag, error) {
	tag := &Tag{}
	err := r.db.ModelContext(ctx, tag).
		Where(`"t"."name" = ?`, name).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get tag by name: %w", err)
	}

	return tag, nil
}

func (r *Repository) TagsByIDs(ctx context.Context, tagIDs []int) ([]Tag, error) {
	if len(tagIDs) == 0 {
		return []Tag{}, nil
	}

	tags := []Tag{}
	err := r.db.ModelContext(ctx, &tags).
		Where(`"t"."tagId" IN (?)`, pg.In(tagIDs)).
		OrderExpr(`"t"."name" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query tags by ids: %w", err)
	}

	return tags, nil
}

func (r *Repository) InsertTag(ctx context.Context, tag *Tag) error {
	if _, err := r.db.ModelContext(ctx, tag).Returning("*").Insert(); err != nil {
		return fmt.Errorf("failed to insert tag: %w", err)
	}

	return nil
}

func (r *Repository) UpdateTag(ctx context.Context, tagID int, p TagPatch) (bool, error) {
	q := r.db.ModelContext(ctx, (*Tag)(nil))
	if p.Name != nil {
		q = set(q, Columns.Tag.Name, *p.Name)
	}
	if p.Color != nil {
		q = set(q, Columns.Tag.Color, *p.Color)
	}

	res, err := q.Set(`"updatedAt" = NOW()`).
		Where(`"tagId" = ?`, tagID).
		Update()
	if err != nil {
		return false, fmt.Errorf("failed to update tag: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// DeleteTag removes the tag together with its article links.
func (r *Repository) DeleteTag(ctx context.Context, tagID int) (bool, error) {
	if _, err := r.db.ModelContext(ctx, (*ArticleTag)(nil)).
		Where(`"tagId" = ?`, tagID).
		Delete(); err != nil {
		return false, fmt.Errorf("failed to delete tag links: %w", err)
	}

	res, err := r.db.ModelContext(ctx, (*Tag)(nil)).
		Where(`"tagId" = ?`, tagID).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete tag: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// TagArticleCounts returns the number of linked articles per tag id.
// A nil slice counts every tag.
func (r *Repository) TagArticleCounts(ctx context.Context, tagIDs []int) (map[int]int, error) {
	var rows []idCount
	query := r.db.ModelContext(ctx, (*ArticleTag)(nil)).
		ColumnExpr(`"t"."tagId" AS "id"`).
		ColumnExpr(`count(*) AS "count"`).
		GroupExpr(`"t"."tagId"`)

	if tagIDs != nil {
		if len(tagIDs) == 0 {
			return map[int]int{}, nil
		}
		query = query.Where(`"t"."tagId" IN (?)`, pg.In(tagIDs))
	}

	if err := query.Select(&rows); err != nil {
		return nil, fmt.Errorf("failed to count tag articles: %w", err)
	}

	return countsByID(rows), nil
}
