package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

type CommentFilter struct {
	ArticleID *int
	Status    *string
	Keyword   *string
}

type CommentPatch struct {
	Content *string
	Status  *string
}

func applyCommentFilter(q *pg.Query, f CommentFilter) *pg.Query {
	if f.ArticleID != nil {
		q = q.Where(`"t"."articleId" = ?`, *f.ArticleID)
	}

	if f.Status != nil {
		q = q.Where(`"t"."status" = ?`, *f.Status)
	}

	if f.Keyword != nil && *f.Keyword != "" {
		pattern := likePattern(*f.Keyword)
		q = q.WhereGroup(func(q *pg.Query) (*pg.Query, error) {
			q = q.WhereOr(`"t"."author" ILIKE ?`, pattern).
				WhereOr(`"t"."email" ILIKE ?`, pattern).
				WhereOr(`"t"."content" ILIKE ?`, pattern)
			return q, nil
		})
	}

	return q
}

// Comments returns a page of comments with their article, newest first.
func (r *Repository) Comments(ctx context.Context, f CommentFilter, p Pager) ([]Comment, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	var comments []Comment
	query := applyCommentFilter(r.db.ModelContext(ctx, &comments).Relation(Columns.Comment.Article), f)

	err := p.apply(query).
		OrderExpr(`"t"."createdAt" DESC, "t"."commentId" DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}

	return comments, nil
}

func (r *Repository) CommentsCount(ctx context.Context, f CommentFilter) (int, error) {
	query := applyCommentFilter(r.db.ModelContext(ctx, (*Comment)(nil)), f)

	count, err := query.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get comments count: %w", err)
	}

	return count, nil
}

func (r *Repository) CommentByID(ctx context.Context, commentID int) (*Comment, error) {
	comment := &Comment{}
	err := r.db.ModelContext(ctx, comment).
		Relation(Columns.Comment.Article).
		Where(`"t"."commentId" = ?`, commentID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get comment by id: %w", err)
	}

	return comment, nil
}

// RecentComments returns the latest comments with their article.
func (r *Repository) RecentComments(ctx context.Context, limit int) ([]Comment, error) {
	var comments []Comment
	err := r.db.ModelContext(ctx, &comments).
		Relation(Columns.Comment.Article).
		OrderExpr(`"t"."createdAt" DESC, "t"."commentId" DESC`).
		Limit(limit).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query recent comments: %w", err)
	}

	return comments, nil
}

func (r *Repository) InsertComment(ctx context.Context, comment *Comment) error {
	if _, err := r.db.ModelContext(ctx, comment).Returning("*").Insert(); err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	return nil
}

func (r *Repository) UpdateComment(ctx context.Context, commentID int, p CommentPatch) (bool, error) {
	q := r.db.ModelContext(ctx, (*Comment)(nil))
	if p.Content != nil {
		q = set(q, Columns.Comment.Content, *p.Content)
	}
	if p.Status != nil {
		q = set(q, Columns.Comment.Status, *p.Status)
	}

	res, err := q.Set(`"updatedAt" = NOW()`).
		Where(`"commentId" = ?`, commentID).
		Update()
	if err != nil {
		return false, fmt.Errorf("failed to update comment: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) DeleteComment(ctx context.Context, commentID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Comment)(nil)).
		Where(`"commentId" = ?`, commentID).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete comment: %w", err)
	}

	return res.RowsAffected() > 0, nil
}
