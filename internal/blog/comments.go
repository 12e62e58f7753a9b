package blog

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/daniilsolovey/blog-cms/internal/db"
)

type CommentManager struct {
	db        *db.Repository
	sanitizer *Sanitizer
}

func NewCommentManager(repo *db.Repository, sanitizer *Sanitizer) *CommentManager {
	return &CommentManager{
		db:        repo,
		sanitizer: sanitizer,
	}
}

// Create stores a visitor comment as PENDING. The article must exist.
func (m *CommentManager) Create(ctx context.Context, in CommentInput) (*Comment, error) {
	article, err := m.db.ArticleByID(ctx, in.ArticleID)
	if err != nil {
		return nil, fmt.Errorf("db get article by id: %w", err)
	} else if article == nil {
		return nil, ErrArticleNotFound
	}

	content := m.sanitizer.Text(in.Content)
	author := m.sanitizer.Text(in.Author)
	if content == "" || author == "" {
		return nil, validationError("content and author must not be empty")
	}

	comment := &db.Comment{
		Content:   content,
		Author:    author,
		Email:     in.Email,
		Website:   in.Website,
		IP:        optional(in.IP),
		UserAgent: optional(in.UserAgent),
		ArticleID: in.ArticleID,
	}
	if err := m.db.InsertComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("db insert comment: %w", err)
	}
	comment.Article = article

	result := NewComment(*comment)
	return &result, nil
}

// Comments returns a page of comments with their article, newest first.
func (m *CommentManager) Comments(ctx context.Context, q CommentQuery) (Page[Comment], error) {
	paging, err := q.Paging.Normalize()
	if err != nil {
		return Page[Comment]{}, err
	}
	if q.Status != nil {
		if err := checkCommentStatus(*q.Status); err != nil {
			return Page[Comment]{}, err
		}
	}

	filter := db.CommentFilter{ArticleID: q.ArticleID, Status: q.Status, Keyword: q.Keyword}

	list, err := m.db.Comments(ctx, filter, paging.pager())
	if err != nil {
		return Page[Comment]{}, fmt.Errorf("db get comments: %w", err)
	}

	total, err := m.db.CommentsCount(ctx, filter)
	if err != nil {
		return Page[Comment]{}, fmt.Errorf("db get comments count: %w", err)
	}

	return newPage(Map(list, NewComment), paging, total), nil
}

func (m *CommentManager) PendingComments(ctx context.Context, q CommentQuery) (Page[Comment], error) {
	return m.commentsWithStatus(ctx, q, CommentPending)
}

func (m *CommentManager) ApprovedComments(ctx context.Context, q CommentQuery) (Page[Comment], error) {
	return m.commentsWithStatus(ctx, q, CommentApproved)
}

func (m *CommentManager) commentsWithStatus(ctx context.Context, q CommentQuery, status string) (Page[Comment], error) {
	q.Status = &status
	return m.Comments(ctx, q)
}

func (m *CommentManager) CommentByID(ctx context.Context, commentID int) (*Comment, error) {
	comment, err := m.db.CommentByID(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("db get comment by id: %w", err)
	} else if comment == nil {
		return nil, ErrCommentNotFound
	}

	result := NewComment(*comment)
	return &result, nil
}

func (m *CommentManager) Update(ctx context.Context, commentID int, in CommentUpdate) (*Comment, error) {
	if in.Status != nil {
		if err := checkCommentStatus(*in.Status); err != nil {
			return nil, err
		}
	}

	patch := db.CommentPatch{Status: in.Status}
	if in.Content != nil {
		content := m.sanitizer.Text(*in.Content)
		if content == "" {
			return nil, validationError("content must not be empty")
		}
		patch.Content = &content
	}

	ok, err := m.db.UpdateComment(ctx, commentID, patch)
	if err != nil {
		return nil, fmt.Errorf("db update comment: %w", err)
	} else if !ok {
		return nil, ErrCommentNotFound
	}

	return m.CommentByID(ctx, commentID)
}

// Approve marks the comment APPROVED. Approving twice is a no-op.
func (m *CommentManager) Approve(ctx context.Context, commentID int) (*Comment, error) {
	status := CommentApproved
	return m.Update(ctx, commentID, CommentUpdate{Status: &status})
}

// Reject marks the comment REJECTED. Rejecting twice is a no-op.
func (m *CommentManager) Reject(ctx context.Context, commentID int) (*Comment, error) {
	status := CommentRejected
	return m.Update(ctx, commentID, CommentUpdate{Status: &status})
}

func (m *CommentManager) Remove(ctx context.Context, commentID int) (*Comment, error) {
	comment, err := m.CommentByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	ok, err := m.db.DeleteComment(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("db delete comment: %w", err)
	} else if !ok {
		return nil, ErrCommentNotFound
	}

	return comment, nil
}

// Stats counts comments by status, optionally for a single article.
func (m *CommentManager) Stats(ctx context.Context, articleID *int) (CommentStats, error) {
	var stats CommentStats

	g, gctx := errgroup.WithContext(ctx)
	count := func(dst *int, status *string) {
		g.Go(func() error {
			n, err := m.db.CommentsCount(gctx, db.CommentFilter{ArticleID: articleID, Status: status})
			if err != nil {
				return fmt.Errorf("db get comments count: %w", err)
			}
			*dst = n
			return nil
		})
	}

	pending, approved, rejected := CommentPending, CommentApproved, CommentRejected
	count(&stats.Total, nil)
	count(&stats.Pending, &pending)
	count(&stats.Approved, &approved)
	count(&stats.Rejected, &rejected)

	if err := g.Wait(); err != nil {
		return CommentStats{}, err
	}

	return stats, nil
}

func checkCommentStatus(status string) error {
	switch status {
	case CommentPending, CommentApproved, CommentRejected:
		return nil
	}

	return validationError("status must be one of %s, %s, %s", CommentPending, CommentApproved, CommentRejected)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
