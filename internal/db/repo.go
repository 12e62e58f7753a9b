package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-pg/pg/v10"
)

const (
	ArticleStatusDraft     = "DRAFT"
	ArticleStatusPublished = "PUBLISHED"

	CommentStatusPending  = "PENDING"
	CommentStatusApproved = "APPROVED"
	CommentStatusRejected = "REJECTED"

	// ProfileID is the fixed key of the single profile row.
	ProfileID = 1

	uniqueViolationCode = "23505"
)

type DB interface {
	Ping(ctx context.Context) error
	Close() error
}

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// RunInTransaction runs fn against a repository bound to a transaction.
// When the repository already wraps a transaction fn joins it.
func (r *Repository) RunInTransaction(ctx context.Context, fn func(repo *Repository) error) error {
	db, ok := r.db.(*pg.DB)
	if !ok {
		return fn(r)
	}

	return db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		return fn(New(tx))
	})
}

// Pager describes a 1-based page of a list query.
type Pager struct {
	Page     int
	PageSize int
}

func (p Pager) validate() error {
	if p.Page < 1 || p.PageSize < 1 {
		return fmt.Errorf(
			"page or pageSize must be greater than 0: page=%d, pageSize=%d",
			p.Page, p.PageSize,
		)
	}

	return nil
}

func (p Pager) apply(q *pg.Query) *pg.Query {
	return q.Limit(p.PageSize).Offset((p.Page - 1) * p.PageSize)
}

// IsUniqueViolation reports whether err is a postgres unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr pg.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == uniqueViolationCode
	}

	return false
}

// likePattern builds a substring ILIKE pattern with wildcards escaped.
func likePattern(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(s) + "%"
}

// set adds `"column" = value` to an UPDATE query.
func set(q *pg.Query, column string, value interface{}) *pg.Query {
	return q.Set("? = ?", pg.Ident(column), value)
}

type idCount struct {
	ID    int `pg:"id"`
	Count int `pg:"count"`
}

func countsByID(rows []idCount) map[int]int {
	result := make(map[int]int, len(rows))
	for _, row := range rows {
		result[row.ID] = row.Count
	}

	return result
}
