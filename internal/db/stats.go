package db

import (
	"context"
	"fmt"

	"github.com/go-pg/pg/v10"
)

// MonthlyCount is a per-month aggregate for a single year.
type MonthlyCount struct {
	Month int `pg:"month"`
	Count int `pg:"count"`
}

func (r *Repository) TagsCount(ctx context.Context) (int, error) {
	count, err := r.db.ModelContext(ctx, (*Tag)(nil)).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get tags count: %w", err)
	}

	return count, nil
}

// TotalViews sums viewCount over all articles.
func (r *Repository) TotalViews(ctx context.Context) (int, error) {
	var total int
	err := r.db.ModelContext(ctx, (*Article)(nil)).
		ColumnExpr(`COALESCE(SUM("t"."viewCount"), 0)`).
		Select(pg.Scan(&total))
	if err != nil {
		return 0, fmt.Errorf("failed to sum article views: %w", err)
	}

	return total, nil
}

// TopViewedArticles returns the most viewed articles.
func (r *Repository) TopViewedArticles(ctx context.Context, limit int) ([]Article, error) {
	var articles []Article
	err := r.db.ModelContext(ctx, &articles).
		OrderExpr(`"t"."viewCount" DESC, "t"."articleId" ASC`).
		Limit(limit).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query top viewed articles: %w", err)
	}

	return articles, nil
}

func (r *Repository) RecentArticles(ctx context.Context, limit int) ([]Article, error) {
	var articles []Article
	err := r.db.ModelContext(ctx, &articles).
		OrderExpr(`"t"."createdAt" DESC, "t"."articleId" DESC`).
		Limit(limit).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query recent articles: %w", err)
	}

	return articles, nil
}

// MonthlyArticles counts articles created per month of the year.
func (r *Repository) MonthlyArticles(ctx context.Context, year int) ([]MonthlyCount, error) {
	return r.monthly(ctx, (*Article)(nil), `count(*)`, year)
}

// MonthlyComments counts comments created per month of the year.
func (r *Repository) MonthlyComments(ctx context.Context, year int) ([]MonthlyCount, error) {
	return r.monthly(ctx, (*Comment)(nil), `count(*)`, year)
}

// MonthlyViews sums views of articles created per month of the year.
func (r *Repository) MonthlyViews(ctx context.Context, year int) ([]MonthlyCount, error) {
	return r.monthly(ctx, (*Article)(nil), `COALESCE(SUM("t"."viewCount"), 0)`, year)
}

func (r *Repository) monthly(ctx context.Context, model interface{}, aggregate string, year int) ([]MonthlyCount, error) {
	var rows []MonthlyCount
	err := r.db.ModelContext(ctx, model).
		ColumnExpr(`EXTRACT(MONTH FROM "t"."createdAt")::int AS "month"`).
		ColumnExpr(aggregate+` AS "count"`).
		Where(`EXTRACT(YEAR FROM "t"."createdAt") = ?`, year).
		GroupExpr(`EXTRACT(MONTH FROM "t"."createdAt")`).
		OrderExpr(`"month" ASC`).
		Select(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly stats: %w", err)
	}

	return rows, nil
}
