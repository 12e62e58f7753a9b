package blog

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/daniilsolovey/blog-cms/internal/db"
)

const topViewedArticles = 10

type Overview struct {
	Articles        int
	Comments        int
	Tags            int
	Projects        int
	TotalViews      int
	PendingComments int
}

type ArticleStats struct {
	Published int
	Draft     int
	Total     int
	TopViewed []Article
}

type MonthlyStat struct {
	Month    int
	Articles int
	Comments int
	Views    int
}

type MonthlyStats struct {
	Year int
	Data []MonthlyStat
}

type StatsManager struct {
	db  *db.Repository
	now func() time.Time
}

func NewStatsManager(repo *db.Repository) *StatsManager {
	return &StatsManager{
		db:  repo,
		now: time.Now,
	}
}

// Overview collects the dashboard counters concurrently.
func (m *StatsManager) Overview(ctx context.Context) (Overview, error) {
	var o Overview
	pending := CommentPending

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		o.Articles, err = m.db.ArticlesCount(gctx, db.ArticleFilter{})
		return err
	})
	g.Go(func() (err error) {
		o.Comments, err = m.db.CommentsCount(gctx, db.CommentFilter{})
		return err
	})
	g.Go(func() (err error) {
		o.Tags, err = m.db.TagsCount(gctx)
		return err
	})
	g.Go(func() (err error) {
		o.Projects, err = m.db.ProjectsCount(gctx, nil)
		return err
	})
	g.Go(func() (err error) {
		o.TotalViews, err = m.db.TotalViews(gctx)
		return err
	})
	g.Go(func() (err error) {
		o.PendingComments, err = m.db.CommentsCount(gctx, db.CommentFilter{Status: &pending})
		return err
	})

	if err := g.Wait(); err != nil {
		return Overview{}, fmt.Errorf("db get overview: %w", err)
	}

	return o, nil
}

func (m *StatsManager) ArticleStats(ctx context.Context) (ArticleStats, error) {
	var (
		s   ArticleStats
		top []db.Article
	)
	published, draft := StatusPublished, StatusDraft

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		s.Published, err = m.db.ArticlesCount(gctx, db.ArticleFilter{Status: &published})
		return err
	})
	g.Go(func() (err error) {
		s.Draft, err = m.db.ArticlesCount(gctx, db.ArticleFilter{Status: &draft})
		return err
	})
	g.Go(func() (err error) {
		s.Total, err = m.db.ArticlesCount(gctx, db.ArticleFilter{})
		return err
	})
	g.Go(func() (err error) {
		top, err = m.db.TopViewedArticles(gctx, topViewedArticles)
		return err
	})

	if err := g.Wait(); err != nil {
		return ArticleStats{}, fmt.Errorf("db get article stats: %w", err)
	}

	counts, err := m.db.CommentCounts(ctx, articleIDs(top))
	if err != nil {
		return ArticleStats{}, fmt.Errorf("db get comment counts: %w", err)
	}
	s.TopViewed = NewArticles(top, nil, counts)

	return s, nil
}

// MonthlyStats returns twelve per-month entries for the year. A zero year means the current one.
func (m *StatsManager) MonthlyStats(ctx context.Context, year int) (MonthlyStats, error) {
	if year == 0 {
		year = m.now().Year()
	}
	if year < 1 {
		return MonthlyStats{}, validationError("year must be positive")
	}

	var articles, comments, views []db.MonthlyCount

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		articles, err = m.db.MonthlyArticles(gctx, year)
		return err
	})
	g.Go(func() (err error) {
		comments, err = m.db.MonthlyComments(gctx, year)
		return err
	})
	g.Go(func() (err error) {
		views, err = m.db.MonthlyViews(gctx, year)
		return err
	})

	if err := g.Wait(); err != nil {
		return MonthlyStats{}, fmt.Errorf("db get monthly stats: %w", err)
	}

	return MonthlyStats{Year: year, Data: fillMonthly(articles, comments, views)}, nil
}

// TagStats returns every tag with its article count, most used first.
func (m *StatsManager) TagStats(ctx context.Context) ([]Tag, error) {
	list, err := m.db.PopularTags(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("db get popular tags: %w", err)
	}

	counts, err := m.db.TagArticleCounts(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("db get tag article counts: %w", err)
	}

	return NewTags(list, counts), nil
}

// RecentActivity merges the latest articles, comments and projects into one feed.
func (m *StatsManager) RecentActivity(ctx context.Context) ([]Activity, error) {
	var (
		articles []db.Article
		comments []db.Comment
		projects []db.Project
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		articles, err = m.db.RecentArticles(gctx, recentPerKind)
		return err
	})
	g.Go(func() (err error) {
		comments, err = m.db.RecentComments(gctx, recentPerKind)
		return err
	})
	g.Go(func() (err error) {
		projects, err = m.db.RecentProjects(gctx, recentPerKind)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("db get recent activity: %w", err)
	}

	return mergeActivities(recentActivity, articles, comments, projects), nil
}

// fillMonthly spreads grouped rows over months 1..12, zero-filling the gaps.
func fillMonthly(articles, comments, views []db.MonthlyCount) []MonthlyStat {
	data := make([]MonthlyStat, 12)
	for i := range data {
		data[i].Month = i + 1
	}

	apply := func(rows []db.MonthlyCount, set func(*MonthlyStat, int)) {
		for _, row := range rows {
			if row.Month >= 1 && row.Month <= 12 {
				set(&data[row.Month-1], row.Count)
			}
		}
	}

	apply(articles, func(s *MonthlyStat, n int) { s.Articles = n })
	apply(comments, func(s *MonthlyStat, n int) { s.Comments = n })
	apply(views, func(s *MonthlyStat, n int) { s.Views = n })

	return data
}
