package blog

import (
	"slices"
	"time"

	"github.com/daniilsolovey/blog-cms/internal/db"
)

const (
	recentPerKind  = 5
	recentActivity = 10
)

type ActivityType string

const (
	ActivityArticle ActivityType = "article"
	ActivityComment ActivityType = "comment"
	ActivityProject ActivityType = "project"
)

// Activity is one entry of the recent activity feed.
// Exactly one of Article, Comment and Project is set, matching Type.
type Activity struct {
	Type      ActivityType
	CreatedAt time.Time

	Article *db.Article
	Comment *db.Comment
	Project *db.Project
}

func articleActivity(a db.Article) Activity {
	return Activity{Type: ActivityArticle, CreatedAt: a.CreatedAt, Article: &a}
}

func commentActivity(c db.Comment) Activity {
	return Activity{Type: ActivityComment, CreatedAt: c.CreatedAt, Comment: &c}
}

func projectActivity(p db.Project) Activity {
	return Activity{Type: ActivityProject, CreatedAt: p.CreatedAt, Project: &p}
}

// mergeActivities joins the feeds newest first and keeps at most limit entries.
// Entries with equal timestamps keep the order of articles, comments, projects.
func mergeActivities(limit int, articles []db.Article, comments []db.Comment, projects []db.Project) []Activity {
	items := make([]Activity, 0, len(articles)+len(comments)+len(projects))
	for _, a := range articles {
		items = append(items, articleActivity(a))
	}
	for _, c := range comments {
		items = append(items, commentActivity(c))
	}
	for _, p := range projects {
		items = append(items, projectActivity(p))
	}

	slices.SortStableFunc(items, func(a, b Activity) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	if len(items) > limit {
		items = items[:limit]
	}

	return items
}
