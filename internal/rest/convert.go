package rest

import (
	"unicode/utf8"

	"github.com/daniilsolovey/blog-cms/internal/blog"
	"github.com/daniilsolovey/blog-cms/internal/db"
)

// deref returns the pointed value, or the zero value the managers read as "use the default".
func deref[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}

func newPaging(page, limit *int) blog.Paging {
	return blog.Paging{Page: deref(page), Limit: deref(limit)}
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewPagination[T any](p blog.Page[T]) Pagination {
	return Pagination{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}

func NewTag(t blog.Tag) Tag {
	return Tag{
		ID:        t.ID,
		Name:      t.Name,
		Color:     t.Color,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
		Count:     TagCount{Articles: t.ArticleCount},
	}
}

func NewArticleTag(at blog.ArticleTag) ArticleTag {
	return ArticleTag{
		ID:        at.ID,
		ArticleID: at.ArticleID,
		TagID:     at.TagID,
		CreatedAt: at.CreatedAt,
		Tag: TagRef{
			ID:    at.Tag.ID,
			Name:  at.Tag.Name,
			Color: at.Tag.Color,
		},
	}
}

func NewArticle(a blog.Article) Article {
	return Article{
		ID:          a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		Content:     a.Content,
		Summary:     a.Summary,
		CoverImage:  a.CoverImage,
		ViewCount:   a.ViewCount,
		Status:      a.Status,
		IsPublished: a.IsPublished,
		PublishedAt: a.PublishedAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
		Tags:        Map(a.Tags, NewArticleTag),
		Count:       ArticleCount{Comments: a.CommentCount},
	}
}

func NewArticleList(p blog.Page[blog.Article]) ArticleList {
	return ArticleList{
		Data:       Map(p.Items, NewArticle),
		Pagination: NewPagination(p),
	}
}

func NewArticleRef(a *db.Article) *ArticleRef {
	if a == nil {
		return nil
	}

	return &ArticleRef{
		ID:    a.ID,
		Title: a.Title,
		Slug:  a.Slug,
	}
}

func NewComment(c blog.Comment) Comment {
	return Comment{
		ID:        c.ID,
		Content:   c.Content,
		Author:    c.Author,
		Email:     c.Email,
		Website:   c.Website,
		IP:        c.IP,
		UserAgent: c.UserAgent,
		Status:    c.Status,
		ArticleID: c.ArticleID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Article:   NewArticleRef(c.Article),
	}
}

func NewCommentList(p blog.Page[blog.Comment]) CommentList {
	return CommentList{
		Data:       Map(p.Items, NewComment),
		Pagination: NewPagination(p),
	}
}

func NewCommentStats(s blog.CommentStats) CommentStats {
	return CommentStats{
		Total:    s.Total,
		Pending:  s.Pending,
		Approved: s.Approved,
		Rejected: s.Rejected,
	}
}

func NewProject(p blog.Project) Project {
	return Project{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		ProjectURL:  p.ProjectURL,
		GithubURL:   p.GithubURL,
		TechStack:   p.TechStack,
		Featured:    p.Featured,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func NewProfile(p blog.Profile) Profile {
	return Profile{
		ID:        p.ID,
		Title:     p.Title,
		Avatar:    p.Avatar,
		Bio:       p.Bio,
		Github:    p.Github,
		Twitter:   p.Twitter,
		Linkedin:  p.Linkedin,
		Email:     p.Email,
		Phone:     p.Phone,
		Location:  p.Location,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func NewUser(u blog.User) User {
	return User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func NewLoginResponse(r blog.LoginResult) LoginResponse {
	return LoginResponse{
		Token: r.Token,
		User: LoginUser{
			ID:       r.User.ID,
			Username: r.User.Username,
			Email:    r.User.Email,
		},
	}
}

func NewOverview(o blog.Overview) Overview {
	return Overview{
		Articles:        o.Articles,
		Comments:        o.Comments,
		Tags:            o.Tags,
		Projects:        o.Projects,
		TotalViews:      o.TotalViews,
		PendingComments: o.PendingComments,
	}
}

func NewTopViewedArticle(a blog.Article) TopViewedArticle {
	return TopViewedArticle{
		ID:        a.ID,
		Title:     a.Title,
		ViewCount: a.ViewCount,
		CreatedAt: a.CreatedAt,
		Count:     ArticleCount{Comments: a.CommentCount},
	}
}

func NewArticleStats(s blog.ArticleStats) ArticleStats {
	return ArticleStats{
		Published: s.Published,
		Draft:     s.Draft,
		Total:     s.Total,
		TopViewed: Map(s.TopViewed, NewTopViewedArticle),
	}
}

func NewMonthlyStats(s blog.MonthlyStats) MonthlyStats {
	return MonthlyStats{
		Year: s.Year,
		Data: Map(s.Data, func(m blog.MonthlyStat) MonthlyStat {
			return MonthlyStat{Month: m.Month, Articles: m.Articles, Comments: m.Comments, Views: m.Views}
		}),
	}
}

func NewTagStat(t blog.Tag) TagStat {
	return TagStat{
		ID:           t.ID,
		Name:         t.Name,
		Color:        t.Color,
		ArticleCount: t.ArticleCount,
	}
}

func NewActivity(a blog.Activity) Activity {
	activity := Activity{
		Type:      string(a.Type),
		CreatedAt: a.CreatedAt,
	}

	switch a.Type {
	case blog.ActivityArticle:
		activity.ID = a.Article.ID
		activity.Title = a.Article.Title
	case blog.ActivityComment:
		activity.ID = a.Comment.ID
		activity.Author = a.Comment.Author
		activity.Content = a.Comment.Content
		activity.Article = NewArticleRef(a.Comment.Article)
	case blog.ActivityProject:
		activity.ID = a.Project.ID
		activity.Title = a.Project.Title
	}

	return activity
}
