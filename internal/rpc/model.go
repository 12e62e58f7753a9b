package rpc

import (
	"time"

	"github.com/daniilsolovey/blog-cms/internal/blog"
)

type ArticleFilter struct {
	//keyword optional search in title, content and summary
	Keyword *string `json:"keyword,omitempty"`
	//tagId optional tag filter
	TagID *int `json:"tagId,omitempty"`
	//page=1 page number (1-based)
	Page *int `json:"page,omitempty"`
	//limit=10 items per page
	Limit *int `json:"limit,omitempty"`
}

func (f ArticleFilter) ToModel() blog.ArticleQuery {
	q := blog.ArticleQuery{
		Keyword: f.Keyword,
		TagID:   f.TagID,
	}
	if f.Page != nil {
		q.Page = *f.Page
	}
	if f.Limit != nil {
		q.Limit = *f.Limit
	}

	return q
}

type Tag struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Color        *string `json:"color"`
	ArticleCount int     `json:"articleCount"`
}

type ArticleSummary struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Summary     *string    `json:"summary"`
	CoverImage  *string    `json:"coverImage"`
	ViewCount   int        `json:"viewCount"`
	PublishedAt *time.Time `json:"publishedAt"`
	Comments    int        `json:"comments"`
	Tags        []Tag      `json:"tags"`
}

type Article struct {
	ArticleSummary
	Content string `json:"content"`
}

type ArticleList struct {
	Items      []ArticleSummary `json:"items"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Total      int              `json:"total"`
	TotalPages int              `json:"totalPages"`
}

type Project struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	ProjectURL  *string `json:"projectUrl"`
	GithubURL   *string `json:"githubUrl"`
	TechStack   *string `json:"techStack"`
	Featured    bool    `json:"featured"`
}

type Profile struct {
	Title    *string `json:"title"`
	Avatar   *string `json:"avatar"`
	Bio      *string `json:"bio"`
	Github   *string `json:"github"`
	Twitter  *string `json:"twitter"`
	Linkedin *string `json:"linkedin"`
	Email    *string `json:"email"`
	Location *string `json:"location"`
}
