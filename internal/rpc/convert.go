package rpc

import "github.com/daniilsolovey/blog-cms/internal/blog"

func mapList[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewTag(t blog.Tag) Tag {
	return Tag{
		ID:           t.ID,
		Name:         t.Name,
		Color:        t.Color,
		ArticleCount: t.ArticleCount,
	}
}

func NewArticleSummary(a blog.Article) ArticleSummary {
	return ArticleSummary{
		ID:          a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		Summary:     a.Summary,
		CoverImage:  a.CoverImage,
		ViewCount:   a.ViewCount,
		PublishedAt: a.PublishedAt,
		Comments:    a.CommentCount,
		Tags: mapList(a.Tags, func(at blog.ArticleTag) Tag {
			return NewTag(at.Tag)
		}),
	}
}

func NewArticle(a blog.Article) Article {
	return Article{
		ArticleSummary: NewArticleSummary(a),
		Content:        a.Content,
	}
}

func NewArticleList(p blog.Page[blog.Article]) ArticleList {
	return ArticleList{
		Items:      mapList(p.Items, NewArticleSummary),
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      p.Total,
		TotalPages: p.TotalPages,
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
	}
}

func NewProfile(p blog.Profile) Profile {
	return Profile{
		Title:    p.Title,
		Avatar:   p.Avatar,
		Bio:      p.Bio,
		Github:   p.Github,
		Twitter:  p.Twitter,
		Linkedin: p.Linkedin,
		Email:    p.Email,
		Location: p.Location,
	}
}
