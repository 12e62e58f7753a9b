package blog

import (
	"github.com/daniilsolovey/blog-cms/internal/db"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewTag(t db.Tag, articleCount int) Tag {
	return Tag{
		Tag:          t,
		ArticleCount: articleCount,
	}
}

// NewTags attaches article counts to tags. Tags missing from counts get zero.
func NewTags(tags []db.Tag, counts map[int]int) []Tag {
	result := make([]Tag, len(tags))
	for i := range tags {
		result[i] = NewTag(tags[i], counts[tags[i].ID])
	}
	return result
}

func NewArticleTag(link db.ArticleTag) ArticleTag {
	at := ArticleTag{
		ID:        link.ID,
		ArticleID: link.ArticleID,
		TagID:     link.TagID,
		CreatedAt: link.CreatedAt,
	}

	if link.Tag != nil {
		at.Tag = NewTag(*link.Tag, 0)
	}

	return at
}

// NewArticles joins articles with their tag links and comment counts.
func NewArticles(articles []db.Article, links []db.ArticleTag, commentCounts map[int]int) []Article {
	linksByArticle := make(map[int][]ArticleTag, len(articles))
	for _, link := range links {
		linksByArticle[link.ArticleID] = append(linksByArticle[link.ArticleID], NewArticleTag(link))
	}

	result := make([]Article, len(articles))
	for i := range articles {
		tags := linksByArticle[articles[i].ID]
		if tags == nil {
			tags = []ArticleTag{}
		}

		result[i] = Article{
			Article:      articles[i],
			Tags:         tags,
			CommentCount: commentCounts[articles[i].ID],
		}
	}

	return result
}

func NewComment(c db.Comment) Comment {
	return Comment{Comment: c}
}

func NewProject(p db.Project) Project {
	return Project{Project: p}
}

func NewProfile(p db.Profile) Profile {
	return Profile{Profile: p}
}

func NewUser(u db.User) User {
	return User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func articleIDs(articles []db.Article) []int {
	ids := make([]int, len(articles))
	for i := range articles {
		ids[i] = articles[i].ID
	}
	return ids
}

func tagIDs(tags []db.Tag) []int {
	ids := make([]int, len(tags))
	for i := range tags {
		ids[i] = tags[i].ID
	}
	return ids
}
