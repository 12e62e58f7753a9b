package rpc

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/blog-cms/internal/blog"
)

//go:generate zenrpc

type ArticleReader interface {
	PublishedArticles(ctx context.Context, q blog.ArticleQuery) (blog.Page[blog.Article], error)
	ArticleBySlug(ctx context.Context, slug string) (*blog.Article, error)
}

type TagReader interface {
	Tags(ctx context.Context) ([]blog.Tag, error)
	PopularTags(ctx context.Context, limit int) ([]blog.Tag, error)
}

type ProjectReader interface {
	Projects(ctx context.Context, featured *bool) ([]blog.Project, error)
}

type ProfileReader interface {
	Profile(ctx context.Context) (*blog.Profile, error)
}

// BlogService exposes the public read side of the blog.
type BlogService struct {
	zenrpc.Service

	articles ArticleReader
	tags     TagReader
	projects ProjectReader
	profile  ProfileReader
	log      *slog.Logger
}

func NewBlogService(articles ArticleReader, tags TagReader, projects ProjectReader, profile ProfileReader, log *slog.Logger) *BlogService {
	return &BlogService{
		articles: articles,
		tags:     tags,
		projects: projects,
		profile:  profile,
		log:      log,
	}
}

// Articles returns published articles newest first.
//
//zenrpc:filter optional keyword, tag and pagination filter
//zenrpc:return page of article summaries
//zenrpc:400 invalid pagination
//zenrpc:500 internal server error
func (s *BlogService) Articles(ctx context.Context, filter ArticleFilter) (ArticleList, error) {
	page, err := s.articles.PublishedArticles(ctx, filter.ToModel())
	if err != nil {
		return ArticleList{}, s.newError(ctx, err)
	}

	return NewArticleList(page), nil
}

// ArticleBySlug returns the full article and counts the view.
//
//zenrpc:slug article slug
//zenrpc:return article with content
//zenrpc:400 slug is required
//zenrpc:404 article not found
//zenrpc:500 internal server error
func (s *BlogService) ArticleBySlug(ctx context.Context, slug string) (*Article, error) {
	if slug == "" {
		return nil, zenrpc.NewStringError(http.StatusBadRequest, "slug is required")
	}

	a, err := s.articles.ArticleBySlug(ctx, slug)
	if err != nil {
		return nil, s.newError(ctx, err)
	}

	article := NewArticle(*a)
	return &article, nil
}

// Tags returns all tags with their article counts.
//
//zenrpc:return list of tags
//zenrpc:500 internal server error
func (s *BlogService) Tags(ctx context.Context) ([]Tag, error) {
	tags, err := s.tags.Tags(ctx)
	if err != nil {
		return nil, s.newError(ctx, err)
	}

	return mapList(tags, NewTag), nil
}

// PopularTags returns tags ordered by article count.
//
//zenrpc:limit=10 number of tags
//zenrpc:return list of tags
//zenrpc:400 limit out of range
//zenrpc:500 internal server error
func (s *BlogService) PopularTags(ctx context.Context, limit *int) ([]Tag, error) {
	n := blog.DefaultPopularTags
	if limit != nil {
		n = *limit
	}

	tags, err := s.tags.PopularTags(ctx, n)
	if err != nil {
		return nil, s.newError(ctx, err)
	}

	return mapList(tags, NewTag), nil
}

// Projects returns portfolio projects, featured first.
//
//zenrpc:featured optional featured filter
//zenrpc:return list of projects
//zenrpc:500 internal server error
func (s *BlogService) Projects(ctx context.Context, featured *bool) ([]Project, error) {
	projects, err := s.projects.Projects(ctx, featured)
	if err != nil {
		return nil, s.newError(ctx, err)
	}

	return mapList(projects, NewProject), nil
}

// Profile returns the site profile.
//
//zenrpc:return site profile
//zenrpc:500 internal server error
func (s *BlogService) Profile(ctx context.Context) (*Profile, error) {
	p, err := s.profile.Profile(ctx)
	if err != nil {
		return nil, s.newError(ctx, err)
	}

	profile := NewProfile(*p)
	return &profile, nil
}

// newError converts domain errors into RPC errors. Unknown errors are logged and hidden.
func (s *BlogService) newError(ctx context.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, blog.ErrValidation):
		code = http.StatusBadRequest
	case errors.Is(err, blog.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, blog.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, blog.ErrUnauthorized):
		code = http.StatusUnauthorized
	default:
		s.log.ErrorContext(ctx, "rpc call failed", "error", err)
		return zenrpc.NewStringError(code, "internal error")
	}

	return zenrpc.NewStringError(code, blog.Message(err))
}
