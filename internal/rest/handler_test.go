package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/daniilsolovey/blog-cms/docs"
	"github.com/daniilsolovey/blog-cms/internal/blog"
	"github.com/daniilsolovey/blog-cms/internal/db"
)

const testToken = "test-token"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRouter(s Services, opts Options) *echo.Echo {
	if s.Articles == nil {
		s.Articles = &mockArticleService{}
	}
	if s.Tags == nil {
		s.Tags = &mockTagService{}
	}
	if s.Comments == nil {
		s.Comments = &mockCommentService{}
	}
	if s.Projects == nil {
		s.Projects = &mockProjectService{}
	}
	if s.Profile == nil {
		s.Profile = &mockProfileService{}
	}
	if s.Stats == nil {
		s.Stats = &mockStatsService{}
	}
	if s.Auth == nil {
		s.Auth = &mockAuthService{}
	}

	return NewHandler(s, &mockTokens{valid: testToken}, &mockPinger{}, opts, testLogger()).RegisterRoutes()
}

func serve(e *echo.Echo, method, target, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func ptr[T any](v T) *T {
	return &v
}

func testArticle(id int, title string) *blog.Article {
	return &blog.Article{
		Article: db.Article{
			ID:     id,
			Title:  title,
			Slug:   strings.ToLower(strings.ReplaceAll(title, " ", "-")),
			Status: blog.StatusDraft,
		},
		Tags: []blog.ArticleTag{},
	}
}

func TestHandler_Articles(t *testing.T) {
	t.Run("ForwardsQueryAndReturnsPage", func(t *testing.T) {
		var got blog.ArticleQuery
		articles := &mockArticleService{
			articlesFunc: func(_ context.Context, q blog.ArticleQuery) (blog.Page[blog.Article], error) {
				got = q
				return blog.Page[blog.Article]{
					Items:      []blog.Article{*testArticle(1, "Hello Go")},
					Page:       2,
					Limit:      5,
					Total:      6,
					TotalPages: 2,
				}, nil
			},
		}
		e := newTestRouter(Services{Articles: articles}, Options{})

		rec := serve(e, http.MethodGet, "/articles?page=2&limit=5&keyword=go&status=PUBLISHED&tagId=3", "", "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		assert.Equal(t, blog.Paging{Page: 2, Limit: 5}, got.Paging)
		require.NotNil(t, got.Keyword)
		assert.Equal(t, "go", *got.Keyword)
		require.NotNil(t, got.Status)
		assert.Equal(t, "PUBLISHED", *got.Status)
		require.NotNil(t, got.TagID)
		assert.Equal(t, 3, *got.TagID)

		list := decode[ArticleList](t, rec)
		require.Len(t, list.Data, 1)
		assert.Equal(t, "Hello Go", list.Data[0].Title)
		assert.NotNil(t, list.Data[0].Tags)
		assert.Equal(t, Pagination{Page: 2, Limit: 5, Total: 6, TotalPages: 2}, list.Pagination)
	})

	t.Run("WithoutFiltersPassesNils", func(t *testing.T) {
		var got blog.ArticleQuery
		articles := &mockArticleService{
			articlesFunc: func(_ context.Context, q blog.ArticleQuery) (blog.Page[blog.Article], error) {
				got = q
				return blog.Page[blog.Article]{Items: []blog.Article{}}, nil
			},
		}
		e := newTestRouter(Services{Articles: articles}, Options{})

		rec := serve(e, http.MethodGet, "/articles", "", "")
		require.Equal(t, http.StatusOK, rec.Code)

		assert.Nil(t, got.Keyword)
		assert.Nil(t, got.Status)
		assert.Nil(t, got.TagID)
		assert.Equal(t, blog.Paging{}, got.Paging)
	})

	t.Run("LimitAboveMaximumReturnsValidationError", func(t *testing.T) {
		e := newTestRouter(Services{}, Options{})

		rec := serve(e, http.MethodGet, "/articles?limit=101", "", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)

		body := decode[ErrorResponse](t, rec)
		assert.Equal(t, "validation failed", body.Message)
		assert.Equal(t, "limit must not be greater than 100", body.Errors["limit"])
	})

	t.Run("UnknownStatusReturnsValidationError", func(t *testing.T) {
		e := newTestRouter(Services{}, Options{})

		rec := serve(e, http.MethodGet, "/articles?status=ARCHIVED", "", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)

		body := decode[ErrorResponse](t, rec)
		assert.Equal(t, "status must be one of DRAFT, PUBLISHED", body.Errors["status"])
	})

	t.Run("MalformedTagIDReturnsBadRequest", func(t *testing.T) {
		e := newTestRouter(Services{}, Options{})

		rec := serve(e, http.MethodGet, "/articles?tagId=abc", "", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid request parameters", decode[ErrorResponse](t, rec).Message)
	})

	t.Run("DomainValidationErrorReturnsBadRequest", func(t *testing.T) {
		articles := &mockArticleService{
			articlesFunc: func(context.Context, blog.ArticleQuery) (blog.Page[blog.Article], error) {
				return blog.Page[blog.Article]{}, &blog.Error{Kind: blog.ErrValidation, Message: "page must not be less than 1"}
			},
		}
		e := newTestRouter(Services{Articles: articles}, Options{})

		rec := serve(e, http.MethodGet, "/articles", "", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "page must not be less than 1", decode[ErrorResponse](t, rec).Message)
	})

	t.Run("UnexpectedErrorReturnsInternalError", func(t *testing.T) {
		articles := &mockArticleService{
			articlesFunc: func(context.Context, blog.ArticleQuery) (blog.Page[blog.Article], error) {
				return blog.Page[blog.Article]{}, errors.New("connection refused")
			},
		}
		e := newTestRouter(Services{Articles: articles}, Options{})

		rec := serve(e, http.MethodGet, "/articles", "", "")
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "internal error", decode[ErrorResponse](t, rec).Message)
	})

	t.Run("PublishedUsesPublishedList", func(t *testing.T) {
		called := false
		articles := &mockArticleService{
			publishedArticlesFunc: func(context.Context, blog.ArticleQuery) (blog.Page[blog.Article], error) {
				called = true
				return blog.Page[blog.Article]{Items: []blog.Article{}}, nil
			},
		}
		e := newTestRouter(Services{Articles: articles}, Options{})

		rec := serve(e, http.MethodGet, "/articles/published", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, called)
	})
}

func TestHandler_ArticleByIDAndSlug(t *testing.T) {
	articles := &mockArticleService{
		articleByIDFunc: func(_ context.Context, id int) (*blog.Article, error) {
			if id != 1 {
				return nil, blog.ErrArticleNotFound
			}
			return testArticle(1, "Hello Go"), nil
		},
		articleBySlugFunc: func(_ context.Context, slug string) (*blog.Article, error) {
			if slug != "hello-go" {
				return nil, blog.ErrArticleNotFound
			}
			a := testArticle(1, "Hello Go")
			a.ViewCount = 8
			return a, nil
		},
	}
	e := newTestRouter(Services{Articles: articles}, Options{})

	t.Run("ExistingID", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/articles/1", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, decode[Article](t, rec).ID)
	})

	t.Run("MissingIDReturnsNotFound", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/articles/99", "", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "article not found", decode[ErrorResponse](t, rec).Message)
	})

	t.Run("NonNumericIDReturnsBadRequest", func(t *testing.T) {
		for _, id := range []string{"abc", "0", "-4"} {
			rec := serve(e, http.MethodGet, "/articles/"+id, "", "")
			require.Equal(t, http.StatusBadRequest, rec.Code, id)
			assert.Equal(t, "invalid id", decode[ErrorResponse](t, rec).Message)
		}
	})

	t.Run("SlugReturnsIncrementedViewCount", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/articles/slug/hello-go", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 8, decode[Article](t, rec).ViewCount)
	})

	t.Run("UnknownSlugReturnsNotFound", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/articles/slug/nope", "", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_ArticleMutations(t *testing.T) {
	t.Run("CreateWithoutTokenIsUnauthorized", func(t *testing.T) {
		called := false
		articles := &mockArticleService{
			createFunc: func(context.Context, blog.ArticleInput) (*blog.Article, error) {
				called = true
				return testArticle(1, "x"), nil
			},
		}
		e := newTestRouter(Services{Articles: articles}, Options{})

		rec := serve(e, http.MethodPost, "/articles", `{"title":"Hello","content":"Body"}`, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "missing bearer token", decode[ErrorResponse](t, rec).Message)
		assert.False(t, called)
	})

	t.Run("CreateWithBadTokenIsUnauthorized", func(t *testing.T) {
		e := newTestRouter(Services{}, Options{})

		rec := serve(e, http.MethodPost, "/articles", `{"title":"Hello","content":"Body"}`, "forged")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "invalid or expired token", decode[ErrorResponse](t, rec).Message)
	})

	t.Run("CreateReturnsCreated", func(t *testing.T) {
		var got blog.ArticleInput
		articles := &mockArticleService{
			createFunc: func(_ context.Context, in blog.ArticleInput) (*blog.Article, error) {
				got = in
				return testArticle(7, in.Title), nil
			},
		}
		e := newTestRouter(Services{Articles: articles}, Options{})

		rec := serve(e, http.MethodPost, "/articles",
			`{"title":"Hello","content":"Body","status":"PUBLISHED","tagIds":[1,2]}`, testToken)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		assert.Equal(t, "Hello", got.Title)
		assert.Equal(t, []int{1, 2}, got.TagIDs)
		require.NotNil(t, got.Status)
		assert.Equal(t, "PUBLISHED", *got.Status)
		assert.Equal(t, 7, decode[Article](t, rec).ID)
	})

	t.Run("CreateWithoutTitleReturnsFieldError", func(t *testing.T) {
		e := newTestRouter(Services{}, Options{})

		rec := serve(e, http.MethodPost, "/articles", `{"content":"Body"}`, testToken)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "title is required", decode[ErrorResponse](t, rec).Errors["title"])
	})

	t.Run("CreateWithNonPositiveTagIDReturnsFieldError", func(t *testing.T) {
		e := newTestRouter(Services{}, Options{})

		rec := serve(e, http.MethodPost, "/articles", `{"title":"a","content":"b","tagIds":[0]}`, testToken)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("UpdateWithEmptyTagIDsClearsTags", func(t *testing.T) {
		var (
			gotID int
			got   blog.ArticleUpdate
		)
		articles := &mockArticleService{
			updateFunc: func(_ context.Context, id int, in blog.ArticleUpdate) (*blog.Article, error) {
				gotID, got = id, in
				return testArticle(id, "Hello"), nil
			},
		}
		e := newTestRouter(Services{Articles: articles}, Options{})

		rec := serve(e, http.MethodPatch, "/articles/5", `{"tagIds":[]}`, testToken)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		assert.Equal(t, 5, gotID)
		assert.Nil(t, got.Title)
		require.NotNil(t, got.TagIDs)
		assert.Empty(t, *got.TagIDs)
	})

	t.Run("UpdateWithoutTagIDsKeepsTags", func(t *testing.T) {
		var got blog.ArticleUpdate
		articles := &mockArticleService{
			updateFunc: func(_ context.Context, id int, in blog.ArticleUpdate) (*blog.Article, error) {
				got = in
				return testArticle(id, "Renamed"), nil
			},
		}
		e := newTestRouter(Services{Articles: articles}, Options{})

		rec := serve(e, http.MethodPatch, "/articles/5", `{"title":"Renamed"}`, testToken)
		require.Equal(t, http.StatusOK, rec.Code)

		assert.Nil(t, got.TagIDs)
		require.NotNil(t, got.Title)
		assert.Equal(t, "Renamed", *got.Title)
	})

	t.Run("DeleteReturnsRemovedArticle", func(t *testing.T) {
		articles := &mockArticleService{
			removeFunc: func(_ context.Context, id int) (*blog.Article, error) {
				return testArticle(id, "Gone"), nil
			},
		}
		e := newTestRouter(Services{Articles: articles}, Options{})

		rec := serve(e, http.MethodDelete, "/articles/3", "", testToken)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 3, decode[Article](t, rec).ID)
	})
}

func TestHandler_Tags(t *testing.T) {
	t.Run("ListIsBareArrayWithCounts", func(t *testing.T) {
		tags := &mockTagService{
			tagsFunc: func(context.Context) ([]blog.Tag, error) {
				return []blog.Tag{
					{Tag: db.Tag{ID: 1, Name: "Go", Color: ptr("#00ADD8")}, ArticleCount: 3},
					{Tag: db.Tag{ID: 2, Name: "Docker"}, ArticleCount: 0},
				}, nil
			},
		}
		e := newTestRouter(Services{Tags: tags}, Options{})

		rec := serve(e, http.MethodGet, "/tags", "", "")
		require.Equal(t, http.StatusOK, rec.Code)

		list := decode[[]Tag](t, rec)
		require.Len(t, list, 2)
		assert.Equal(t, 3, list[0].Count.Articles)
		assert.Contains(t, rec.Body.String(), `"_count":{"articles":3}`)
	})

	t.Run("EmptyListIsEmptyArray", func(t *testing.T) {
		e := newTestRouter(Services{}, Options{})

		rec := serve(e, http.MethodGet, "/tags", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("CreateWithBadColorReturnsFieldError", func(t *testing.T) {
		e := newTestRouter(Services{}, Options{})

		rec := serve(e, http.MethodPost, "/tags", `{"name":"Go","color":"blue"}`, testToken)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "color must be a hex color", decode[ErrorResponse](t, rec).Errors["color"])
	})

	t.Run("CreateDuplicateReturnsConflict", func(t *testing.T) {
		tags := &mockTagService{
			createFunc: func(context.Context, blog.TagInput) (*blog.Tag, error) {
				return nil, &blog.Error{Kind: blog.ErrConflict, Message: `tag "Go" already exists`}
			},
		}
		e := newTestRouter(Services{Tags: tags}, Options{})

		rec := serve(e, http.MethodPost, "/tags", `{"name":"Go","color":"#00ADD8"}`, testToken)
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, `tag "Go" already exists`, decode[ErrorResponse](t, rec).Message)
	})

	t.Run("PopularForwardsLimit", func(t *testing.T) {
		var got []int
		tags := &mockTagService{
			popularTagsFunc: func(_ context.Context, limit int) ([]blog.Tag, error) {
				got = append(got, limit)
				return []blog.Tag{}, nil
			},
		}
		e := newTestRouter(Services{Tags: tags}, Options{})

		require.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/tags/popular", "", "").Code)
		require.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/tags/popular?limit=3", "", "").Code)
		assert.Equal(t, []int{0, 3}, got)
	})

	t.Run("PopularRejectsLimitOutOfRange", func(t *testing.T) {
		e := newTestRouter(Services{}, Options{})

		rec := serve(e, http.MethodGet, "/tags/popular?limit=500", "", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("UpdateMissingTagReturnsNotFound", func(t *testing.T) {
		tags := &mockTagService{
			updateFunc: func(context.Context, int, blog.TagUpdate) (*blog.Tag, error) {
				return nil, blog.ErrTagNotFound
			},
		}
		e := newTestRouter(Services{Tags: tags}, Options{})

		rec := serve(e, http.MethodPatch, "/tags/42", `{"name":"Rust"}`, testToken)
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "tag not found", decode[ErrorResponse](t, rec).Message)
	})
}

func TestHandler_Comments(t *testing.T) {
	t.Run("CreateIsPublicAndRecordsClient", func(t *testing.T) {
		var got blog.CommentInput
		comments := &mockCommentService{
			createFunc: func(_ context.Context, in blog.CommentInput) (*blog.Comment, error) {
				got = in
				return &blog.Comment{Comment: db.Comment{
					ID:        9,
					ArticleID: in.ArticleID,
					Content:   in.Content,
					Status:    blog.CommentPending,
					Article:   &db.Article{ID: in.ArticleID, Title: "Hello Go", Slug: "hello-go"},
				}}, nil
			},
		}
		e := newTestRouter(Services{Comments: comments}, Options{})

		req := httptest.NewRequest(http.MethodPost, "/comments",
			strings.NewReader(`{"articleId":1,"content":"Nice","author":"Ann","email":"ann@example.com"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set("User-Agent", "blog-test")
		req.RemoteAddr = "192.0.2.10:5555"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, "192.0.2.10", got.IP)
		assert.Equal(t, "blog-test", got.UserAgent)
		assert.Equal(t, 1, got.ArticleID)

		comment := decode[Comment](t, rec)
		assert.Equal(t, "PENDING", comment.Status)
		require.NotNil(t, comment.Article)
		assert.Equal(t, ArticleRef{ID: 1, Title: "Hello Go", Slug: "hello-go"}, *comment.Article)
	})

	t.Run("CreateTruncatesLongUserAgent", func(t *testing.T) {
		var got blog.CommentInput
		comments := &mockCommentService{
			createFunc: func(_ context.Context, in blog.CommentInput) (*blog.Comment, error) {
				got = in
				return &blog.Comment{Comment: db.Comment{ID: 1, ArticleID: in.ArticleID}}, nil
			},
		}
		e := newTestRouter(Services{Comments: comments}, Options{})

		req := httptest.NewRequest(http.MethodPost, "/comments",
			strings.NewReader(`{"articleId":1,"content":"Nice","author":"Ann","email":"ann@example.com"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set("User-Agent", strings.Repeat("x", 600))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Len(t, got.UserAgent, maxUserAgentLength)
	})

	t.Run("CreateWithBadEmailReturnsFieldError", func(t *testing.T) {
		e := newTestRouter(Services{}, Options{})

		rec := serve(e, http.MethodPost, "/comments",
			`{"articleId":1,"content":"Nice","author":"Ann","email":"ann"}`, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "email must be a valid email address", decode[ErrorResponse](t, rec).Errors["email"])
	})

	t.Run("CreateForUnknownArticleReturnsNotFound", func(t *testing.T) {
		comments := &mockCommentService{
			createFunc: func(context.Context, blog.CommentInput) (*blog.Comment, error) {
				return nil, blog.ErrArticleNotFound
			},
		}
		e := newTestRouter(Services{Comments: comments}, Options{})

		rec := serve(e, http.MethodPost, "/comments",
			`{"articleId":404,"content":"Nice","author":"Ann","email":"ann@example.com"}`, "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "article not found", decode[ErrorResponse](t, rec).Message)
	})

	t.Run("ListForwardsFilters", func(t *testing.T) {
		var got blog.CommentQuery
		comments := &mockCommentService{
			commentsFunc: func(_ context.Context, q blog.CommentQuery) (blog.Page[blog.Comment], error) {
				got = q
				return blog.Page[blog.Comment]{Items: []blog.Comment{}, Page: 1, Limit: 10}, nil
			},
		}
		e := newTestRouter(Services{Comments: comments}, Options{})

		rec := serve(e, http.MethodGet, "/comments?articleId=2&status=APPROVED&keyword=ann", "", "")
		require.Equal(t, http.StatusOK, rec.Code)

		require.NotNil(t, got.ArticleID)
		assert.Equal(t, 2, *got.ArticleID)
		require.NotNil(t, got.Status)
		assert.Equal(t, "APPROVED", *got.Status)
		require.NotNil(t, got.Keyword)
		assert.Equal(t, "ann", *got.Keyword)
		assert.JSONEq(t, `{"data":[],"pagination":{"page":1,"limit":10,"total":0,"totalPages":0}}`, rec.Body.String())
	})

	t.Run("PendingRequiresToken", func(t *testing.T) {
		e := newTestRouter(Services{}, Options{})

		rec := serve(e, http.MethodGet, "/comments/pending", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("ApprovedIsPublic", func(t *testing.T) {
		e := newTestRouter(Services{}, Options{})

		rec := serve(e, http.MethodGet, "/comments/approved", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("StatsForwardsArticleScope", func(t *testing.T) {
		var got []*int
		comments := &mockCommentService{
			statsFunc: func(_ context.Context, articleID *int) (blog.CommentStats, error) {
				got = append(got, articleID)
				return blog.CommentStats{Total: 4, Pending: 1, Approved: 2, Rejected: 1}, nil
			},
		}
		e := newTestRouter(Services{Comments: comments}, Options{})

		rec := serve(e, http.MethodGet, "/comments/stats", "", testToken)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, CommentStats{Total: 4, Pending: 1, Approved: 2, Rejected: 1}, decode[CommentStats](t, rec))

		rec = serve(e, http.MethodGet, "/comments/stats?articleId=4", "", testToken)
		require.Equal(t, http.StatusOK, rec.Code)

		require.Len(t, got, 2)
		assert.Nil(t, got[0])
		require.NotNil(t, got[1])
		assert.Equal(t, 4, *got[1])
	})

	t.Run("ApproveAndReject", func(t *testing.T) {
		comments := &mockCommentService{
			approveFunc: func(_ context.Context, id int) (*blog.Comment, error) {
				return &blog.Comment{Comment: db.Comment{ID: id, Status: blog.CommentApproved}}, nil
			},
			rejectFunc: func(_ context.Context, id int) (*blog.Comment, error) {
				return &blog.Comment{Comment: db.Comment{ID: id, Status: blog.CommentRejected}}, nil
			},
		}
		e := newTestRouter(Services{Comments: comments}, Options{})

		rec := serve(e, http.MethodPatch, "/comments/7/approve", "", testToken)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "APPROVED", decode[Comment](t, rec).Status)

		rec = serve(e, http.MethodPatch, "/comments/7/reject", "", testToken)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "REJECTED", decode[Comment](t, rec).Status)
	})

	t.Run("UpdateRejectsUnknownStatus", func(t *testing.T) {
		e := newTestRouter(Services{}, Options{})

		rec := serve(e, http.MethodPatch, "/comments/7", `{"status":"SPAM"}`, testToken)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_Projects(t *testing.T) {
	t.Run("FeaturedFilterIsOptional", func(t *testing.T) {
		var got []*bool
		projects := &mockProjectService{
			projectsFunc: func(_ context.Context, featured *bool) ([]blog.Project, error) {
				got = append(got, featured)
				return []blog.Project{{Project: db.Project{ID: 1, Title: "blog-cms", Featured: true}}}, nil
			},
		}
		e := newTestRouter(Services{Projects: projects}, Options{})

		require.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/projects", "", "").Code)
		rec := serve(e, http.MethodGet, "/projects?featured=true", "", "")
		require.Equal(t, http.StatusOK, rec.Code)

		require.Len(t, got, 2)
		assert.Nil(t, got[0])
		require.NotNil(t, got[1])
		assert.True(t, *got[1])

		list := decode[[]Project](t, rec)
		require.Len(t, list, 1)
		assert.True(t, list[0].Featured)
	})

	t.Run("MalformedFeaturedReturnsBadRequest", func(t *testing.T) {
		e := newTestRouter(Services{}, Options{})

		rec := serve(e, http.MethodGet, "/projects?featured=maybe", "", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("StatsRequiresToken", func(t *testing.T) {
		projects := &mockProjectService{
			statsFunc: func(context.Context) (blog.ProjectStats, error) {
				return blog.ProjectStats{Total: 3, Featured: 1}, nil
			},
		}
		e := newTestRouter(Services{Projects: projects}, Options{})

		assert.Equal(t, http.StatusUnauthorized, serve(e, http.MethodGet, "/projects/stats", "", "").Code)

		rec := serve(e, http.MethodGet, "/projects/stats", "", testToken)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, ProjectStats{Total: 3, Featured: 1}, decode[ProjectStats](t, rec))
	})

	t.Run("CreateWithBadURLReturnsFieldError", func(t *testing.T) {
		e := newTestRouter(Services{}, Options{})

		rec := serve(e, http.MethodPost, "/projects",
			`{"title":"cli","description":"tool","githubUrl":"not a url"}`, testToken)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "githubUrl must be a valid URL", decode[ErrorResponse](t, rec).Errors["githubUrl"])
	})
}

func TestHandler_Profile(t *testing.T) {
	t.Run("GetIsPublic", func(t *testing.T) {
		profile := &mockProfileService{
			profileFunc: func(context.Context) (*blog.Profile, error) {
				return &blog.Profile{Profile: db.Profile{ID: db.ProfileID, Title: ptr("My Blog")}}, nil
			},
		}
		e := newTestRouter(Services{Profile: profile}, Options{})

		rec := serve(e, http.MethodGet, "/profile", "", "")
		require.Equal(t, http.StatusOK, rec.Code)

		body := decode[Profile](t, rec)
		require.NotNil(t, body.Title)
		assert.Equal(t, "My Blog", *body.Title)
	})

	t.Run("PatchUpdatesProvidedFields", func(t *testing.T) {
		var got blog.ProfileInput
		profile := &mockProfileService{
			updateFirstFunc: func(_ context.Context, in blog.ProfileInput) (*blog.Profile, error) {
				got = in
				return &blog.Profile{Profile: db.Profile{ID: db.ProfileID, Bio: in.Bio}}, nil
			},
		}
		e := newTestRouter(Services{Profile: profile}, Options{})

		rec := serve(e, http.MethodPatch, "/profile", `{"bio":"Gopher","email":""}`, testToken)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		assert.Nil(t, got.Title)
		require.NotNil(t, got.Bio)
		assert.Equal(t, "Gopher", *got.Bio)
	})

	t.Run("PatchRejectsBadEmail", func(t *testing.T) {
		e := newTestRouter(Services{}, Options{})

		rec := serve(e, http.MethodPatch, "/profile", `{"email":"nope"}`, testToken)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("CreateExistingReturnsConflict", func(t *testing.T) {
		profile := &mockProfileService{
			createFunc: func(context.Context, blog.ProfileInput) (*blog.Profile, error) {
				return nil, &blog.Error{Kind: blog.ErrConflict, Message: "profile already exists"}
			},
		}
		e := newTestRouter(Services{Profile: profile}, Options{})

		rec := serve(e, http.MethodPost, "/profile", `{"title":"Blog"}`, testToken)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("ListRequiresToken", func(t *testing.T) {
		e := newTestRouter(Services{}, Options{})

		assert.Equal(t, http.StatusUnauthorized, serve(e, http.MethodGet, "/profile/all", "", "").Code)
		rec := serve(e, http.MethodGet, "/profile/all", "", testToken)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
}

func TestHandler_Stats(t *testing.T) {
	t.Run("AllRoutesRequireToken", func(t *testing.T) {
		e := newTestRouter(Services{}, Options{})

		for _, path := range []string{"/stats/overview", "/stats/articles", "/stats/monthly", "/stats/tags", "/stats/recent-activity"} {
			rec := serve(e, http.MethodGet, path, "", "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		}
	})

	t.Run("Overview", func(t *testing.T) {
		stats := &mockStatsService{
			overviewFunc: func(context.Context) (blog.Overview, error) {
				return blog.Overview{Articles: 6, Comments: 4, Tags: 4, Projects: 3, TotalViews: 500, PendingComments: 1}, nil
			},
		}
		e := newTestRouter(Services{Stats: stats}, Options{})

		rec := serve(e, http.MethodGet, "/stats/overview", "", testToken)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t,
			`{"articles":6,"comments":4,"tags":4,"projects":3,"totalViews":500,"pendingComments":1}`,
			rec.Body.String())
	})

	t.Run("MonthlyForwardsYear", func(t *testing.T) {
		var got int
		stats := &mockStatsService{
			monthlyStatsFunc: func(_ context.Context, year int) (blog.MonthlyStats, error) {
				got = year
				return blog.MonthlyStats{Year: year, Data: []blog.MonthlyStat{{Month: 1}}}, nil
			},
		}
		e := newTestRouter(Services{Stats: stats}, Options{})

		rec := serve(e, http.MethodGet, "/stats/monthly?year=2024", "", testToken)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 2024, got)
		assert.Equal(t, 2024, decode[MonthlyStats](t, rec).Year)
	})

	t.Run("MonthlyRejectsBadYear", func(t *testing.T) {
		e := newTestRouter(Services{}, Options{})

		rec := serve(e, http.MethodGet, "/stats/monthly?year=1800", "", testToken)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("RecentActivityFlattensItems", func(t *testing.T) {
		created := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
		stats := &mockStatsService{
			recentActivityFunc: func(context.Context) ([]blog.Activity, error) {
				return []blog.Activity{
					{
						Type:      blog.ActivityComment,
						CreatedAt: created,
						Comment: &db.Comment{
							ID:      2,
							Author:  "Ann",
							Content: "Nice",
							Article: &db.Article{ID: 1, Title: "Hello Go", Slug: "hello-go"},
						},
					},
					{
						Type:      blog.ActivityArticle,
						CreatedAt: created.Add(-time.Hour),
						Article:   &db.Article{ID: 1, Title: "Hello Go"},
					},
				}, nil
			},
		}
		e := newTestRouter(Services{Stats: stats}, Options{})

		rec := serve(e, http.MethodGet, "/stats/recent-activity", "", testToken)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decode[RecentActivity](t, rec)
		require.Len(t, body.Items, 2)
		assert.Equal(t, "comment", body.Items[0].Type)
		assert.Equal(t, "Ann", body.Items[0].Author)
		require.NotNil(t, body.Items[0].Article)
		assert.Equal(t, "hello-go", body.Items[0].Article.Slug)
		assert.Equal(t, "article", body.Items[1].Type)
		assert.Equal(t, "Hello Go", body.Items[1].Title)
	})
}

func TestHandler_Auth(t *testing.T) {
	t.Run("RegisterReturnsUserWithoutPassword", func(t *testing.T) {
		auth := &mockAuthService{
			registerFunc: func(_ context.Context, in blog.RegisterInput) (*blog.User, error) {
				return &blog.User{ID: 1, Username: in.Username, Email: in.Email}, nil
			},
		}
		e := newTestRouter(Services{Auth: auth}, Options{})

		rec := serve(e, http.MethodPost, "/auth/register",
			`{"username":"admin","email":"admin@example.com","password":"secret1","confirmPassword":"secret1"}`, "")
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "password")
		assert.Equal(t, "admin", decode[User](t, rec).Username)
	})

	t.Run("RegisterShortUsernameReturnsFieldError", func(t *testing.T) {
		e := newTestRouter(Services{}, Options{})

		rec := serve(e, http.MethodPost, "/auth/register",
			`{"username":"ab","email":"admin@example.com","password":"secret1","confirmPassword":"secret1"}`, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "username must be at least 3 characters long", decode[ErrorResponse](t, rec).Errors["username"])
	})

	t.Run("RegisterExistingUserReturnsConflict", func(t *testing.T) {
		auth := &mockAuthService{
			registerFunc: func(context.Context, blog.RegisterInput) (*blog.User, error) {
				return nil, &blog.Error{Kind: blog.ErrConflict, Message: "username already exists"}
			},
		}
		e := newTestRouter(Services{Auth: auth}, Options{})

		rec := serve(e, http.MethodPost, "/auth/register",
			`{"username":"admin","email":"admin@example.com","password":"secret1","confirmPassword":"secret1"}`, "")
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "username already exists", decode[ErrorResponse](t, rec).Message)
	})

	t.Run("LoginReturnsToken", func(t *testing.T) {
		auth := &mockAuthService{
			loginFunc: func(_ context.Context, username, _ string) (*blog.LoginResult, error) {
				return &blog.LoginResult{Token: "jwt", User: blog.User{ID: 1, Username: username}}, nil
			},
		}
		e := newTestRouter(Services{Auth: auth}, Options{})

		rec := serve(e, http.MethodPost, "/auth/login", `{"username":"admin","password":"secret1"}`, "")
		require.Equal(t, http.StatusOK, rec.Code)

		body := decode[LoginResponse](t, rec)
		assert.Equal(t, "jwt", body.Token)
		assert.Equal(t, "admin", body.User.Username)
	})

	t.Run("LoginWithBadCredentialsIsUnauthorized", func(t *testing.T) {
		auth := &mockAuthService{
			loginFunc: func(context.Context, string, string) (*blog.LoginResult, error) {
				return nil, blog.ErrInvalidCredentials
			},
		}
		e := newTestRouter(Services{Auth: auth}, Options{})

		rec := serve(e, http.MethodPost, "/auth/login", `{"username":"admin","password":"wrong"}`, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "invalid username or password", decode[ErrorResponse](t, rec).Message)
	})

	t.Run("LogoutRequiresToken", func(t *testing.T) {
		e := newTestRouter(Services{}, Options{})

		assert.Equal(t, http.StatusUnauthorized, serve(e, http.MethodPost, "/auth/logout", "", "").Code)

		rec := serve(e, http.MethodPost, "/auth/logout", "", testToken)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"logged out"}`, rec.Body.String())
	})

	t.Run("LoginIsRateLimited", func(t *testing.T) {
		auth := &mockAuthService{
			loginFunc: func(context.Context, string, string) (*blog.LoginResult, error) {
				return nil, blog.ErrInvalidCredentials
			},
		}
		e := newTestRouter(Services{Auth: auth}, Options{RateLimit: RateLimitOptions{Enabled: true, RPS: 1, Burst: 1}})

		body := `{"username":"admin","password":"wrong"}`
		assert.Equal(t, http.StatusUnauthorized, serve(e, http.MethodPost, "/auth/login", body, "").Code)

		rec := serve(e, http.MethodPost, "/auth/login", body, "")
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "too many requests", decode[ErrorResponse](t, rec).Message)

		// Reads are not limited.
		assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/articles", "", "").Code)
	})
}

func TestHandler_Health(t *testing.T) {
	t.Run("DatabaseUp", func(t *testing.T) {
		e := newTestRouter(Services{}, Options{})

		rec := serve(e, http.MethodGet, "/health", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("DatabaseDown", func(t *testing.T) {
		h := NewHandler(Services{}, &mockTokens{valid: testToken}, &mockPinger{err: errors.New("dial tcp: refused")}, Options{}, testLogger())
		e := h.RegisterRoutes()

		rec := serve(e, http.MethodGet, "/health", "", "")
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "internal error", decode[ErrorResponse](t, rec).Message)
	})

	t.Run("MetricsEndpoint", func(t *testing.T) {
		e := newTestRouter(Services{}, Options{})
		serve(e, http.MethodGet, "/health", "", "")

		rec := serve(e, http.MethodGet, "/metrics", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "blog_http_requests_total")
	})

	t.Run("SwaggerDoc", func(t *testing.T) {
		e := newTestRouter(Services{}, Options{})

		rec := serve(e, http.MethodGet, "/swagger/doc.json", "", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var doc struct {
			Swagger string                     `json:"swagger"`
			Paths   map[string]json.RawMessage `json:"paths"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
		assert.Equal(t, "2.0", doc.Swagger)
		assert.Contains(t, doc.Paths, "/articles/slug/{slug}")
	})
}

func TestHandler_RejectsOverlongFields(t *testing.T) {
	long := func(n int) string { return strings.Repeat("a", n) }
	longURL := "https://example.com/" + long(1010)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		token  string
		field  string
	}{
		{
			name:   "ArticleTitle",
			method: http.MethodPost,
			target: "/articles",
			body:   `{"title":"` + long(256) + `","content":"body"}`,
			token:  testToken,
			field:  "title",
		},
		{
			name:   "ArticleCoverImage",
			method: http.MethodPatch,
			target: "/articles/1",
			body:   `{"coverImage":"` + longURL + `"}`,
			token:  testToken,
			field:  "coverImage",
		},
		{
			name:   "TagName",
			method: http.MethodPost,
			target: "/tags",
			body:   `{"name":"` + long(51) + `"}`,
			token:  testToken,
			field:  "name",
		},
		{
			name:   "CommentWebsite",
			method: http.MethodPost,
			target: "/comments",
			body:   `{"articleId":1,"content":"Nice","author":"Ann","email":"ann@example.com","website":"` + longURL + `"}`,
			field:  "website",
		},
		{
			name:   "ProjectGithubURL",
			method: http.MethodPost,
			target: "/projects",
			body:   `{"title":"blog","description":"d","githubUrl":"` + longURL + `"}`,
			token:  testToken,
			field:  "githubUrl",
		},
		{
			name:   "ProfileLocation",
			method: http.MethodPatch,
			target: "/profile",
			body:   `{"location":"` + long(256) + `"}`,
			token:  testToken,
			field:  "location",
		},
		{
			name:   "RegisterEmail",
			method: http.MethodPost,
			target: "/auth/register",
			body:   `{"username":"admin","email":"` + long(250) + `@example.com","password":"secret1","confirmPassword":"secret1"}`,
			field:  "email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestRouter(Services{}, Options{})

			rec := serve(e, tt.method, tt.target, tt.body, tt.token)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Contains(t, decode[ErrorResponse](t, rec).Errors, tt.field)
		})
	}
}

func TestHandler_RejectsExplicitZeroPaging(t *testing.T) {
	tests := []struct {
		name   string
		target string
		field  string
	}{
		{name: "ArticlesPage", target: "/articles?page=0", field: "page"},
		{name: "ArticlesLimit", target: "/articles?limit=0", field: "limit"},
		{name: "PublishedLimit", target: "/articles/published?limit=0", field: "limit"},
		{name: "CommentsPage", target: "/comments?page=0", field: "page"},
		{name: "PopularTagsLimit", target: "/tags/popular?limit=0", field: "limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestRouter(Services{}, Options{})

			rec := serve(e, http.MethodGet, tt.target, "", "")
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Contains(t, decode[ErrorResponse](t, rec).Errors, tt.field)
		})
	}

	t.Run("OmittedPagingUsesDefaults", func(t *testing.T) {
		var got blog.ArticleQuery
		articles := &mockArticleService{
			articlesFunc: func(_ context.Context, q blog.ArticleQuery) (blog.Page[blog.Article], error) {
				got = q
				return blog.Page[blog.Article]{Items: []blog.Article{}, Page: 1, Limit: 10}, nil
			},
		}
		e := newTestRouter(Services{Articles: articles}, Options{})

		rec := serve(e, http.MethodGet, "/articles", "", "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, blog.Paging{}, got.Paging)
	})
}
