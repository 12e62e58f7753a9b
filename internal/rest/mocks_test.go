package rest

import (
	"context"

	"github.com/daniilsolovey/blog-cms/internal/auth"
	"github.com/daniilsolovey/blog-cms/internal/blog"
)

type mockArticleService struct {
	createFunc            func(ctx context.Context, in blog.ArticleInput) (*blog.Article, error)
	articlesFunc          func(ctx context.Context, q blog.ArticleQuery) (blog.Page[blog.Article], error)
	publishedArticlesFunc func(ctx context.Context, q blog.ArticleQuery) (blog.Page[blog.Article], error)
	articleByIDFunc       func(ctx context.Context, articleID int) (*blog.Article, error)
	articleBySlugFunc     func(ctx context.Context, slug string) (*blog.Article, error)
	updateFunc            func(ctx context.Context, articleID int, in blog.ArticleUpdate) (*blog.Article, error)
	removeFunc            func(ctx context.Context, articleID int) (*blog.Article, error)
}

func (m *mockArticleService) Create(ctx context.Context, in blog.ArticleInput) (*blog.Article, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, in)
	}
	return nil, nil
}

func (m *mockArticleService) Articles(ctx context.Context, q blog.ArticleQuery) (blog.Page[blog.Article], error) {
	if m.articlesFunc != nil {
		return m.articlesFunc(ctx, q)
	}
	return blog.Page[blog.Article]{}, nil
}

func (m *mockArticleService) PublishedArticles(ctx context.Context, q blog.ArticleQuery) (blog.Page[blog.Article], error) {
	if m.publishedArticlesFunc != nil {
		return m.publishedArticlesFunc(ctx, q)
	}
	return blog.Page[blog.Article]{}, nil
}

func (m *mockArticleService) ArticleByID(ctx context.Context, articleID int) (*blog.Article, error) {
	if m.articleByIDFunc != nil {
		return m.articleByIDFunc(ctx, articleID)
	}
	return nil, nil
}

func (m *mockArticleService) ArticleBySlug(ctx context.Context, slug string) (*blog.Article, error) {
	if m.articleBySlugFunc != nil {
		return m.articleBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockArticleService) Update(ctx context.Context, articleID int, in blog.ArticleUpdate) (*blog.Article, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, articleID, in)
	}
	return nil, nil
}

func (m *mockArticleService) Remove(ctx context.Context, articleID int) (*blog.Article, error) {
	if m.removeFunc != nil {
		return m.removeFunc(ctx, articleID)
	}
	return nil, nil
}

type mockTagService struct {
	createFunc      func(ctx context.Context, in blog.TagInput) (*blog.Tag, error)
	tagsFunc        func(ctx context.Context) ([]blog.Tag, error)
	tagByIDFunc     func(ctx context.Context, tagID int) (*blog.Tag, error)
	updateFunc      func(ctx context.Context, tagID int, in blog.TagUpdate) (*blog.Tag, error)
	removeFunc      func(ctx context.Context, tagID int) (*blog.Tag, error)
	popularTagsFunc func(ctx context.Context, limit int) ([]blog.Tag, error)
}

func (m *mockTagService) Create(ctx context.Context, in blog.TagInput) (*blog.Tag, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, in)
	}
	return nil, nil
}

func (m *mockTagService) Tags(ctx context.Context) ([]blog.Tag, error) {
	if m.tagsFunc != nil {
		return m.tagsFunc(ctx)
	}
	return nil, nil
}

func (m *mockTagService) TagByID(ctx context.Context, tagID int) (*blog.Tag, error) {
	if m.tagByIDFunc != nil {
		return m.tagByIDFunc(ctx, tagID)
	}
	return nil, nil
}

func (m *mockTagService) Update(ctx context.Context, tagID int, in blog.TagUpdate) (*blog.Tag, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, tagID, in)
	}
	return nil, nil
}

func (m *mockTagService) Remove(ctx context.Context, tagID int) (*blog.Tag, error) {
	if m.removeFunc != nil {
		return m.removeFunc(ctx, tagID)
	}
	return nil, nil
}

func (m *mockTagService) PopularTags(ctx context.Context, limit int) ([]blog.Tag, error) {
	if m.popularTagsFunc != nil {
		return m.popularTagsFunc(ctx, limit)
	}
	return nil, nil
}

type mockCommentService struct {
	createFunc           func(ctx context.Context, in blog.CommentInput) (*blog.Comment, error)
	commentsFunc         func(ctx context.Context, q blog.CommentQuery) (blog.Page[blog.Comment], error)
	pendingCommentsFunc  func(ctx context.Context, q blog.CommentQuery) (blog.Page[blog.Comment], error)
	approvedCommentsFunc func(ctx context.Context, q blog.CommentQuery) (blog.Page[blog.Comment], error)
	commentByIDFunc      func(ctx context.Context, commentID int) (*blog.Comment, error)
	updateFunc           func(ctx context.Context, commentID int, in blog.CommentUpdate) (*blog.Comment, error)
	approveFunc          func(ctx context.Context, commentID int) (*blog.Comment, error)
	rejectFunc           func(ctx context.Context, commentID int) (*blog.Comment, error)
	removeFunc           func(ctx context.Context, commentID int) (*blog.Comment, error)
	statsFunc            func(ctx context.Context, articleID *int) (blog.CommentStats, error)
}

func (m *mockCommentService) Create(ctx context.Context, in blog.CommentInput) (*blog.Comment, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, in)
	}
	return nil, nil
}

func (m *mockCommentService) Comments(ctx context.Context, q blog.CommentQuery) (blog.Page[blog.Comment], error) {
	if m.commentsFunc != nil {
		return m.commentsFunc(ctx, q)
	}
	return blog.Page[blog.Comment]{}, nil
}

func (m *mockCommentService) PendingComments(ctx context.Context, q blog.CommentQuery) (blog.Page[blog.Comment], error) {
	if m.pendingCommentsFunc != nil {
		return m.pendingCommentsFunc(ctx, q)
	}
	return blog.Page[blog.Comment]{}, nil
}

func (m *mockCommentService) ApprovedComments(ctx context.Context, q blog.CommentQuery) (blog.Page[blog.Comment], error) {
	if m.approvedCommentsFunc != nil {
		return m.approvedCommentsFunc(ctx, q)
	}
	return blog.Page[blog.Comment]{}, nil
}

func (m *mockCommentService) CommentByID(ctx context.Context, commentID int) (*blog.Comment, error) {
	if m.commentByIDFunc != nil {
		return m.commentByIDFunc(ctx, commentID)
	}
	return nil, nil
}

func (m *mockCommentService) Update(ctx context.Context, commentID int, in blog.CommentUpdate) (*blog.Comment, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, commentID, in)
	}
	return nil, nil
}

func (m *mockCommentService) Approve(ctx context.Context, commentID int) (*blog.Comment, error) {
	if m.approveFunc != nil {
		return m.approveFunc(ctx, commentID)
	}
	return nil, nil
}

func (m *mockCommentService) Reject(ctx context.Context, commentID int) (*blog.Comment, error) {
	if m.rejectFunc != nil {
		return m.rejectFunc(ctx, commentID)
	}
	return nil, nil
}

func (m *mockCommentService) Remove(ctx context.Context, commentID int) (*blog.Comment, error) {
	if m.removeFunc != nil {
		return m.removeFunc(ctx, commentID)
	}
	return nil, nil
}

func (m *mockCommentService) Stats(ctx context.Context, articleID *int) (blog.CommentStats, error) {
	if m.statsFunc != nil {
		return m.statsFunc(ctx, articleID)
	}
	return blog.CommentStats{}, nil
}

type mockProjectService struct {
	createFunc           func(ctx context.Context, in blog.ProjectInput) (*blog.Project, error)
	projectsFunc         func(ctx context.Context, featured *bool) ([]blog.Project, error)
	featuredProjectsFunc func(ctx context.Context) ([]blog.Project, error)
	projectByIDFunc      func(ctx context.Context, projectID int) (*blog.Project, error)
	updateFunc           func(ctx context.Context, projectID int, in blog.ProjectUpdate) (*blog.Project, error)
	removeFunc           func(ctx context.Context, projectID int) (*blog.Project, error)
	statsFunc            func(ctx context.Context) (blog.ProjectStats, error)
}

func (m *mockProjectService) Create(ctx context.Context, in blog.ProjectInput) (*blog.Project, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, in)
	}
	return nil, nil
}

func (m *mockProjectService) Projects(ctx context.Context, featured *bool) ([]blog.Project, error) {
	if m.projectsFunc != nil {
		return m.projectsFunc(ctx, featured)
	}
	return nil, nil
}

func (m *mockProjectService) FeaturedProjects(ctx context.Context) ([]blog.Project, error) {
	if m.featuredProjectsFunc != nil {
		return m.featuredProjectsFunc(ctx)
	}
	return nil, nil
}

func (m *mockProjectService) ProjectByID(ctx context.Context, projectID int) (*blog.Project, error) {
	if m.projectByIDFunc != nil {
		return m.projectByIDFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *mockProjectService) Update(ctx context.Context, projectID int, in blog.ProjectUpdate) (*blog.Project, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, projectID, in)
	}
	return nil, nil
}

func (m *mockProjectService) Remove(ctx context.Context, projectID int) (*blog.Project, error) {
	if m.removeFunc != nil {
		return m.removeFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *mockProjectService) Stats(ctx context.Context) (blog.ProjectStats, error) {
	if m.statsFunc != nil {
		return m.statsFunc(ctx)
	}
	return blog.ProjectStats{}, nil
}

type mockProfileService struct {
	profileFunc     func(ctx context.Context) (*blog.Profile, error)
	profilesFunc    func(ctx context.Context) ([]blog.Profile, error)
	createFunc      func(ctx context.Context, in blog.ProfileInput) (*blog.Profile, error)
	updateFirstFunc func(ctx context.Context, in blog.ProfileInput) (*blog.Profile, error)
	updateFunc      func(ctx context.Context, profileID int, in blog.ProfileInput) (*blog.Profile, error)
	removeFunc      func(ctx context.Context, profileID int) (*blog.Profile, error)
}

func (m *mockProfileService) Profile(ctx context.Context) (*blog.Profile, error) {
	if m.profileFunc != nil {
		return m.profileFunc(ctx)
	}
	return nil, nil
}

func (m *mockProfileService) Profiles(ctx context.Context) ([]blog.Profile, error) {
	if m.profilesFunc != nil {
		return m.profilesFunc(ctx)
	}
	return nil, nil
}

func (m *mockProfileService) Create(ctx context.Context, in blog.ProfileInput) (*blog.Profile, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, in)
	}
	return nil, nil
}

func (m *mockProfileService) UpdateFirst(ctx context.Context, in blog.ProfileInput) (*blog.Profile, error) {
	if m.updateFirstFunc != nil {
		return m.updateFirstFunc(ctx, in)
	}
	return nil, nil
}

func (m *mockProfileService) Update(ctx context.Context, profileID int, in blog.ProfileInput) (*blog.Profile, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, profileID, in)
	}
	return nil, nil
}

func (m *mockProfileService) Remove(ctx context.Context, profileID int) (*blog.Profile, error) {
	if m.removeFunc != nil {
		return m.removeFunc(ctx, profileID)
	}
	return nil, nil
}

type mockStatsService struct {
	overviewFunc       func(ctx context.Context) (blog.Overview, error)
	articleStatsFunc   func(ctx context.Context) (blog.ArticleStats, error)
	monthlyStatsFunc   func(ctx context.Context, year int) (blog.MonthlyStats, error)
	tagStatsFunc       func(ctx context.Context) ([]blog.Tag, error)
	recentActivityFunc func(ctx context.Context) ([]blog.Activity, error)
}

func (m *mockStatsService) Overview(ctx context.Context) (blog.Overview, error) {
	if m.overviewFunc != nil {
		return m.overviewFunc(ctx)
	}
	return blog.Overview{}, nil
}

func (m *mockStatsService) ArticleStats(ctx context.Context) (blog.ArticleStats, error) {
	if m.articleStatsFunc != nil {
		return m.articleStatsFunc(ctx)
	}
	return blog.ArticleStats{}, nil
}

func (m *mockStatsService) MonthlyStats(ctx context.Context, year int) (blog.MonthlyStats, error) {
	if m.monthlyStatsFunc != nil {
		return m.monthlyStatsFunc(ctx, year)
	}
	return blog.MonthlyStats{}, nil
}

func (m *mockStatsService) TagStats(ctx context.Context) ([]blog.Tag, error) {
	if m.tagStatsFunc != nil {
		return m.tagStatsFunc(ctx)
	}
	return nil, nil
}

func (m *mockStatsService) RecentActivity(ctx context.Context) ([]blog.Activity, error) {
	if m.recentActivityFunc != nil {
		return m.recentActivityFunc(ctx)
	}
	return nil, nil
}

type mockAuthService struct {
	registerFunc func(ctx context.Context, in blog.RegisterInput) (*blog.User, error)
	loginFunc    func(ctx context.Context, username, password string) (*blog.LoginResult, error)
}

func (m *mockAuthService) Register(ctx context.Context, in blog.RegisterInput) (*blog.User, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, in)
	}
	return nil, nil
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (*blog.LoginResult, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, username, password)
	}
	return nil, nil
}

// mockTokens accepts exactly one token value.
type mockTokens struct {
	valid string
}

func (m *mockTokens) Parse(token string) (*auth.Claims, error) {
	if token != m.valid {
		return nil, auth.ErrInvalidToken
	}

	claims := &auth.Claims{Username: "admin"}
	claims.Subject = "1"
	return claims, nil
}

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(context.Context) error {
	return m.err
}
