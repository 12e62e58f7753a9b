package blog

import (
	"time"

	"github.com/daniilsolovey/blog-cms/internal/db"
)

const (
	StatusDraft     = db.ArticleStatusDraft
	StatusPublished = db.ArticleStatusPublished

	CommentPending  = db.CommentStatusPending
	CommentApproved = db.CommentStatusApproved
	CommentRejected = db.CommentStatusRejected
)

type Tag struct {
	db.Tag
	ArticleCount int
}

type ArticleTag struct {
	ID        int
	ArticleID int
	TagID     int
	CreatedAt time.Time
	Tag       Tag
}

type Article struct {
	db.Article
	Tags         []ArticleTag
	CommentCount int
}

type Comment struct {
	db.Comment
}

type Project struct {
	db.Project
}

type Profile struct {
	db.Profile
}

// User is a registered account without its password hash.
type User struct {
	ID        int
	Username  string
	Email     string
	CreatedAt time.Time
}

// Page is one page of a paginated list.
type Page[T any] struct {
	Items      []T
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

type ArticleInput struct {
	Title      string
	Content    string
	Summary    *string
	CoverImage *string
	Status     *string
	TagIDs     []int
}

// ArticleUpdate changes only non-nil fields. A non-nil TagIDs replaces the tag set.
type ArticleUpdate struct {
	Title      *string
	Content    *string
	Summary    *string
	CoverImage *string
	Status     *string
	TagIDs     *[]int
}

type ArticleQuery struct {
	Paging
	Keyword *string
	Status  *string
	TagID   *int
}

type TagInput struct {
	Name  string
	Color *string
}

type TagUpdate struct {
	Name  *string
	Color *string
}

type CommentInput struct {
	ArticleID int
	Content   string
	Author    string
	Email     string
	Website   *string
	IP        string
	UserAgent string
}

type CommentUpdate struct {
	Content *string
	Status  *string
}

type CommentQuery struct {
	Paging
	ArticleID *int
	Status    *string
	Keyword   *string
}

type ProjectInput struct {
	Title       string
	Description string
	ImageURL    *string
	ProjectURL  *string
	GithubURL   *string
	TechStack   *string
	Featured    bool
}

type ProjectUpdate struct {
	Title       *string
	Description *string
	ImageURL    *string
	ProjectURL  *string
	GithubURL   *string
	TechStack   *string
	Featured    *bool
}

type ProfileInput struct {
	Title    *string
	Avatar   *string
	Bio      *string
	Github   *string
	Twitter  *string
	Linkedin *string
	Email    *string
	Phone    *string
	Location *string
}

type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

type LoginResult struct {
	Token string
	User  User
}

type CommentStats struct {
	Total    int
	Pending  int
	Approved int
	Rejected int
}

type ProjectStats struct {
	Total    int
	Featured int
}
