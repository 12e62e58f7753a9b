// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	Article struct {
		ID, Title, Slug, Content, Summary, CoverImage, ViewCount, Status, IsPublished, PublishedAt, CreatedAt, UpdatedAt string
	}
	ArticleTag struct {
		ID, ArticleID, TagID, CreatedAt string

		Article, Tag string
	}
	Comment struct {
		ID, Content, Author, Email, Website, IP, UserAgent, Status, ArticleID, CreatedAt, UpdatedAt string

		Article string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
	Profile struct {
		ID, Title, Avatar, Bio, Github, Twitter, Linkedin, Email, Phone, Location, CreatedAt, UpdatedAt string
	}
	Project struct {
		ID, Title, Description, ImageURL, ProjectURL, GithubURL, TechStack, Featured, CreatedAt, UpdatedAt string
	}
	Tag struct {
		ID, Name, Color, CreatedAt, UpdatedAt string
	}
	User struct {
		ID, Username, Email, Password, CreatedAt string
	}
}{
	Article: struct {
		ID, Title, Slug, Content, Summary, CoverImage, ViewCount, Status, IsPublished, PublishedAt, CreatedAt, UpdatedAt string
	}{
		ID:          "articleId",
		Title:       "title",
		Slug:        "slug",
		Content:     "content",
		Summary:     "summary",
		CoverImage:  "coverImage",
		ViewCount:   "viewCount",
		Status:      "status",
		IsPublished: "isPublished",
		PublishedAt: "publishedAt",
		CreatedAt:   "createdAt",
		UpdatedAt:   "updatedAt",
	},
	ArticleTag: struct {
		ID, ArticleID, TagID, CreatedAt string

		Article, Tag string
	}{
		ID:        "articleTagId",
		ArticleID: "articleId",
		TagID:     "tagId",
		CreatedAt: "createdAt",

		Article: "Article",
		Tag:     "Tag",
	},
	Comment: struct {
		ID, Content, Author, Email, Website, IP, UserAgent, Status, ArticleID, CreatedAt, UpdatedAt string

		Article string
	}{
		ID:        "commentId",
		Content:   "content",
		Author:    "author",
		Email:     "email",
		Website:   "website",
		IP:        "ip",
		UserAgent: "userAgent",
		Status:    "status",
		ArticleID: "articleId",
		CreatedAt: "createdAt",
		UpdatedAt: "updatedAt",

		Article: "Article",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
	Profile: struct {
		ID, Title, Avatar, Bio, Github, Twitter, Linkedin, Email, Phone, Location, CreatedAt, UpdatedAt string
	}{
		ID:        "profileId",
		Title:     "title",
		Avatar:    "avatar",
		Bio:       "bio",
		Github:    "github",
		Twitter:   "twitter",
		Linkedin:  "linkedin",
		Email:     "email",
		Phone:     "phone",
		Location:  "location",
		CreatedAt: "createdAt",
		UpdatedAt: "updatedAt",
	},
	Project: struct {
		ID, Title, Description, ImageURL, ProjectURL, GithubURL, TechStack, Featured, CreatedAt, UpdatedAt string
	}{
		ID:          "projectId",
		Title:       "title",
		Description: "description",
		ImageURL:    "imageUrl",
		ProjectURL:  "projectUrl",
		GithubURL:   "githubUrl",
		TechStack:   "techStack",
		Featured:    "featured",
		CreatedAt:   "createdAt",
		UpdatedAt:   "updatedAt",
	},
	Tag: struct {
		ID, Name, Color, CreatedAt, UpdatedAt string
	}{
		ID:        "tagId",
		Name:      "name",
		Color:     "color",
		CreatedAt: "createdAt",
		UpdatedAt: "updatedAt",
	},
	User: struct {
		ID, Username, Email, Password, CreatedAt string
	}{
		ID:        "userId",
		Username:  "username",
		Email:     "email",
		Password:  "password",
		CreatedAt: "createdAt",
	},
}

var Tables = struct {
	Article struct {
		Name, Alias string
	}
	ArticleTag struct {
		Name, Alias string
	}
	Comment struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
	Profile struct {
		Name, Alias string
	}
	Project struct {
		Name, Alias string
	}
	Tag struct {
		Name, Alias string
	}
	User struct {
		Name, Alias string
	}
}{
	Article: struct {
		Name, Alias string
	}{
		Name:  "articles",
		Alias: "t",
	},
	ArticleTag: struct {
		Name, Alias string
	}{
		Name:  "articleTags",
		Alias: "t",
	},
	Comment: struct {
		Name, Alias string
	}{
		Name:  "comments",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
	Profile: struct {
		Name, Alias string
	}{
		Name:  "profiles",
		Alias: "t",
	},
	Project: struct {
		Name, Alias string
	}{
		Name:  "projects",
		Alias: "t",
	},
	Tag: struct {
		Name, Alias string
	}{
		Name:  "tags",
		Alias: "t",
	},
	User: struct {
		Name, Alias string
	}{
		Name:  "users",
		Alias: "t",
	},
}

type Article struct {
	tableName struct{} `pg:"articles,alias:t,discard_unknown_columns"`

	ID          int        `pg:"articleId,pk"`
	Title       string     `pg:"title,use_zero"`
	Slug        string     `pg:"slug,use_zero"`
	Content     string     `pg:"content,use_zero"`
	Summary     *string    `pg:"summary"`
	CoverImage  *string    `pg:"coverImage"`
	ViewCount   int        `pg:"viewCount"`
	Status      string     `pg:"status"`
	IsPublished bool       `pg:"isPublished"`
	PublishedAt *time.Time `pg:"publishedAt"`
	CreatedAt   time.Time  `pg:"createdAt"`
	UpdatedAt   time.Time  `pg:"updatedAt"`
}

type ArticleTag struct {
	tableName struct{} `pg:"articleTags,alias:t,discard_unknown_columns"`

	ID        int       `pg:"articleTagId,pk"`
	ArticleID int       `pg:"articleId,use_zero"`
	TagID     int       `pg:"tagId,use_zero"`
	CreatedAt time.Time `pg:"createdAt"`

	Article *Article `pg:"fk:articleId,rel:has-one"`
	Tag     *Tag     `pg:"fk:tagId,rel:has-one"`
}

type Comment struct {
	tableName struct{} `pg:"comments,alias:t,discard_unknown_columns"`

	ID        int       `pg:"commentId,pk"`
	Content   string    `pg:"content,use_zero"`
	Author    string    `pg:"author,use_zero"`
	Email     string    `pg:"email,use_zero"`
	Website   *string   `pg:"website"`
	IP        *string   `pg:"ip"`
	UserAgent *string   `pg:"userAgent"`
	Status    string    `pg:"status"`
	ArticleID int       `pg:"articleId,use_zero"`
	CreatedAt time.Time `pg:"createdAt"`
	UpdatedAt time.Time `pg:"updatedAt"`

	Article *Article `pg:"fk:articleId,rel:has-one"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}

type Profile struct {
	tableName struct{} `pg:"profiles,alias:t,discard_unknown_columns"`

	ID        int       `pg:"profileId,pk"`
	Title     *string   `pg:"title"`
	Avatar    *string   `pg:"avatar"`
	Bio       *string   `pg:"bio"`
	Github    *string   `pg:"github"`
	Twitter   *string   `pg:"twitter"`
	Linkedin  *string   `pg:"linkedin"`
	Email     *string   `pg:"email"`
	Phone     *string   `pg:"phone"`
	Location  *string   `pg:"location"`
	CreatedAt time.Time `pg:"createdAt"`
	UpdatedAt time.Time `pg:"updatedAt"`
}

type Project struct {
	tableName struct{} `pg:"projects,alias:t,discard_unknown_columns"`

	ID          int       `pg:"projectId,pk"`
	Title       string    `pg:"title,use_zero"`
	Description string    `pg:"description,use_zero"`
	ImageURL    *string   `pg:"imageUrl"`
	ProjectURL  *string   `pg:"projectUrl"`
	GithubURL   *string   `pg:"githubUrl"`
	TechStack   *string   `pg:"techStack"`
	Featured    bool      `pg:"featured"`
	CreatedAt   time.Time `pg:"createdAt"`
	UpdatedAt   time.Time `pg:"updatedAt"`
}

type Tag struct {
	tableName struct{} `pg:"tags,alias:t,discard_unknown_columns"`

	ID        int       `pg:"tagId,pk"`
	Name      string    `pg:"name,use_zero"`
	Color     *string   `pg:"color"`
	CreatedAt time.Time `pg:"createdAt"`
	UpdatedAt time.Time `pg:"updatedAt"`
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID        int       `pg:"userId,pk"`
	Username  string    `pg:"username,use_zero"`
	Email     string    `pg:"email,use_zero"`
	Password  string    `pg:"password,use_zero"`
	CreatedAt time.Time `pg:"createdAt"`
}
