package rest

import "time"

type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type Tag struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Color     *string   `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Count     TagCount  `json:"_count"`
}

type TagCount struct {
	Articles int `json:"articles"`
}

// ArticleTag is an article-tag link with the linked tag.
type ArticleTag struct {
	ID        int       `json:"id"`
	ArticleID int       `json:"articleId"`
	TagID     int       `json:"tagId"`
	CreatedAt time.Time `json:"createdAt"`
	Tag       TagRef    `json:"tag"`
}

type TagRef struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

type Article struct {
	ID          int          `json:"id"`
	Title       string       `json:"title"`
	Slug        string       `json:"slug"`
	Content     string       `json:"content"`
	Summary     *string      `json:"summary"`
	CoverImage  *string      `json:"coverImage"`
	ViewCount   int          `json:"viewCount"`
	Status      string       `json:"status"`
	IsPublished bool         `json:"isPublished"`
	PublishedAt *time.Time   `json:"publishedAt"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	Tags        []ArticleTag `json:"tags"`
	Count       ArticleCount `json:"_count"`
}

type ArticleCount struct {
	Comments int `json:"comments"`
}

type ArticleList struct {
	Data       []Article  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// ArticleRef is the article summary embedded into comments.
type ArticleRef struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type Comment struct {
	ID        int         `json:"id"`
	Content   string      `json:"content"`
	Author    string      `json:"author"`
	Email     string      `json:"email"`
	Website   *string     `json:"website"`
	IP        *string     `json:"ip,omitempty"`
	UserAgent *string     `json:"userAgent,omitempty"`
	Status    string      `json:"status"`
	ArticleID int         `json:"articleId"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	Article   *ArticleRef `json:"article,omitempty"`
}

type CommentList struct {
	Data       []Comment  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type CommentStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

type Project struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	ProjectURL  *string   `json:"projectUrl"`
	GithubURL   *string   `json:"githubUrl"`
	TechStack   *string   `json:"techStack"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ProjectStats struct {
	Total    int `json:"total"`
	Featured int `json:"featured"`
}

type Profile struct {
	ID        int       `json:"id"`
	Title     *string   `json:"title"`
	Avatar    *string   `json:"avatar"`
	Bio       *string   `json:"bio"`
	Github    *string   `json:"github"`
	Twitter   *string   `json:"twitter"`
	Linkedin  *string   `json:"linkedin"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Location  *string   `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

type Overview struct {
	Articles        int `json:"articles"`
	Comments        int `json:"comments"`
	Tags            int `json:"tags"`
	Projects        int `json:"projects"`
	TotalViews      int `json:"totalViews"`
	PendingComments int `json:"pendingComments"`
}

type TopViewedArticle struct {
	ID        int          `json:"id"`
	Title     string       `json:"title"`
	ViewCount int          `json:"viewCount"`
	CreatedAt time.Time    `json:"createdAt"`
	Count     ArticleCount `json:"_count"`
}

type ArticleStats struct {
	Published int                `json:"published"`
	Draft     int                `json:"draft"`
	Total     int                `json:"total"`
	TopViewed []TopViewedArticle `json:"topViewed"`
}

type MonthlyStat struct {
	Month    int `json:"month"`
	Articles int `json:"articles"`
	Comments int `json:"comments"`
	Views    int `json:"views"`
}

type MonthlyStats struct {
	Year int           `json:"year"`
	Data []MonthlyStat `json:"data"`
}

type TagStat struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Color        *string `json:"color"`
	ArticleCount int     `json:"articleCount"`
}

// Activity is a recent activity entry. Type is article, comment or project.
// Articles and projects carry Title; comments carry Author, Content and Article.
type Activity struct {
	Type      string      `json:"type"`
	ID        int         `json:"id"`
	Title     string      `json:"title,omitempty"`
	Author    string      `json:"author,omitempty"`
	Content   string      `json:"content,omitempty"`
	Article   *ArticleRef `json:"article,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

type RecentActivity struct {
	Items []Activity `json:"items"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
