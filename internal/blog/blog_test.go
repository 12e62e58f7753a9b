package blog

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/blog-cms/internal/db"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"  Go: Tips & Tricks!  ", "go-tips-tricks"},
		{"a -- b", "a-b"},
		{"snake_case title", "snake_case-title"},
		{"Release 2.0", "release-20"},
		{"!!!", "article"},
		{"---", "article"},
		{"", "article"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestSlugCandidate(t *testing.T) {
	now := time.UnixMilli(1718452800123)

	assert.Equal(t, "hello-1718452800123", slugCandidate("hello", now, 1))
	assert.Equal(t, "hello-1718452800123-2", slugCandidate("hello", now, 2))
	assert.Equal(t, "hello-1718452800123-3", slugCandidate("hello", now, 3))
}

func TestPagingNormalize(t *testing.T) {
	t.Run("ZeroValuesGetDefaults", func(t *testing.T) {
		p, err := Paging{}.Normalize()
		require.NoError(t, err)
		assert.Equal(t, Paging{Page: DefaultPage, Limit: DefaultLimit}, p)
	})

	t.Run("ValidValuesAreKept", func(t *testing.T) {
		p, err := Paging{Page: 3, Limit: MaxLimit}.Normalize()
		require.NoError(t, err)
		assert.Equal(t, Paging{Page: 3, Limit: MaxLimit}, p)
	})

	invalid := []Paging{
		{Page: -1, Limit: 10},
		{Page: 1, Limit: -5},
		{Page: 1, Limit: MaxLimit + 1},
	}
	for _, p := range invalid {
		_, err := p.Normalize()
		assert.ErrorIs(t, err, ErrValidation, "paging %+v", p)
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, limit, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{455, 100, 5},
		{5, 0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.total, tt.limit), "total=%d limit=%d", tt.total, tt.limit)
	}
}

func TestNewPage(t *testing.T) {
	page := newPage[int](nil, Paging{Page: 2, Limit: 5}, 12)

	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 5, page.Limit)
	assert.Equal(t, 12, page.Total)
	assert.Equal(t, 3, page.TotalPages)
}

func TestDedupeIDs(t *testing.T) {
	assert.Equal(t, []int{3, 1, 2}, dedupeIDs([]int{3, 1, 3, 2, 1}))
	assert.Empty(t, dedupeIDs(nil))
}

func TestDiffTagIDs(t *testing.T) {
	tests := []struct {
		name        string
		current     []int
		desired     []int
		add, remove []int
	}{
		{name: "Overlap", current: []int{1, 2, 3}, desired: []int{2, 3, 4}, add: []int{4}, remove: []int{1}},
		{name: "FromEmpty", current: nil, desired: []int{1, 2}, add: []int{1, 2}},
		{name: "ToEmpty", current: []int{1}, desired: []int{}, remove: []int{1}},
		{name: "Unchanged", current: []int{5, 6}, desired: []int{6, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			add, remove := diffTagIDs(tt.current, tt.desired)
			assert.Equal(t, tt.add, add)
			assert.Equal(t, tt.remove, remove)
		})
	}
}

func TestPublishState(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("PublishingDraftSetsPublishedAt", func(t *testing.T) {
		published, at := publishState(db.Article{Status: StatusDraft}, StatusPublished, now)
		require.NotNil(t, published)
		require.NotNil(t, at)
		assert.True(t, *published)
		assert.Equal(t, now, *at)
	})

	t.Run("RepublishingKeepsPublishedAt", func(t *testing.T) {
		published, at := publishState(db.Article{Status: StatusPublished, IsPublished: true}, StatusPublished, now)
		assert.Nil(t, published)
		assert.Nil(t, at)
	})

	t.Run("DraftClearsFlagOnly", func(t *testing.T) {
		published, at := publishState(db.Article{Status: StatusPublished, IsPublished: true}, StatusDraft, now)
		require.NotNil(t, published)
		assert.False(t, *published)
		assert.Nil(t, at)
	})
}

func TestFillMonthly(t *testing.T) {
	data := fillMonthly(
		[]db.MonthlyCount{{Month: 3, Count: 1}, {Month: 6, Count: 2}},
		[]db.MonthlyCount{{Month: 6, Count: 4}},
		[]db.MonthlyCount{{Month: 3, Count: 200}, {Month: 13, Count: 9}},
	)

	require.Len(t, data, 12)
	for i, m := range data {
		assert.Equal(t, i+1, m.Month)
	}
	assert.Equal(t, MonthlyStat{Month: 3, Articles: 1, Views: 200}, data[2])
	assert.Equal(t, MonthlyStat{Month: 6, Articles: 2, Comments: 4}, data[5])
	assert.Equal(t, MonthlyStat{Month: 1}, data[0])

	assert.Len(t, fillMonthly(nil, nil, nil), 12)
}

func TestMergeActivities(t *testing.T) {
	base := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

	t.Run("SortsNewestFirst", func(t *testing.T) {
		items := mergeActivities(10,
			[]db.Article{{ID: 1, CreatedAt: at(3)}},
			[]db.Comment{{ID: 2, CreatedAt: at(5)}},
			[]db.Project{{ID: 3, CreatedAt: at(1)}},
		)

		require.Len(t, items, 3)
		assert.Equal(t, ActivityComment, items[0].Type)
		assert.Equal(t, 2, items[0].Comment.ID)
		assert.Equal(t, ActivityArticle, items[1].Type)
		assert.Equal(t, 1, items[1].Article.ID)
		assert.Equal(t, ActivityProject, items[2].Type)
		assert.Equal(t, 3, items[2].Project.ID)
	})

	t.Run("TruncatesToLimit", func(t *testing.T) {
		var (
			articles []db.Article
			comments []db.Comment
			projects []db.Project
		)
		for i := 0; i < 5; i++ {
			articles = append(articles, db.Article{ID: i, CreatedAt: at(i * 3)})
			comments = append(comments, db.Comment{ID: i, CreatedAt: at(i*3 + 1)})
			projects = append(projects, db.Project{ID: i, CreatedAt: at(i*3 + 2)})
		}

		items := mergeActivities(10, articles, comments, projects)
		require.Len(t, items, 10)
		for i := 1; i < len(items); i++ {
			assert.False(t, items[i].CreatedAt.After(items[i-1].CreatedAt))
		}
		assert.Equal(t, at(14), items[0].CreatedAt)
	})

	t.Run("KeepsKindOrderOnTies", func(t *testing.T) {
		items := mergeActivities(10,
			[]db.Article{{ID: 1, CreatedAt: at(1)}},
			[]db.Comment{{ID: 1, CreatedAt: at(1)}},
			[]db.Project{{ID: 1, CreatedAt: at(1)}},
		)

		require.Len(t, items, 3)
		assert.Equal(t, []ActivityType{ActivityArticle, ActivityComment, ActivityProject},
			[]ActivityType{items[0].Type, items[1].Type, items[2].Type})
	})
}

func TestNewArticles(t *testing.T) {
	goTag := db.Tag{ID: 7, Name: "Go"}
	articles := []db.Article{{ID: 1}, {ID: 2}}
	links := []db.ArticleTag{{ID: 10, ArticleID: 1, TagID: 7, Tag: &goTag}}

	result := NewArticles(articles, links, map[int]int{1: 3})

	require.Len(t, result, 2)
	require.Len(t, result[0].Tags, 1)
	assert.Equal(t, "Go", result[0].Tags[0].Tag.Name)
	assert.Equal(t, 3, result[0].CommentCount)
	assert.NotNil(t, result[1].Tags)
	assert.Empty(t, result[1].Tags)
	assert.Zero(t, result[1].CommentCount)
}

func TestErrors(t *testing.T) {
	assert.True(t, errors.Is(ErrArticleNotFound, ErrNotFound))
	assert.True(t, errors.Is(ErrInvalidCredentials, ErrUnauthorized))
	assert.False(t, errors.Is(ErrTagNotFound, ErrConflict))

	err := conflictError("tag %q already exists", "Go")
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, `tag "Go" already exists`, Message(err))
	assert.Empty(t, Message(errors.New("boom")))
}

func TestSanitizer(t *testing.T) {
	s := NewSanitizer()

	tests := []struct {
		in, want string
	}{
		{"plain text", "plain text"},
		{"<b>bold</b> text", "bold text"},
		{"<script>alert(1)</script>Hello", "Hello"},
		{"  <i>hi</i>  ", "hi"},
		{"<img src=x onerror=alert(1)>", ""},
		{"Tom & Jerry", "Tom & Jerry"},
		{"O'Brien", "O'Brien"},
		{"I don't agree", "I don't agree"},
		{`say "hi"`, `say "hi"`},
		{"1 < 2", "1 < 2"},
		{"<b>Tom & Jerry</b>", "Tom & Jerry"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, s.Text(tt.in), "input %q", tt.in)
	}
}

func TestCheckStatuses(t *testing.T) {
	assert.NoError(t, checkArticleStatus(StatusDraft))
	assert.NoError(t, checkArticleStatus(StatusPublished))
	assert.ErrorIs(t, checkArticleStatus("ARCHIVED"), ErrValidation)

	assert.NoError(t, checkCommentStatus(CommentRejected))
	assert.ErrorIs(t, checkCommentStatus("SPAM"), ErrValidation)
}
