package blog

import (
	"context"
	"fmt"

	"github.com/daniilsolovey/blog-cms/internal/db"
)

const DefaultPopularTags = 10

type TagManager struct {
	db *db.Repository
}

func NewTagManager(repo *db.Repository) *TagManager {
	return &TagManager{
		db: repo,
	}
}

func (m *TagManager) Create(ctx context.Context, in TagInput) (*Tag, error) {
	existing, err := m.db.TagByName(ctx, in.Name)
	if err != nil {
		return nil, fmt.Errorf("db get tag by name: %w", err)
	} else if existing != nil {
		return nil, conflictError("tag %q already exists", in.Name)
	}

	tag := &db.Tag{Name: in.Name, Color: in.Color}
	if err := m.db.InsertTag(ctx, tag); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, conflictError("tag %q already exists", in.Name)
		}
		return nil, fmt.Errorf("db insert tag: %w", err)
	}

	result := NewTag(*tag, 0)
	return &result, nil
}

// Tags returns every tag with its article count, newest first.
func (m *TagManager) Tags(ctx context.Context) ([]Tag, error) {
	list, err := m.db.Tags(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get tags: %w", err)
	}

	counts, err := m.db.TagArticleCounts(ctx, tagIDs(list))
	if err != nil {
		return nil, fmt.Errorf("db get tag article counts: %w", err)
	}

	return NewTags(list, counts), nil
}

func (m *TagManager) TagByID(ctx context.Context, tagID int) (*Tag, error) {
	tag, err := m.db.TagByID(ctx, tagID)
	if err != nil {
		return nil, fmt.Errorf("db get tag by id: %w", err)
	} else if tag == nil {
		return nil, ErrTagNotFound
	}

	counts, err := m.db.TagArticleCounts(ctx, []int{tagID})
	if err != nil {
		return nil, fmt.Errorf("db get tag article counts: %w", err)
	}

	result := NewTag(*tag, counts[tagID])
	return &result, nil
}

// Update renames or recolors a tag. Renaming to the current name is allowed.
func (m *TagManager) Update(ctx context.Context, tagID int, in TagUpdate) (*Tag, error) {
	current, err := m.db.TagByID(ctx, tagID)
	if err != nil {
		return nil, fmt.Errorf("db get tag by id: %w", err)
	} else if current == nil {
		return nil, ErrTagNotFound
	}

	if in.Name != nil && *in.Name != current.Name {
		other, err := m.db.TagByName(ctx, *in.Name)
		if err != nil {
			return nil, fmt.Errorf("db get tag by name: %w", err)
		} else if other != nil && other.ID != tagID {
			return nil, conflictError("tag %q already exists", *in.Name)
		}
	}

	if _, err := m.db.UpdateTag(ctx, tagID, db.TagPatch{Name: in.Name, Color: in.Color}); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, conflictError("tag %q already exists", *in.Name)
		}
		return nil, fmt.Errorf("db update tag: %w", err)
	}

	return m.TagByID(ctx, tagID)
}

// Remove deletes the tag and unlinks it from articles.
func (m *TagManager) Remove(ctx context.Context, tagID int) (*Tag, error) {
	var removed *Tag
	err := m.db.RunInTransaction(ctx, func(repo *db.Repository) error {
		tag, err := repo.TagByID(ctx, tagID)
		if err != nil {
			return fmt.Errorf("db get tag by id: %w", err)
		} else if tag == nil {
			return ErrTagNotFound
		}

		if ok, err := repo.DeleteTag(ctx, tagID); err != nil {
			return fmt.Errorf("db delete tag: %w", err)
		} else if !ok {
			return ErrTagNotFound
		}

		t := NewTag(*tag, 0)
		removed = &t
		return nil
	})
	if err != nil {
		return nil, err
	}

	return removed, nil
}

// PopularTags returns up to limit tags ordered by article count, then name.
func (m *TagManager) PopularTags(ctx context.Context, limit int) ([]Tag, error) {
	if limit == 0 {
		limit = DefaultPopularTags
	}
	if limit < 0 || limit > MaxLimit {
		return nil, validationError("limit must be between 1 and %d", MaxLimit)
	}

	list, err := m.db.PopularTags(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("db get popular tags: %w", err)
	}

	counts, err := m.db.TagArticleCounts(ctx, tagIDs(list))
	if err != nil {
		return nil, fmt.Errorf("db get tag article counts: %w", err)
	}

	return NewTags(list, counts), nil
}
