package blog

import (
	"context"
	"fmt"

	"github.com/daniilsolovey/blog-cms/internal/db"
)

const (
	defaultProfileTitle = "My Blog"
	defaultProfileBio   = "Welcome to my personal blog"
)

// ProfileManager manages the single site profile stored under db.ProfileID.
type ProfileManager struct {
	db *db.Repository
}

func NewProfileManager(repo *db.Repository) *ProfileManager {
	return &ProfileManager{
		db: repo,
	}
}

// Profile returns the site profile, creating the default one on first access.
func (m *ProfileManager) Profile(ctx context.Context) (*Profile, error) {
	profile, err := m.db.ProfileByID(ctx, db.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("db get profile: %w", err)
	} else if profile != nil {
		result := NewProfile(*profile)
		return &result, nil
	}

	if _, err := m.db.InsertProfile(ctx, defaultProfile(), true); err != nil {
		return nil, fmt.Errorf("db insert default profile: %w", err)
	}

	profile, err = m.db.ProfileByID(ctx, db.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("db get profile: %w", err)
	} else if profile == nil {
		return nil, ErrProfileNotFound
	}

	result := NewProfile(*profile)
	return &result, nil
}

func (m *ProfileManager) Profiles(ctx context.Context) ([]Profile, error) {
	list, err := m.db.Profiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get profiles: %w", err)
	}

	return Map(list, NewProfile), nil
}

// Create stores the profile. It fails with a conflict when the profile already exists.
func (m *ProfileManager) Create(ctx context.Context, in ProfileInput) (*Profile, error) {
	profile := newProfileRow(in)
	if _, err := m.db.InsertProfile(ctx, profile, false); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, conflictError("profile already exists")
		}
		return nil, fmt.Errorf("db insert profile: %w", err)
	}

	result := NewProfile(*profile)
	return &result, nil
}

// UpdateFirst updates the provided fields of the profile, creating it from the input when absent.
func (m *ProfileManager) UpdateFirst(ctx context.Context, in ProfileInput) (*Profile, error) {
	err := m.db.RunInTransaction(ctx, func(repo *db.Repository) error {
		current, err := repo.ProfileForUpdate(ctx, db.ProfileID)
		if err != nil {
			return fmt.Errorf("db lock profile: %w", err)
		}

		if current == nil {
			inserted, err := repo.InsertProfile(ctx, newProfileRow(in), true)
			if err != nil {
				return fmt.Errorf("db insert profile: %w", err)
			} else if inserted {
				return nil
			}
		}

		if _, err := repo.UpdateProfile(ctx, db.ProfileID, profilePatch(in)); err != nil {
			return fmt.Errorf("db update profile: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return m.Profile(ctx)
}

func (m *ProfileManager) Update(ctx context.Context, profileID int, in ProfileInput) (*Profile, error) {
	ok, err := m.db.UpdateProfile(ctx, profileID, profilePatch(in))
	if err != nil {
		return nil, fmt.Errorf("db update profile: %w", err)
	} else if !ok {
		return nil, ErrProfileNotFound
	}

	profile, err := m.db.ProfileByID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("db get profile: %w", err)
	} else if profile == nil {
		return nil, ErrProfileNotFound
	}

	result := NewProfile(*profile)
	return &result, nil
}

func (m *ProfileManager) Remove(ctx context.Context, profileID int) (*Profile, error) {
	profile, err := m.db.ProfileByID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("db get profile: %w", err)
	} else if profile == nil {
		return nil, ErrProfileNotFound
	}

	ok, err := m.db.DeleteProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("db delete profile: %w", err)
	} else if !ok {
		return nil, ErrProfileNotFound
	}

	result := NewProfile(*profile)
	return &result, nil
}

func defaultProfile() *db.Profile {
	title, bio, email := defaultProfileTitle, defaultProfileBio, ""
	return &db.Profile{
		ID:    db.ProfileID,
		Title: &title,
		Bio:   &bio,
		Email: &email,
	}
}

func newProfileRow(in ProfileInput) *db.Profile {
	return &db.Profile{
		ID:       db.ProfileID,
		Title:    in.Title,
		Avatar:   in.Avatar,
		Bio:      in.Bio,
		Github:   in.Github,
		Twitter:  in.Twitter,
		Linkedin: in.Linkedin,
		Email:    in.Email,
		Phone:    in.Phone,
		Location: in.Location,
	}
}

func profilePatch(in ProfileInput) db.ProfilePatch {
	return db.ProfilePatch{
		Title:    in.Title,
		Avatar:   in.Avatar,
		Bio:      in.Bio,
		Github:   in.Github,
		Twitter:  in.Twitter,
		Linkedin: in.Linkedin,
		Email:    in.Email,
		Phone:    in.Phone,
		Location: in.Location,
	}
}
