package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

type ProfilePatch struct {
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

func (r *Repository) ProfileByID(ctx context.Context, profileID int) (*Profile, error) {
	profile := &Profile{}
	err := r.db.ModelContext(ctx, profile).
		Where(`"t"."profileId" = ?`, profileID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, nil
}

// ProfileForUpdate reads the profile row and locks it until the transaction ends.
func (r *Repository) ProfileForUpdate(ctx context.Context, profileID int) (*Profile, error) {
	profile := &Profile{}
	err := r.db.ModelContext(ctx, profile).
		Where(`"t"."profileId" = ?`, profileID).
		For("UPDATE").
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to lock profile: %w", err)
	}

	return profile, nil
}

func (r *Repository) Profiles(ctx context.Context) ([]Profile, error) {
	profiles := []Profile{}
	err := r.db.ModelContext(ctx, &profiles).
		OrderExpr(`"t"."createdAt" DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}

	return profiles, nil
}

// InsertProfile inserts the profile. When skipExisting is set an existing row is kept
// and false is returned instead of a unique violation.
func (r *Repository) InsertProfile(ctx context.Context, profile *Profile, skipExisting bool) (bool, error) {
	query := r.db.ModelContext(ctx, profile)
	if skipExisting {
		query = query.OnConflict("DO NOTHING")
	}

	res, err := query.Returning("*").Insert()
	if skipExisting && errors.Is(err, pg.ErrNoRows) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("failed to insert profile: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) UpdateProfile(ctx context.Context, profileID int, p ProfilePatch) (bool, error) {
	q := r.db.ModelContext(ctx, (*Profile)(nil))
	fields := []struct {
		column string
		value  *string
	}{
		{Columns.Profile.Title, p.Title},
		{Columns.Profile.Avatar, p.Avatar},
		{Columns.Profile.Bio, p.Bio},
		{Columns.Profile.Github, p.Github},
		{Columns.Profile.Twitter, p.Twitter},
		{Columns.Profile.Linkedin, p.Linkedin},
		{Columns.Profile.Email, p.Email},
		{Columns.Profile.Phone, p.Phone},
		{Columns.Profile.Location, p.Location},
	}
	for _, f := range fields {
		if f.value != nil {
			q = set(q, f.column, *f.value)
		}
	}

	res, err := q.Set(`"updatedAt" = NOW()`).
		Where(`"profileId" = ?`, profileID).
		Update()
	if err != nil {
		return false, fmt.Errorf("failed to update profile: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) DeleteProfile(ctx context.Context, profileID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Profile)(nil)).
		Where(`"profileId" = ?`, profileID).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete profile: %w", err)
	}

	return res.RowsAffected() > 0, nil
}
