package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

type ProjectPatch struct {
	Title       *string
	Description *string
	ImageURL    *string
	ProjectURL  *string
	GithubURL   *string
	TechStack   *string
	Featured    *bool
}

// Projects returns projects with featured ones first, then newest first.
func (r *Repository) Projects(ctx context.Context, featured *bool) ([]Project, error) {
	var projects []Project
	query := r.db.ModelContext(ctx, &projects)

	if featured != nil {
		query = query.Where(`"t"."featured" = ?`, *featured)
	}

	err := query.
		OrderExpr(`"t"."featured" DESC, "t"."createdAt" DESC, "t"."projectId" DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}

	return projects, nil
}

func (r *Repository) RecentProjects(ctx context.Context, limit int) ([]Project, error) {
	var projects []Project
	err := r.db.ModelContext(ctx, &projects).
		OrderExpr(`"t"."createdAt" DESC, "t"."projectId" DESC`).
		Limit(limit).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query recent projects: %w", err)
	}

	return projects, nil
}

func (r *Repository) ProjectByID(ctx context.Context, projectID int) (*Project, error) {
	project := &Project{}
	err := r.db.ModelContext(ctx, project).
		Where(`"t"."projectId" = ?`, projectID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get project by id: %w", err)
	}

	return project, nil
}

func (r *Repository) ProjectsCount(ctx context.Context, featured *bool) (int, error) {
	query := r.db.ModelContext(ctx, (*Project)(nil))
	if featured != nil {
		query = query.Where(`"t"."featured" = ?`, *featured)
	}

	count, err := query.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get projects count: %w", err)
	}

	return count, nil
}

func (r *Repository) InsertProject(ctx context.Context, project *Project) error {
	if _, err := r.db.ModelContext(ctx, project).Returning("*").Insert(); err != nil {
		return fmt.Errorf("failed to insert project: %w", err)
	}

	return nil
}

func (r *Repository) UpdateProject(ctx context.Context, projectID int, p ProjectPatch) (bool, error) {
	q := r.db.ModelContext(ctx, (*Project)(nil))
	if p.Title != nil {
		q = set(q, Columns.Project.Title, *p.Title)
	}
	if p.Description != nil {
		q = set(q, Columns.Project.Description, *p.Description)
	}
	if p.ImageURL != nil {
		q = set(q, Columns.Project.ImageURL, *p.ImageURL)
	}
	if p.ProjectURL != nil {
		q = set(q, Columns.Project.ProjectURL, *p.ProjectURL)
	}
	if p.GithubURL != nil {
		q = set(q, Columns.Project.GithubURL, *p.GithubURL)
	}
	if p.TechStack != nil {
		q = set(q, Columns.Project.TechStack, *p.TechStack)
	}
	if p.Featured != nil {
		q = set(q, Columns.Project.Featured, *p.Featured)
	}

	res, err := q.Set(`"updatedAt" = NOW()`).
		Where(`"projectId" = ?`, projectID).
		Update()
	if err != nil {
		return false, fmt.Errorf("failed to update project: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) DeleteProject(ctx context.Context, projectID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Project)(nil)).
		Where(`"projectId" = ?`, projectID).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete project: %w", err)
	}

	return res.RowsAffected() > 0, nil
}
