package blog

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/daniilsolovey/blog-cms/internal/db"
)

type ProjectManager struct {
	db *db.Repository
}

func NewProjectManager(repo *db.Repository) *ProjectManager {
	return &ProjectManager{
		db: repo,
	}
}

func (m *ProjectManager) Create(ctx context.Context, in ProjectInput) (*Project, error) {
	project := &db.Project{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		ProjectURL:  in.ProjectURL,
		GithubURL:   in.GithubURL,
		TechStack:   in.TechStack,
		Featured:    in.Featured,
	}
	if err := m.db.InsertProject(ctx, project); err != nil {
		return nil, fmt.Errorf("db insert project: %w", err)
	}

	result := NewProject(*project)
	return &result, nil
}

// Projects lists projects, featured first. A nil featured returns all of them.
func (m *ProjectManager) Projects(ctx context.Context, featured *bool) ([]Project, error) {
	list, err := m.db.Projects(ctx, featured)
	if err != nil {
		return nil, fmt.Errorf("db get projects: %w", err)
	}

	return Map(list, NewProject), nil
}

func (m *ProjectManager) FeaturedProjects(ctx context.Context) ([]Project, error) {
	featured := true
	return m.Projects(ctx, &featured)
}

func (m *ProjectManager) ProjectByID(ctx context.Context, projectID int) (*Project, error) {
	project, err := m.db.ProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("db get project by id: %w", err)
	} else if project == nil {
		return nil, ErrProjectNotFound
	}

	result := NewProject(*project)
	return &result, nil
}

func (m *ProjectManager) Update(ctx context.Context, projectID int, in ProjectUpdate) (*Project, error) {
	patch := db.ProjectPatch{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		ProjectURL:  in.ProjectURL,
		GithubURL:   in.GithubURL,
		TechStack:   in.TechStack,
		Featured:    in.Featured,
	}

	ok, err := m.db.UpdateProject(ctx, projectID, patch)
	if err != nil {
		return nil, fmt.Errorf("db update project: %w", err)
	} else if !ok {
		return nil, ErrProjectNotFound
	}

	return m.ProjectByID(ctx, projectID)
}

func (m *ProjectManager) Remove(ctx context.Context, projectID int) (*Project, error) {
	project, err := m.ProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	ok, err := m.db.DeleteProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("db delete project: %w", err)
	} else if !ok {
		return nil, ErrProjectNotFound
	}

	return project, nil
}

func (m *ProjectManager) Stats(ctx context.Context) (ProjectStats, error) {
	var stats ProjectStats
	featured := true

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.Total, err = m.db.ProjectsCount(gctx, nil)
		return err
	})
	g.Go(func() (err error) {
		stats.Featured, err = m.db.ProjectsCount(gctx, &featured)
		return err
	})

	if err := g.Wait(); err != nil {
		return ProjectStats{}, fmt.Errorf("db get projects count: %w", err)
	}

	return stats, nil
}
