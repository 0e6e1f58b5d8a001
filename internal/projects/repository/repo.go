// Package repository reads and writes project rows through the caller's
// authorized store handle. Which rows are visible is decided by the store's
// row-level policy, not here.
package repository

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/home-central/backend/internal/projects/domain"
	"github.com/home-central/backend/internal/supabase"
)

const table = "projects"

// Store wraps one per-request authorized client. It is constructed fresh for
// every request and discarded afterwards.
type Store struct {
	db *supabase.Client
}

func New(db *supabase.Client) *Store {
	return &Store{db: db}
}

// Insert creates a row and returns the stored representation.
func (s *Store) Insert(ctx context.Context, record map[string]any) (*domain.Project, error) {
	var rows []domain.Project
	if err := s.db.From(table).Insert(ctx, record, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &supabase.Error{Kind: supabase.KindUnexpected, Message: "store returned no row for insert"}
	}
	return &rows[0], nil
}

// List returns every row visible to the caller.
func (s *Store) List(ctx context.Context) ([]domain.Project, error) {
	rows := []domain.Project{}
	if err := s.db.From(table).Select("*").Get(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByID looks a row up by identifier. An empty result is a not-found, the
// same whether the row is absent or just not visible to the caller.
func (s *Store) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	var rows []domain.Project
	if err := s.db.From(table).Select("*").Eq("id", id).Get(ctx, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, supabase.NotFound("Project not found")
	}
	return &rows[0], nil
}

// Update patches exactly the given fields on a row and returns the updated
// representation.
func (s *Store) Update(ctx context.Context, id string, fields map[string]json.RawMessage) (*domain.Project, error) {
	var rows []domain.Project
	if err := s.db.From(table).Eq("id", id).Update(ctx, fields, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, supabase.NotFound("Project not found")
	}
	return &rows[0], nil
}

// Delete removes a row.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.db.From(table).Eq("id", id).Delete(ctx); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}
