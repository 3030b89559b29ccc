package store

import (
	"context"
	"fmt"
	"strings"
)

// Category is one entry of the topic taxonomy, exposed to the frontend as
// a flat tag list.
type Category struct {
	ID   int64
	Name string
	Slug string
}

// ListCategories returns all categories ordered by name.
func (s *Store) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, slug FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var cats []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// CategoriesBySlugs resolves the given slugs to categories; unknown slugs
// are silently dropped.
func (s *Store) CategoriesBySlugs(ctx context.Context, slugs []string) ([]Category, error) {
	if len(slugs) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(slugs))
	args := make([]any, len(slugs))
	for i, slug := range slugs {
		placeholders[i] = "?"
		args[i] = slug
	}

	query := `SELECT id, name, slug FROM categories WHERE slug IN (` + strings.Join(placeholders, ",") + `)`
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("categories by slugs: %w", err)
	}
	defer rows.Close()

	var cats []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// CategoriesByIDs resolves the given ids to categories; unknown ids are
// silently dropped.
func (s *Store) CategoriesByIDs(ctx context.Context, ids []int64) ([]Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}

	query := `SELECT id, name, slug FROM categories WHERE id IN (` + strings.Join(placeholders, ",") + `)`
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("categories by ids: %w", err)
	}
	defer rows.Close()

	var cats []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// AttachCategories links categories to a user, skipping pairs that already
// exist, and returns how many links were newly created.
func (s *Store) AttachCategories(ctx context.Context, userID int64, categoryIDs []int64) (int, error) {
	created := 0
	for _, catID := range categoryIDs {
		res, err := s.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO user_categories (user_id, category_id) VALUES (?, ?)`,
			userID, catID)
		if err != nil {
			return created, fmt.Errorf("attach category %d: %w", catID, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			created++
		}
	}
	return created, nil
}

// CountUserCategories returns how many categories a user has picked.
func (s *Store) CountUserCategories(ctx context.Context, userID int64) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM user_categories WHERE user_id = ?`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count user categories: %w", err)
	}
	return count, nil
}
