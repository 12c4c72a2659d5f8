package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"skillmap/internal/logging"
)

// KeywordSeparator delimits keywords inside TaxonomyEntry.Keywords.
const KeywordSeparator = ","

// TaxonomyEntry is one persisted keyword row. A row contributes its keywords
// to every non-empty label it carries (domain, role, industry).
type TaxonomyEntry struct {
	ID        int64
	Domain    string
	Role      string
	Industry  string
	Keywords  string // "a,b,c"
	Active    bool
	CreatedAt time.Time
}

// KeywordList splits Keywords on the separator. Items are returned raw;
// normalization belongs to the index builder.
func (e TaxonomyEntry) KeywordList() []string {
	if strings.TrimSpace(e.Keywords) == "" {
		return nil
	}
	return strings.Split(e.Keywords, KeywordSeparator)
}

// JoinKeywords builds the delimited keyword column value.
func JoinKeywords(keywords []string) string {
	return strings.Join(keywords, KeywordSeparator)
}

// AddTaxonomyEntry inserts an entry and returns its id.
func (s *LocalStore) AddTaxonomyEntry(ctx context.Context, e TaxonomyEntry) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO taxonomy_entries (domain, role, industry, keywords, active)
		 VALUES (?, ?, ?, ?, ?)`,
		e.Domain, e.Role, e.Industry, e.Keywords, boolToInt(e.Active),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert taxonomy entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted id: %w", err)
	}
	logging.StoreDebug("Stored taxonomy entry %d (domain=%q role=%q industry=%q)", id, e.Domain, e.Role, e.Industry)
	return id, nil
}

// AddTaxonomyEntries inserts entries in one transaction, preserving their
// order. Either all rows are written or none are.
func (s *LocalStore) AddTaxonomyEntries(ctx context.Context, entries []TaxonomyEntry) (int, error) {
	return s.writeEntries(ctx, entries, false)
}

// ReplaceTaxonomyEntries deletes every entry and inserts entries in the same
// transaction. On error the previous contents are kept.
func (s *LocalStore) ReplaceTaxonomyEntries(ctx context.Context, entries []TaxonomyEntry) (int, error) {
	return s.writeEntries(ctx, entries, true)
}

func (s *LocalStore) writeEntries(ctx context.Context, entries []TaxonomyEntry, replace bool) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if replace {
		if _, err := tx.ExecContext(ctx, "DELETE FROM taxonomy_entries"); err != nil {
			return 0, fmt.Errorf("failed to clear taxonomy entries: %w", err)
		}
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO taxonomy_entries (domain, role, industry, keywords, active)
		 VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.Domain, e.Role, e.Industry, e.Keywords, boolToInt(e.Active)); err != nil {
			return 0, fmt.Errorf("failed to insert taxonomy entry %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit taxonomy entries: %w", err)
	}
	logging.Store("Stored %d taxonomy entries (replace=%v)", len(entries), replace)
	return len(entries), nil
}

// Count returns the number of entries, active or not.
func (s *LocalStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM taxonomy_entries").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count taxonomy entries: %w", err)
	}
	return n, nil
}

// SetActive toggles an entry's active flag.
func (s *LocalStore) SetActive(ctx context.Context, id int64, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "UPDATE taxonomy_entries SET active = ? WHERE id = ?", boolToInt(active), id)
	if err != nil {
		return fmt.Errorf("failed to update taxonomy entry %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("taxonomy entry %d not found", id)
	}
	return nil
}

// ListActiveTaxonomyEntries returns all active entries in insertion order.
// Insertion order is what gives store-derived categories their
// first-appearance ordering.
func (s *LocalStore) ListActiveTaxonomyEntries(ctx context.Context) ([]TaxonomyEntry, error) {
	timer := logging.StartTimer(logging.CategoryStore, "ListActiveTaxonomyEntries")
	defer timer.Stop()

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, domain, role, industry, keywords, active, created_at
		 FROM taxonomy_entries WHERE active = 1 ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query taxonomy entries: %w", err)
	}
	defer rows.Close()

	var entries []TaxonomyEntry
	for rows.Next() {
		var e TaxonomyEntry
		var active int
		var created string
		if err := rows.Scan(&e.ID, &e.Domain, &e.Role, &e.Industry, &e.Keywords, &active, &created); err != nil {
			logging.StoreDebug("Skipping unreadable taxonomy row: %v", err)
			continue
		}
		e.Active = active != 0
		e.CreatedAt = parseTimestamp(created)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate taxonomy entries: %w", err)
	}

	logging.StoreDebug("Loaded %d active taxonomy entries", len(entries))
	return entries, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// parseTimestamp accepts the layouts the two sqlite drivers hand back for
// CURRENT_TIMESTAMP columns scanned into a string.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
