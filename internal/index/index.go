// Package index keeps an in-memory SQLite copy of the categories document
// for website search. The JSON documents stay the source of truth; the
// index is rebuilt from them after every change.
package index

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/linkshelf/pkg/types"
)

// ErrClosed is returned by operations on a closed Index.
var ErrClosed = errors.New("index is closed")

// Index is a SQLite-backed website search index.
type Index struct {
	mu sync.Mutex
	db *sql.DB
}

// Open creates an empty in-memory index.
func Open() (*Index, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}
	// Every pooled connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating schema: %w", err)
		}
	}
	return &Index{db: db}, nil
}

// Close releases the database. Idempotent.
func (ix *Index) Close() error {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if ix.db == nil {
		return nil
	}
	err := ix.db.Close()
	ix.db = nil
	return err
}

// Rebuild replaces the index content with cats. Loading is transactional:
// on failure the previous content is kept.
func (ix *Index) Rebuild(cats []types.Category) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if ix.db == nil {
		return ErrClosed
	}

	tx, err := ix.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning rebuild transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"websites", "categories"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	catStmt, err := tx.Prepare("INSERT INTO categories (category_id, name, position) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing category insert: %w", err)
	}
	defer catStmt.Close()

	siteStmt, err := tx.Prepare("INSERT INTO websites (website_id, category_pos, position, name_lc, description_lc) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing website insert: %w", err)
	}
	defer siteStmt.Close()

	for ci, c := range cats {
		if _, err := catStmt.Exec(c.ID, c.Name, ci); err != nil {
			return fmt.Errorf("inserting category %d: %w", c.ID, err)
		}
		for wi, w := range c.Websites {
			if _, err := siteStmt.Exec(w.ID, ci, wi, strings.ToLower(w.Name), strings.ToLower(w.Description)); err != nil {
				return fmt.Errorf("inserting website %d: %w", w.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing rebuild: %w", err)
	}
	return nil
}

// SearchWebsites returns the ids of websites whose name or description
// contains term, case-insensitively, in category order then list order.
// An empty term matches every website.
func (ix *Index) SearchWebsites(term string) ([]int, error) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if ix.db == nil {
		return nil, ErrClosed
	}

	term = strings.ToLower(strings.TrimSpace(term))
	rows, err := ix.db.Query(`
		SELECT website_id
		FROM websites
		WHERE ?1 = '' OR instr(name_lc, ?1) > 0 OR instr(description_lc, ?1) > 0
		ORDER BY category_pos, position
	`, term)
	if err != nil {
		return nil, fmt.Errorf("querying websites: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Count returns the number of indexed categories and websites.
func (ix *Index) Count() (categories, websites int, err error) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if ix.db == nil {
		return 0, 0, ErrClosed
	}
	if err := ix.db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&categories); err != nil {
		return 0, 0, err
	}
	if err := ix.db.QueryRow("SELECT COUNT(*) FROM websites").Scan(&websites); err != nil {
		return 0, 0, err
	}
	return categories, websites, nil
}
