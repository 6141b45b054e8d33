package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dkrivenko/trackerd/internal/logger"
	"github.com/dkrivenko/trackerd/internal/models"
)

type categoryRepo struct {
	s *Store
}

func (r *categoryRepo) OnChange(fn func()) {
	r.s.categoryObs.subscribe(fn)
}

// fetchOrCreateCategory is the sole path by which categories come into
// existence implicitly. Lookup is by exact, case-sensitive title.
func fetchOrCreateCategory(tx *sql.Tx, title string) (uuid.UUID, bool, error) {
	var idStr string
	err := tx.QueryRow(`SELECT id FROM categories WHERE title = ?`, title).Scan(&idStr)
	if err == nil {
		id, parseErr := uuid.Parse(idStr)
		if parseErr != nil {
			return uuid.Nil, false, fmt.Errorf("failed to parse category id: %w", parseErr)
		}
		return id, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, false, fmt.Errorf("failed to look up category: %w", err)
	}

	id := uuid.New()
	if _, err := tx.Exec(`INSERT INTO categories (id, title) VALUES (?, ?)`, id.String(), title); err != nil {
		return uuid.Nil, false, fmt.Errorf("failed to create category: %w", err)
	}
	return id, true, nil
}

func (r *categoryRepo) FetchOrCreate(title string) (models.TrackerCategory, error) {
	var (
		id      uuid.UUID
		created bool
	)
	err := r.s.withTx(func(tx *sql.Tx) error {
		var err error
		id, created, err = fetchOrCreateCategory(tx, title)
		return err
	})
	if err != nil {
		return models.TrackerCategory{}, err
	}

	if created {
		r.s.categoryObs.notify()
	}
	return models.TrackerCategory{ID: id, Title: title}, nil
}

func (r *categoryRepo) Create(title string) error {
	_, err := r.FetchOrCreate(title)
	return err
}

func (r *categoryRepo) Rename(oldTitle, newTitle string) error {
	var renamed bool
	err := r.s.withTx(func(tx *sql.Tx) error {
		result, err := tx.Exec(`UPDATE categories SET title = ? WHERE title = ?`, newTitle, oldTitle)
		if err != nil {
			return fmt.Errorf("failed to rename category: %w", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		renamed = rows > 0
		return nil
	})
	if err != nil {
		return err
	}

	if !renamed {
		logger.Warn("Rename skipped, category not found", "title", oldTitle)
		return nil
	}

	r.s.categoryObs.notify()
	return nil
}

func (r *categoryRepo) Delete(title string) error {
	var deleted bool
	err := r.s.withTx(func(tx *sql.Tx) error {
		var idStr string
		err := tx.QueryRow(`SELECT id FROM categories WHERE title = ?`, title).Scan(&idStr)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to look up category: %w", err)
		}

		var members int
		if err := tx.QueryRow(`SELECT COUNT(*) FROM trackers WHERE category_id = ?`, idStr).Scan(&members); err != nil {
			return fmt.Errorf("failed to count category members: %w", err)
		}

		if members > 0 {
			if title == models.DefaultCategoryTitle {
				return fmt.Errorf("cannot delete %q while it still has trackers", title)
			}
			// Members survive: they move to the default category.
			defaultID, _, err := fetchOrCreateCategory(tx, models.DefaultCategoryTitle)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(`UPDATE trackers SET category_id = ? WHERE category_id = ?`, defaultID.String(), idStr); err != nil {
				return fmt.Errorf("failed to re-link trackers: %w", err)
			}
		}

		if _, err := tx.Exec(`DELETE FROM categories WHERE id = ?`, idStr); err != nil {
			return fmt.Errorf("failed to delete category: %w", err)
		}
		deleted = true
		return nil
	})
	if err != nil {
		return err
	}

	if deleted {
		r.s.categoryObs.notify()
		r.s.trackerObs.notify()
	}
	return nil
}

func (r *categoryRepo) FetchAll() ([]models.TrackerCategory, error) {
	rows, err := r.s.db.Query(`
		SELECT c.id, c.title, t.id, t.title, t.color, t.emoji, t.schedule
		FROM categories c
		LEFT JOIN trackers t ON t.category_id = c.id
		ORDER BY c.title, t.title, t.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var (
		categories []models.TrackerCategory
		current    *models.TrackerCategory
	)
	for rows.Next() {
		var (
			catIDStr, catTitle                     string
			tID, tTitle, tColor, tEmoji, tSchedule sql.NullString
		)
		if err := rows.Scan(&catIDStr, &catTitle, &tID, &tTitle, &tColor, &tEmoji, &tSchedule); err != nil {
			return nil, err
		}

		catID, err := uuid.Parse(catIDStr)
		if err != nil || catTitle == "" {
			logger.Warn("Skipping malformed category row", "id", catIDStr)
			continue
		}

		if current == nil || current.ID != catID {
			categories = append(categories, models.TrackerCategory{ID: catID, Title: catTitle})
			current = &categories[len(categories)-1]
		}

		if !tID.Valid {
			continue // empty category
		}
		tracker, err := decodeTracker(tID.String, tTitle.String, tColor.String, tEmoji.String, tSchedule.String)
		if err != nil {
			logger.Warn("Skipping malformed tracker row", "error", err)
			continue
		}
		current.Trackers = append(current.Trackers, tracker)
	}

	return categories, rows.Err()
}
