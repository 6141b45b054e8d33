package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dkrivenko/trackerd/internal/logger"
	"github.com/dkrivenko/trackerd/internal/models"
	"github.com/dkrivenko/trackerd/internal/storage"
)

type trackerRepo struct {
	s *Store
}

func (r *trackerRepo) OnChange(fn func()) {
	r.s.trackerObs.subscribe(fn)
}

func (r *trackerRepo) Create(t models.Tracker, categoryTitle string) error {
	if categoryTitle == "" {
		categoryTitle = models.DefaultCategoryTitle
	}

	blob, err := models.EncodeSchedule(t.Schedule)
	if err != nil {
		return fmt.Errorf("failed to encode schedule: %w", err)
	}

	err = r.s.withTx(func(tx *sql.Tx) error {
		categoryID, _, err := fetchOrCreateCategory(tx, categoryTitle)
		if err != nil {
			return err
		}

		_, err = tx.Exec(`
			INSERT INTO trackers (id, title, color, emoji, schedule, category_id)
			VALUES (?, ?, ?, ?, ?, ?)`,
			t.ID.String(), t.Title, t.Color, t.Emoji, string(blob), categoryID.String())
		if err != nil {
			return fmt.Errorf("failed to insert tracker: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.s.trackerObs.notify()
	r.s.categoryObs.notify()
	return nil
}

func (r *trackerRepo) Update(t models.Tracker, categoryTitle string) error {
	if categoryTitle == "" {
		categoryTitle = models.DefaultCategoryTitle
	}

	blob, err := models.EncodeSchedule(t.Schedule)
	if err != nil {
		return fmt.Errorf("failed to encode schedule: %w", err)
	}

	err = r.s.withTx(func(tx *sql.Tx) error {
		var currentTitle string
		err := tx.QueryRow(`
			SELECT c.title FROM trackers t
			JOIN categories c ON c.id = t.category_id
			WHERE t.id = ?`, t.ID.String()).Scan(&currentTitle)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("tracker %s: %w", t.ID, storage.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to look up tracker: %w", err)
		}

		_, err = tx.Exec(`
			UPDATE trackers SET title = ?, color = ?, emoji = ?, schedule = ?
			WHERE id = ?`,
			t.Title, t.Color, t.Emoji, string(blob), t.ID.String())
		if err != nil {
			return fmt.Errorf("failed to update tracker: %w", err)
		}

		// Re-link only on an actual change to avoid creating categories
		// the tracker is not moving to.
		if currentTitle != categoryTitle {
			categoryID, _, err := fetchOrCreateCategory(tx, categoryTitle)
			if err != nil {
				return err
			}
			_, err = tx.Exec(`UPDATE trackers SET category_id = ? WHERE id = ?`,
				categoryID.String(), t.ID.String())
			if err != nil {
				return fmt.Errorf("failed to re-link category: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.s.trackerObs.notify()
	r.s.categoryObs.notify()
	return nil
}

func (r *trackerRepo) Delete(id uuid.UUID) error {
	err := r.s.withTx(func(tx *sql.Tx) error {
		// Records go first so a tracker is never deleted leaving orphaned
		// completion rows.
		if _, err := tx.Exec(`DELETE FROM records WHERE tracker_id = ?`, id.String()); err != nil {
			return fmt.Errorf("failed to delete tracker records: %w", err)
		}

		result, err := tx.Exec(`DELETE FROM trackers WHERE id = ?`, id.String())
		if err != nil {
			return fmt.Errorf("failed to delete tracker: %w", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return fmt.Errorf("tracker %s: %w", id, storage.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.s.trackerObs.notify()
	r.s.categoryObs.notify()
	r.s.recordObs.notify()
	return nil
}

func (r *trackerRepo) FetchAll() ([]models.Tracker, error) {
	rows, err := r.s.db.Query(`
		SELECT id, title, color, emoji, schedule
		FROM trackers ORDER BY title, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query trackers: %w", err)
	}
	defer rows.Close()

	var trackers []models.Tracker
	for rows.Next() {
		var idStr, title, color, emoji, blob string
		if err := rows.Scan(&idStr, &title, &color, &emoji, &blob); err != nil {
			return nil, err
		}

		t, err := decodeTracker(idStr, title, color, emoji, blob)
		if err != nil {
			// Lenient read: one corrupt row must not fail the whole list.
			logger.Warn("Skipping malformed tracker row", "error", err)
			continue
		}
		trackers = append(trackers, t)
	}

	return trackers, rows.Err()
}

// decodeTracker converts a raw row into a Tracker, returning a DecodeError
// for rows that cannot round-trip.
func decodeTracker(idStr, title, color, emoji, blob string) (models.Tracker, error) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		return models.Tracker{}, &storage.DecodeError{Entity: "tracker", ID: idStr, Err: err}
	}
	if title == "" {
		return models.Tracker{}, &storage.DecodeError{Entity: "tracker", ID: idStr, Err: fmt.Errorf("empty title")}
	}
	schedule, err := models.DecodeSchedule([]byte(blob))
	if err != nil {
		return models.Tracker{}, &storage.DecodeError{Entity: "tracker", ID: idStr, Err: err}
	}
	return models.Tracker{
		ID:       id,
		Title:    title,
		Color:    color,
		Emoji:    emoji,
		Schedule: schedule,
	}, nil
}
