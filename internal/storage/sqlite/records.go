package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dkrivenko/trackerd/internal/constants"
	"github.com/dkrivenko/trackerd/internal/logger"
	"github.com/dkrivenko/trackerd/internal/models"
)

type recordRepo struct {
	s *Store
}

func (r *recordRepo) OnChange(fn func()) {
	r.s.recordObs.subscribe(fn)
}

func dayString(t time.Time) string {
	return models.StartOfDay(t).Format(constants.DateFormat)
}

func (r *recordRepo) Add(rec models.TrackerRecord) error {
	var inserted bool
	err := r.s.withTx(func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRow(`SELECT 1 FROM trackers WHERE id = ?`, rec.TrackerID.String()).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			// Adding a record for an unknown tracker is a no-op so the
			// store never holds orphaned completion rows.
			logger.Warn("Record skipped, tracker not found", "tracker", rec.TrackerID)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to look up tracker: %w", err)
		}

		// The (tracker_id, day) primary key makes the at-most-one
		// invariant a store guarantee instead of caller discipline.
		result, err := tx.Exec(`
			INSERT INTO records (tracker_id, day) VALUES (?, ?)
			ON CONFLICT (tracker_id, day) DO NOTHING`,
			rec.TrackerID.String(), dayString(rec.Date))
		if err != nil {
			return fmt.Errorf("failed to insert record: %w", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		inserted = rows > 0
		return nil
	})
	if err != nil {
		return err
	}

	if inserted {
		r.s.recordObs.notify()
	}
	return nil
}

func (r *recordRepo) Delete(rec models.TrackerRecord) error {
	var deleted bool
	err := r.s.withTx(func(tx *sql.Tx) error {
		result, err := tx.Exec(`DELETE FROM records WHERE tracker_id = ? AND day = ?`,
			rec.TrackerID.String(), dayString(rec.Date))
		if err != nil {
			return fmt.Errorf("failed to delete record: %w", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		deleted = rows > 0
		return nil
	})
	if err != nil {
		return err
	}

	if deleted {
		r.s.recordObs.notify()
	}
	return nil
}

func (r *recordRepo) DeleteAll(trackerID uuid.UUID) error {
	var deleted bool
	err := r.s.withTx(func(tx *sql.Tx) error {
		result, err := tx.Exec(`DELETE FROM records WHERE tracker_id = ?`, trackerID.String())
		if err != nil {
			return fmt.Errorf("failed to delete records: %w", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		deleted = rows > 0
		return nil
	})
	if err != nil {
		return err
	}

	if deleted {
		r.s.recordObs.notify()
	}
	return nil
}

func (r *recordRepo) Contains(rec models.TrackerRecord) (bool, error) {
	var exists int
	err := r.s.db.QueryRow(`SELECT 1 FROM records WHERE tracker_id = ? AND day = ?`,
		rec.TrackerID.String(), dayString(rec.Date)).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query record: %w", err)
	}
	return true, nil
}

func (r *recordRepo) FetchAll() ([]models.TrackerRecord, error) {
	// The join drops rows whose owning tracker is gone.
	rows, err := r.s.db.Query(`
		SELECT r.tracker_id, r.day FROM records r
		JOIN trackers t ON t.id = r.tracker_id
		ORDER BY r.day DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []models.TrackerRecord
	for rows.Next() {
		var idStr, day string
		if err := rows.Scan(&idStr, &day); err != nil {
			return nil, err
		}

		trackerID, err := uuid.Parse(idStr)
		if err != nil {
			logger.Warn("Skipping malformed record row", "tracker", idStr)
			continue
		}
		date, err := time.ParseInLocation(constants.DateFormat, day, time.Local)
		if err != nil {
			logger.Warn("Skipping malformed record row", "day", day)
			continue
		}
		records = append(records, models.TrackerRecord{TrackerID: trackerID, Date: date})
	}

	return records, rows.Err()
}

func (r *recordRepo) Count(trackerID uuid.UUID) (int, error) {
	var count int
	err := r.s.db.QueryRow(`SELECT COUNT(*) FROM records WHERE tracker_id = ?`, trackerID.String()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

func (r *recordRepo) TotalCompletedCount() (int, error) {
	var count int
	err := r.s.db.QueryRow(`SELECT COUNT(*) FROM records`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}
