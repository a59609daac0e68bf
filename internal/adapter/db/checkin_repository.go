package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"goaltracker/internal/core/domain"
	"goaltracker/internal/core/ports"
)

const insertCheckInQuery = `
INSERT INTO daily_checkins (id, owner_id, goal_id, checkin_date, completed, note, created_at)
VALUES (:id, :owner_id, :goal_id, :checkin_date, :completed, :note, :created_at);
`

type CheckInRepository struct {
	db *sqlx.DB
}

type checkInRow struct {
	ID        string         `db:"id"`
	OwnerID   string         `db:"owner_id"`
	GoalID    string         `db:"goal_id"`
	Date      time.Time      `db:"checkin_date"`
	Completed bool           `db:"completed"`
	Note      sql.NullString `db:"note"`
	CreatedAt time.Time      `db:"created_at"`
}

var _ ports.CheckInRepository = (*CheckInRepository)(nil)

func NewCheckInRepository(db *sqlx.DB) *CheckInRepository {
	return &CheckInRepository{db: db}
}

func (r *CheckInRepository) Create(ctx context.Context, checkIn domain.DailyCheckIn) error {
	_, err := r.db.NamedExecContext(ctx, insertCheckInQuery, map[string]any{
		"id":           checkIn.ID,
		"owner_id":     checkIn.OwnerID,
		"goal_id":      checkIn.GoalID,
		"checkin_date": checkIn.Date,
		"completed":    checkIn.Completed,
		"note":         checkIn.Note,
		"created_at":   checkIn.CreatedAt,
	})
	return err
}

func (r *CheckInRepository) ListByGoal(ctx context.Context, ownerID, goalID string) ([]domain.DailyCheckIn, error) {
	var rows []checkInRow
	if err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM daily_checkins WHERE owner_id = ? AND goal_id = ? ORDER BY checkin_date DESC;",
		ownerID, goalID); err != nil {
		return nil, err
	}

	records := make([]domain.DailyCheckIn, 0, len(rows))
	for _, row := range rows {
		records = append(records, mapCheckInRow(row))
	}
	return records, nil
}

func (r *CheckInRepository) GetByGoalAndDate(ctx context.Context, ownerID, goalID string, day time.Time) (domain.DailyCheckIn, bool, error) {
	var row checkInRow
	err := r.db.GetContext(ctx, &row,
		"SELECT * FROM daily_checkins WHERE owner_id = ? AND goal_id = ? AND checkin_date = ? LIMIT 1;",
		ownerID, goalID, domain.NormalizeDay(day))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DailyCheckIn{}, false, nil
		}
		return domain.DailyCheckIn{}, false, err
	}
	return mapCheckInRow(row), true, nil
}

func (r *CheckInRepository) Delete(ctx context.Context, ownerID, checkInID string) error {
	// Deleting an id that lags the live snapshot is a silent no-op.
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM daily_checkins WHERE id = ? AND owner_id = ?;", checkInID, ownerID)
	return err
}

func mapCheckInRow(row checkInRow) domain.DailyCheckIn {
	return domain.DailyCheckIn{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		GoalID:    row.GoalID,
		Date:      domain.NormalizeDay(row.Date),
		Completed: row.Completed,
		Note:      nullableString(row.Note),
		CreatedAt: row.CreatedAt,
	}
}
