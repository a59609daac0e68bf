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

const selectGoalColumns = `
SELECT
  g.*,
  c.name AS category_name
FROM goals g
LEFT JOIN categories c ON c.id = g.category_id
`

const insertGoalQuery = `
INSERT INTO goals (
  id, owner_id, title, description, tier, status, priority, progress,
  parent_goal_id, category_id, start_date, target_date, completed_date,
  tracking_mode, target_days, tracking_start_date, tags, created_at, updated_at
) VALUES (
  :id, :owner_id, :title, :description, :tier, :status, :priority, :progress,
  :parent_goal_id, :category_id, :start_date, :target_date, :completed_date,
  :tracking_mode, :target_days, :tracking_start_date, :tags, :created_at, :updated_at
);
`

const updateGoalQuery = `
UPDATE goals SET
  title = :title,
  description = :description,
  tier = :tier,
  status = :status,
  priority = :priority,
  progress = :progress,
  parent_goal_id = :parent_goal_id,
  category_id = :category_id,
  start_date = :start_date,
  target_date = :target_date,
  completed_date = :completed_date,
  tracking_mode = :tracking_mode,
  target_days = :target_days,
  tracking_start_date = :tracking_start_date,
  tags = :tags,
  updated_at = :updated_at
WHERE id = :id AND owner_id = :owner_id;
`

type GoalRepository struct {
	db *sqlx.DB
}

type goalRow struct {
	ID                string         `db:"id"`
	OwnerID           string         `db:"owner_id"`
	Title             string         `db:"title"`
	Description       sql.NullString `db:"description"`
	Tier              string         `db:"tier"`
	Status            string         `db:"status"`
	Priority          int            `db:"priority"`
	Progress          int            `db:"progress"`
	ParentGoalID      sql.NullString `db:"parent_goal_id"`
	CategoryID        sql.NullString `db:"category_id"`
	CategoryName      sql.NullString `db:"category_name"`
	StartDate         sql.NullTime   `db:"start_date"`
	TargetDate        sql.NullTime   `db:"target_date"`
	CompletedDate     sql.NullTime   `db:"completed_date"`
	TrackingMode      string         `db:"tracking_mode"`
	TargetDays        sql.NullInt64  `db:"target_days"`
	TrackingStartDate sql.NullTime   `db:"tracking_start_date"`
	Tags              sql.NullString `db:"tags"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

var _ ports.GoalRepository = (*GoalRepository)(nil)

func NewGoalRepository(db *sqlx.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) Create(ctx context.Context, goal domain.Goal) error {
	args, err := goalToArgs(goal)
	if err != nil {
		return err
	}
	_, err = r.db.NamedExecContext(ctx, insertGoalQuery, args)
	return err
}

func (r *GoalRepository) GetByID(ctx context.Context, ownerID, goalID string) (domain.Goal, error) {
	var row goalRow
	query := selectGoalColumns + "WHERE g.id = ? AND g.owner_id = ?;"
	if err := r.db.GetContext(ctx, &row, query, goalID, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Goal{}, domain.ErrGoalNotFound
		}
		return domain.Goal{}, err
	}
	return mapGoalRow(row)
}

func (r *GoalRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Goal, error) {
	var rows []goalRow
	query := selectGoalColumns + "WHERE g.owner_id = ? ORDER BY g.created_at, g.id;"
	if err := r.db.SelectContext(ctx, &rows, query, ownerID); err != nil {
		return nil, err
	}
	return mapGoalRows(rows)
}

func (r *GoalRepository) ListChildren(ctx context.Context, ownerID, parentGoalID string) ([]domain.Goal, error) {
	var rows []goalRow
	query := selectGoalColumns + "WHERE g.owner_id = ? AND g.parent_goal_id = ? ORDER BY g.created_at, g.id;"
	if err := r.db.SelectContext(ctx, &rows, query, ownerID, parentGoalID); err != nil {
		return nil, err
	}
	return mapGoalRows(rows)
}

func (r *GoalRepository) Update(ctx context.Context, goal domain.Goal) error {
	args, err := goalToArgs(goal)
	if err != nil {
		return err
	}
	result, err := r.db.NamedExecContext(ctx, updateGoalQuery, args)
	if err != nil {
		return err
	}
	return requireAffected(result, domain.ErrGoalNotFound)
}

func (r *GoalRepository) UpdateProgress(ctx context.Context, ownerID, goalID string, progress int) error {
	// MySQL reports zero affected rows when the stored value already
	// matches, so the row count is not checked here.
	_, err := r.db.ExecContext(ctx,
		"UPDATE goals SET progress = ?, updated_at = ? WHERE id = ? AND owner_id = ?;",
		progress, time.Now().UTC(), goalID, ownerID)
	return err
}

func (r *GoalRepository) Delete(ctx context.Context, ownerID, goalID string) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM goals WHERE id = ? AND owner_id = ?;", goalID, ownerID)
	if err != nil {
		return err
	}
	return requireAffected(result, domain.ErrGoalNotFound)
}

func goalToArgs(goal domain.Goal) (map[string]any, error) {
	tags, err := encodeTags(goal.Tags)
	if err != nil {
		return nil, err
	}
	var categoryID *string
	if goal.Category != nil {
		categoryID = &goal.Category.ID
	}
	return map[string]any{
		"id":                  goal.ID,
		"owner_id":            goal.OwnerID,
		"title":               goal.Title,
		"description":         goal.Description,
		"tier":                string(goal.Tier),
		"status":              string(goal.Status),
		"priority":            goal.Priority,
		"progress":            goal.Progress,
		"parent_goal_id":      goal.ParentGoalID,
		"category_id":         categoryID,
		"start_date":          goal.StartDate,
		"target_date":         goal.TargetDate,
		"completed_date":      goal.CompletedDate,
		"tracking_mode":       string(goal.TrackingMode),
		"target_days":         goal.TargetDays,
		"tracking_start_date": goal.TrackingStartDate,
		"tags":                tags,
		"created_at":          goal.CreatedAt,
		"updated_at":          goal.UpdatedAt,
	}, nil
}

func mapGoalRows(rows []goalRow) ([]domain.Goal, error) {
	goals := make([]domain.Goal, 0, len(rows))
	for _, row := range rows {
		goal, err := mapGoalRow(row)
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}
	return goals, nil
}

func mapGoalRow(row goalRow) (domain.Goal, error) {
	tags, err := decodeTags(nullableString(row.Tags))
	if err != nil {
		return domain.Goal{}, err
	}

	goal := domain.Goal{
		ID:           row.ID,
		OwnerID:      row.OwnerID,
		Title:        row.Title,
		Tier:         domain.GoalTier(row.Tier),
		Status:       domain.GoalStatus(row.Status),
		Priority:     row.Priority,
		Progress:     row.Progress,
		TrackingMode: domain.TrackingMode(row.TrackingMode),
		Tags:         tags,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}

	goal.Description = nullableString(row.Description)
	goal.ParentGoalID = nullableString(row.ParentGoalID)
	goal.StartDate = nullableTime(row.StartDate)
	goal.TargetDate = nullableTime(row.TargetDate)
	goal.CompletedDate = nullableTime(row.CompletedDate)
	goal.TrackingStartDate = nullableTime(row.TrackingStartDate)

	if row.TargetDays.Valid {
		value := int(row.TargetDays.Int64)
		goal.TargetDays = &value
	}

	if row.CategoryID.Valid {
		goal.Category = &domain.Category{
			ID:   row.CategoryID.String,
			Name: row.CategoryName.String,
		}
	}

	return goal, nil
}

func nullableString(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	s := value.String
	return &s
}

func nullableTime(value sql.NullTime) *time.Time {
	if !value.Valid {
		return nil
	}
	t := value.Time
	return &t
}

func requireAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
