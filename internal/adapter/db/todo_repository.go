package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"goaltracker/internal/core/domain"
	"goaltracker/internal/core/ports"
)

const selectTodoColumns = `
SELECT
  t.*,
  c.name AS category_name
FROM todos t
LEFT JOIN categories c ON c.id = t.category_id
`

const insertTodoQuery = `
INSERT INTO todos (
  id, owner_id, goal_id, title, description, status, priority,
  due_date, scheduled_date, is_recurring, recur_frequency, recur_interval,
  recur_days_of_week, recur_day_of_month, recur_end_date,
  source, source_id, category_id, tags, created_at, updated_at, completed_at
) VALUES (
  :id, :owner_id, :goal_id, :title, :description, :status, :priority,
  :due_date, :scheduled_date, :is_recurring, :recur_frequency, :recur_interval,
  :recur_days_of_week, :recur_day_of_month, :recur_end_date,
  :source, :source_id, :category_id, :tags, :created_at, :updated_at, :completed_at
);
`

const updateTodoQuery = `
UPDATE todos SET
  goal_id = :goal_id,
  title = :title,
  description = :description,
  status = :status,
  priority = :priority,
  due_date = :due_date,
  scheduled_date = :scheduled_date,
  is_recurring = :is_recurring,
  recur_frequency = :recur_frequency,
  recur_interval = :recur_interval,
  recur_days_of_week = :recur_days_of_week,
  recur_day_of_month = :recur_day_of_month,
  recur_end_date = :recur_end_date,
  category_id = :category_id,
  tags = :tags,
  updated_at = :updated_at,
  completed_at = :completed_at
WHERE id = :id AND owner_id = :owner_id;
`

type TodoRepository struct {
	db *sqlx.DB
}

type todoRow struct {
	ID              string         `db:"id"`
	OwnerID         string         `db:"owner_id"`
	GoalID          sql.NullString `db:"goal_id"`
	Title           string         `db:"title"`
	Description     sql.NullString `db:"description"`
	Status          string         `db:"status"`
	Priority        int            `db:"priority"`
	DueDate         sql.NullTime   `db:"due_date"`
	ScheduledDate   sql.NullTime   `db:"scheduled_date"`
	IsRecurring     bool           `db:"is_recurring"`
	RecurFrequency  sql.NullString `db:"recur_frequency"`
	RecurInterval   sql.NullInt64  `db:"recur_interval"`
	RecurDaysOfWeek sql.NullString `db:"recur_days_of_week"`
	RecurDayOfMonth sql.NullInt64  `db:"recur_day_of_month"`
	RecurEndDate    sql.NullTime   `db:"recur_end_date"`
	Source          string         `db:"source"`
	SourceID        sql.NullString `db:"source_id"`
	CategoryID      sql.NullString `db:"category_id"`
	CategoryName    sql.NullString `db:"category_name"`
	Tags            sql.NullString `db:"tags"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
	CompletedAt     sql.NullTime   `db:"completed_at"`
}

var _ ports.TodoRepository = (*TodoRepository)(nil)

func NewTodoRepository(db *sqlx.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) Create(ctx context.Context, todo domain.Todo) error {
	args, err := todoToArgs(todo)
	if err != nil {
		return err
	}
	_, err = r.db.NamedExecContext(ctx, insertTodoQuery, args)
	return err
}

func (r *TodoRepository) GetByID(ctx context.Context, ownerID, todoID string) (domain.Todo, error) {
	var row todoRow
	query := selectTodoColumns + "WHERE t.id = ? AND t.owner_id = ?;"
	if err := r.db.GetContext(ctx, &row, query, todoID, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Todo{}, domain.ErrTodoNotFound
		}
		return domain.Todo{}, err
	}
	return mapTodoRow(row)
}

func (r *TodoRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Todo, error) {
	var rows []todoRow
	query := selectTodoColumns + "WHERE t.owner_id = ? ORDER BY t.created_at, t.id;"
	if err := r.db.SelectContext(ctx, &rows, query, ownerID); err != nil {
		return nil, err
	}
	return mapTodoRows(rows)
}

func (r *TodoRepository) ListByGoal(ctx context.Context, ownerID, goalID string) ([]domain.Todo, error) {
	var rows []todoRow
	query := selectTodoColumns + "WHERE t.owner_id = ? AND t.goal_id = ? ORDER BY t.created_at, t.id;"
	if err := r.db.SelectContext(ctx, &rows, query, ownerID, goalID); err != nil {
		return nil, err
	}
	return mapTodoRows(rows)
}

func (r *TodoRepository) Update(ctx context.Context, todo domain.Todo) error {
	args, err := todoToArgs(todo)
	if err != nil {
		return err
	}
	result, err := r.db.NamedExecContext(ctx, updateTodoQuery, args)
	if err != nil {
		return err
	}
	return requireAffected(result, domain.ErrTodoNotFound)
}

func (r *TodoRepository) Delete(ctx context.Context, ownerID, todoID string) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM todos WHERE id = ? AND owner_id = ?;", todoID, ownerID)
	if err != nil {
		return err
	}
	return requireAffected(result, domain.ErrTodoNotFound)
}

func todoToArgs(todo domain.Todo) (map[string]any, error) {
	tags, err := encodeTags(todo.Tags)
	if err != nil {
		return nil, err
	}
	var categoryID *string
	if todo.Category != nil {
		categoryID = &todo.Category.ID
	}

	args := map[string]any{
		"id":                 todo.ID,
		"owner_id":           todo.OwnerID,
		"goal_id":            todo.GoalID,
		"title":              todo.Title,
		"description":        todo.Description,
		"status":             string(todo.Status),
		"priority":           todo.Priority,
		"due_date":           todo.DueDate,
		"scheduled_date":     todo.ScheduledDate,
		"is_recurring":       todo.IsRecurring,
		"recur_frequency":    nil,
		"recur_interval":     nil,
		"recur_days_of_week": nil,
		"recur_day_of_month": nil,
		"recur_end_date":     nil,
		"source":             string(todo.Source),
		"source_id":          todo.SourceID,
		"category_id":        categoryID,
		"tags":               tags,
		"created_at":         todo.CreatedAt,
		"updated_at":         todo.UpdatedAt,
		"completed_at":       todo.CompletedAt,
	}

	if todo.Recurrence != nil {
		args["recur_frequency"] = string(todo.Recurrence.Frequency)
		args["recur_interval"] = todo.Recurrence.Interval
		args["recur_day_of_month"] = todo.Recurrence.DayOfMonth
		args["recur_end_date"] = todo.Recurrence.EndDate
		if len(todo.Recurrence.DaysOfWeek) > 0 {
			raw, err := json.Marshal(todo.Recurrence.DaysOfWeek)
			if err != nil {
				return nil, err
			}
			args["recur_days_of_week"] = string(raw)
		}
	}

	return args, nil
}

func mapTodoRows(rows []todoRow) ([]domain.Todo, error) {
	todos := make([]domain.Todo, 0, len(rows))
	for _, row := range rows {
		todo, err := mapTodoRow(row)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}
	return todos, nil
}

func mapTodoRow(row todoRow) (domain.Todo, error) {
	tags, err := decodeTags(nullableString(row.Tags))
	if err != nil {
		return domain.Todo{}, err
	}

	todo := domain.Todo{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Title:       row.Title,
		Status:      domain.TodoStatus(row.Status),
		Priority:    row.Priority,
		IsRecurring: row.IsRecurring,
		Source:      domain.TodoSource(row.Source),
		Tags:        tags,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}

	todo.GoalID = nullableString(row.GoalID)
	todo.Description = nullableString(row.Description)
	todo.SourceID = nullableString(row.SourceID)
	todo.DueDate = nullableTime(row.DueDate)
	todo.ScheduledDate = nullableTime(row.ScheduledDate)
	todo.CompletedAt = nullableTime(row.CompletedAt)

	if row.RecurFrequency.Valid {
		pattern := &domain.RecurrencePattern{
			Frequency: domain.Frequency(row.RecurFrequency.String),
			Interval:  1,
		}
		if row.RecurInterval.Valid {
			pattern.Interval = int(row.RecurInterval.Int64)
		}
		if row.RecurDayOfMonth.Valid {
			value := int(row.RecurDayOfMonth.Int64)
			pattern.DayOfMonth = &value
		}
		pattern.EndDate = nullableTime(row.RecurEndDate)
		if row.RecurDaysOfWeek.Valid && row.RecurDaysOfWeek.String != "" {
			if err := json.Unmarshal([]byte(row.RecurDaysOfWeek.String), &pattern.DaysOfWeek); err != nil {
				return domain.Todo{}, err
			}
		}
		todo.Recurrence = pattern
	}

	if row.CategoryID.Valid {
		todo.Category = &domain.Category{
			ID:   row.CategoryID.String,
			Name: row.CategoryName.String,
		}
	}

	return todo, nil
}
