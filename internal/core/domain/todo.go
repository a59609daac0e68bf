package domain

import "time"

type TodoStatus string

const (
	TodoStatusPending    TodoStatus = "pending"
	TodoStatusInProgress TodoStatus = "in_progress"
	TodoStatusCompleted  TodoStatus = "completed"
	TodoStatusCancelled  TodoStatus = "cancelled"
)

// TodoSource records where a todo came from.
type TodoSource string

const (
	TodoSourceManual   TodoSource = "manual"
	TodoSourceInbox    TodoSource = "inbox"
	TodoSourceSlack    TodoSource = "slack"
	TodoSourceCalendar TodoSource = "calendar"
	TodoSourceEmail    TodoSource = "email"
)

type Todo struct {
	ID            string
	OwnerID       string
	GoalID        *string
	Title         string
	Description   *string
	Status        TodoStatus
	Priority      int
	DueDate       *time.Time
	ScheduledDate *time.Time
	IsRecurring   bool
	Recurrence    *RecurrencePattern
	Source        TodoSource
	SourceID      *string
	Category      *Category
	Tags          []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CompletedAt   *time.Time
}

type Category struct {
	ID   string
	Name string
}

type CreateTodoInput struct {
	Title         string
	Description   *string
	Status        TodoStatus
	Priority      int
	GoalID        *string
	DueDate       *time.Time
	ScheduledDate *time.Time
	IsRecurring   bool
	Recurrence    *RecurrencePattern
	Source        TodoSource
	SourceID      *string
	CategoryID    *string
	Tags          []string
}

type UpdateTodoInput struct {
	Title            *string
	Description      *string
	DescriptionSet   bool
	Status           *TodoStatus
	Priority         *int
	GoalID           *string
	GoalIDSet        bool
	DueDate          *time.Time
	DueDateSet       bool
	ScheduledDate    *time.Time
	ScheduledDateSet bool
	IsRecurring      *bool
	Recurrence       *RecurrencePattern
	RecurrenceSet    bool
	CategoryID       *string
	CategoryIDSet    bool
	Tags             []string
	TagsSet          bool
}
