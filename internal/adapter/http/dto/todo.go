package dto

type TodoItem struct {
	ID            string      `json:"id"`
	GoalID        *string     `json:"goal_id,omitempty"`
	Title         string      `json:"title"`
	Description   *string     `json:"description,omitempty"`
	Status        string      `json:"status"`
	Priority      int         `json:"priority"`
	DueDate       *string     `json:"due_date,omitempty"`
	ScheduledDate *string     `json:"scheduled_date,omitempty"`
	IsRecurring   bool        `json:"is_recurring"`
	Recurrence    *Recurrence `json:"recurrence,omitempty"`
	Source        string      `json:"source"`
	SourceID      *string     `json:"source_id,omitempty"`
	Category      *Category   `json:"category,omitempty"`
	Tags          []string    `json:"tags,omitempty"`
	CreatedAt     string      `json:"created_at"`
	UpdatedAt     string      `json:"updated_at"`
	CompletedAt   *string     `json:"completed_at,omitempty"`
}

type Recurrence struct {
	Frequency  string  `json:"frequency" binding:"required,oneof=daily weekly monthly yearly"`
	Interval   int     `json:"interval" binding:"required,gte=1"`
	DaysOfWeek []int   `json:"days_of_week" binding:"omitempty,dive,gte=0,lte=6"`
	DayOfMonth *int    `json:"day_of_month" binding:"omitempty,gte=1,lte=31"`
	EndDate    *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

type CreateTodoRequest struct {
	Title         string      `json:"title" binding:"required,max=255"`
	Description   *string     `json:"description" binding:"omitempty,max=65535"`
	Status        *string     `json:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
	Priority      *int        `json:"priority" binding:"omitempty,gte=0,lte=127"`
	GoalID        *string     `json:"goal_id" binding:"omitempty,uuid"`
	DueDate       *string     `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	ScheduledDate *string     `json:"scheduled_date" binding:"omitempty,datetime=2006-01-02"`
	IsRecurring   *bool       `json:"is_recurring"`
	Recurrence    *Recurrence `json:"recurrence"`
	CategoryID    *string     `json:"category_id" binding:"omitempty,uuid"`
	Tags          []string    `json:"tags" binding:"omitempty,dive,max=64"`
}

type UpdateTodoRequest struct {
	Title         *string     `json:"title" binding:"omitempty,max=255"`
	Description   *string     `json:"description" binding:"omitempty,max=65535"`
	Status        *string     `json:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
	Priority      *int        `json:"priority" binding:"omitempty,gte=0,lte=127"`
	GoalID        *string     `json:"goal_id" binding:"omitempty,uuid"`
	DueDate       *string     `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	ScheduledDate *string     `json:"scheduled_date" binding:"omitempty,datetime=2006-01-02"`
	IsRecurring   *bool       `json:"is_recurring"`
	Recurrence    *Recurrence `json:"recurrence"`
	CategoryID    *string     `json:"category_id" binding:"omitempty,uuid"`
	Tags          []string    `json:"tags" binding:"omitempty,dive,max=64"`
}

type CompleteTodoResponse struct {
	Todo           TodoItem  `json:"todo"`
	NextOccurrence *TodoItem `json:"next_occurrence,omitempty"`
}
