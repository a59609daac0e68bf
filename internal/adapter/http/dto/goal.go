package dto

type GoalItem struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Description       *string   `json:"description,omitempty"`
	Tier              string    `json:"tier"`
	Status            string    `json:"status"`
	Priority          int       `json:"priority"`
	Progress          int       `json:"progress"`
	ParentGoalID      *string   `json:"parent_goal_id,omitempty"`
	Category          *Category `json:"category,omitempty"`
	StartDate         *string   `json:"start_date,omitempty"`
	TargetDate        *string   `json:"target_date,omitempty"`
	CompletedDate     *string   `json:"completed_date,omitempty"`
	TrackingMode      string    `json:"tracking_mode"`
	TargetDays        *int      `json:"target_days,omitempty"`
	TrackingStartDate *string   `json:"tracking_start_date,omitempty"`
	Tags              []string  `json:"tags,omitempty"`
	CreatedAt         string    `json:"created_at"`
	UpdatedAt         string    `json:"updated_at"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateGoalRequest struct {
	Title             string   `json:"title" binding:"required,max=255"`
	Description       *string  `json:"description" binding:"omitempty,max=65535"`
	Tier              string   `json:"tier" binding:"required,oneof=long_term mid_term weekly daily"`
	Status            *string  `json:"status" binding:"omitempty,oneof=not_started in_progress completed on_hold cancelled"`
	Priority          *int     `json:"priority" binding:"omitempty,gte=0,lte=127"`
	Progress          *int     `json:"progress" binding:"omitempty,gte=0,lte=100"`
	ParentGoalID      *string  `json:"parent_goal_id" binding:"omitempty,uuid"`
	CategoryID        *string  `json:"category_id" binding:"omitempty,uuid"`
	StartDate         *string  `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	TargetDate        *string  `json:"target_date" binding:"omitempty,datetime=2006-01-02"`
	TrackingMode      *string  `json:"tracking_mode" binding:"omitempty,oneof=manual automatic"`
	TargetDays        *int     `json:"target_days" binding:"omitempty,gt=0"`
	TrackingStartDate *string  `json:"tracking_start_date" binding:"omitempty,datetime=2006-01-02"`
	Tags              []string `json:"tags" binding:"omitempty,dive,max=64"`
}

type UpdateGoalRequest struct {
	Title             *string  `json:"title" binding:"omitempty,max=255"`
	Description       *string  `json:"description" binding:"omitempty,max=65535"`
	Tier              *string  `json:"tier" binding:"omitempty,oneof=long_term mid_term weekly daily"`
	Status            *string  `json:"status" binding:"omitempty,oneof=not_started in_progress completed on_hold cancelled"`
	Priority          *int     `json:"priority" binding:"omitempty,gte=0,lte=127"`
	Progress          *int     `json:"progress" binding:"omitempty,gte=0,lte=100"`
	ParentGoalID      *string  `json:"parent_goal_id" binding:"omitempty,uuid"`
	CategoryID        *string  `json:"category_id" binding:"omitempty,uuid"`
	StartDate         *string  `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	TargetDate        *string  `json:"target_date" binding:"omitempty,datetime=2006-01-02"`
	CompletedDate     *string  `json:"completed_date" binding:"omitempty,datetime=2006-01-02"`
	TrackingMode      *string  `json:"tracking_mode" binding:"omitempty,oneof=manual automatic"`
	TargetDays        *int     `json:"target_days" binding:"omitempty,gt=0"`
	TrackingStartDate *string  `json:"tracking_start_date" binding:"omitempty,datetime=2006-01-02"`
	Tags              []string `json:"tags" binding:"omitempty,dive,max=64"`
}

type GoalDeleteResponse struct {
	Deleted       bool `json:"deleted"`
	OrphanedGoals int  `json:"orphaned_goals"`
}

type GoalProgressResponse struct {
	GoalID            string `json:"goal_id"`
	EffectiveProgress int    `json:"effective_progress"`
	StoredProgress    int    `json:"stored_progress"`
	CurrentStreak     int    `json:"current_streak"`
	PercentComplete   int    `json:"percent_complete"`
	CompletedCheckIns int    `json:"completed_check_ins"`
}
