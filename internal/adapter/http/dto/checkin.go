package dto

type CheckInItem struct {
	ID        string  `json:"id"`
	GoalID    string  `json:"goal_id"`
	Date      string  `json:"date"`
	Completed bool    `json:"completed"`
	Note      *string `json:"note,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type ToggleCheckInRequest struct {
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
}

type ToggleCheckInResponse struct {
	GoalID    string `json:"goal_id"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}
