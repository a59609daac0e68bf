package dto

type InboxItemView struct {
	ID            string  `json:"id"`
	Source        string  `json:"source"`
	Status        string  `json:"status"`
	Title         string  `json:"title"`
	Description   *string `json:"description,omitempty"`
	SourceID      string  `json:"source_id"`
	SourceURL     *string `json:"source_url,omitempty"`
	Sender        *string `json:"sender,omitempty"`
	Channel       *string `json:"channel,omitempty"`
	SourceTime    string  `json:"source_time"`
	ConvertedToID *string `json:"converted_to_id,omitempty"`
	ConvertedAt   *string `json:"converted_at,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

type ConvertInboxItemRequest struct {
	Title         *string  `json:"title" binding:"omitempty,max=255"`
	Description   *string  `json:"description" binding:"omitempty,max=65535"`
	GoalID        *string  `json:"goal_id" binding:"omitempty,uuid"`
	Priority      *int     `json:"priority" binding:"omitempty,gte=0,lte=127"`
	DueDate       *string  `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	ScheduledDate *string  `json:"scheduled_date" binding:"omitempty,datetime=2006-01-02"`
	CategoryID    *string  `json:"category_id" binding:"omitempty,uuid"`
	Tags          []string `json:"tags" binding:"omitempty,dive,max=64"`
}

type ConvertInboxItemResponse struct {
	ItemID string `json:"item_id"`
	TodoID string `json:"todo_id"`
}
