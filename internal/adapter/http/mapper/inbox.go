package mapper

import (
	"time"

	"goaltracker/internal/adapter/http/dto"
	"goaltracker/internal/core/domain"
)

func ToInboxItemViews(items []domain.InboxItem) []dto.InboxItemView {
	views := make([]dto.InboxItemView, 0, len(items))
	for _, item := range items {
		views = append(views, ToInboxItemView(item))
	}
	return views
}

func ToInboxItemView(item domain.InboxItem) dto.InboxItemView {
	view := dto.InboxItemView{
		ID:         item.ID,
		Source:     string(item.Source),
		Status:     string(item.Status),
		Title:      item.Title,
		SourceID:   item.SourceID,
		SourceTime: item.SourceTime.Format(time.RFC3339),
		CreatedAt:  item.CreatedAt.Format(time.RFC3339),
	}

	if item.Description != nil {
		value := *item.Description
		view.Description = &value
	}
	if item.SourceURL != nil {
		value := *item.SourceURL
		view.SourceURL = &value
	}
	if item.Sender != nil {
		value := *item.Sender
		view.Sender = &value
	}
	if item.Channel != nil {
		value := *item.Channel
		view.Channel = &value
	}
	if item.ConvertedToID != nil {
		value := *item.ConvertedToID
		view.ConvertedToID = &value
	}
	if item.ConvertedAt != nil {
		value := item.ConvertedAt.Format(time.RFC3339)
		view.ConvertedAt = &value
	}

	return view
}
