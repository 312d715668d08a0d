package dto

type SendMessageRequestDTO struct {
	Content string `json:"content" validate:"required,max=4000"`
}

type MessageResponseDTO struct {
	ID        int    `json:"id"`
	ServiceID int    `json:"serviceId"`
	SenderID  int    `json:"senderId"`
	Content   string `json:"content"`
	SentAt    string `json:"sentAt" example:"2025-05-09T16:09:57-03:00"`
}

type UnreadCountResponseDTO struct {
	Total int `json:"total"`
}
