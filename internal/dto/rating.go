package dto

type CreateRatingRequestDTO struct {
	ToUserID int    `json:"toUserId" validate:"required"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comment  string `json:"comment" validate:"max=2000"`
}

type RatingResponseDTO struct {
	ID         int    `json:"id"`
	ServiceID  int    `json:"serviceId"`
	FromUserID int    `json:"fromUserId"`
	ToUserID   int    `json:"toUserId"`
	Rating     int    `json:"rating" example:"5"`
	Comment    string `json:"comment,omitempty"`
	CreatedAt  string `json:"createdAt"`
}

type PendingEvaluationDTO struct {
	ServiceID     int    `json:"serviceId"`
	ServiceTitle  string `json:"serviceName"`
	OtherUserID   int    `json:"otherUserId"`
	OtherUserName string `json:"otherUserName"`
	OtherUserType string `json:"otherUserType" example:"montador"`
}
