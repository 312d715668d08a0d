package dto

type ApplicationResponseDTO struct {
	ID            int     `json:"id"`
	ServiceID     int     `json:"serviceId"`
	AssemblerID   int     `json:"assemblerId"`
	AssemblerName string  `json:"assemblerName,omitempty"`
	Rating        float64 `json:"rating,omitempty" example:"4.5"`
	Status        string  `json:"status" example:"pending"`
	CreatedAt     string  `json:"createdAt"`
}

type ApplyResponseDTO struct {
	Application ApplicationResponseDTO `json:"application"`
	Message     string                 `json:"message"`
}
