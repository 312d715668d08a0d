package dto

type CreateServiceRequestDTO struct {
	Title        string   `json:"title" validate:"required,max=200"`
	Description  string   `json:"description"`
	Location     string   `json:"location" validate:"required"`
	CEP          string   `json:"cep"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	StartDate    string   `json:"startDate" validate:"required"`
	EndDate      string   `json:"endDate"`
	Price        float64  `json:"price" validate:"required,gt=0"`
	MaterialType string   `json:"materialType" validate:"required,oneof=marcenaria plano-corte fabrica"`
	ProjectFiles []string `json:"projectFiles"`
}

type ServiceResponseDTO struct {
	ID           int      `json:"id"`
	StoreID      int      `json:"storeId"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Location     string   `json:"location"`
	Latitude     float64  `json:"latitude,omitempty"`
	Longitude    float64  `json:"longitude,omitempty"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate,omitempty"`
	Price        float64  `json:"price" example:"350.5"`
	Status       string   `json:"status" example:"open"`
	MaterialType string   `json:"materialType"`
	ProjectFiles []string `json:"projectFiles,omitempty"`
	DistanceKm   float64  `json:"distanceKm,omitempty" example:"12.4"`
	CreatedAt    string   `json:"createdAt" example:"2025-05-09T16:09:57-03:00"`
}

type UpdateServiceRequestDTO struct {
	Title        string  `json:"title" validate:"omitempty,max=200"`
	Description  string  `json:"description"`
	Location     string  `json:"location"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	Price        float64 `json:"price" validate:"omitempty,gt=0"`
	MaterialType string  `json:"materialType" validate:"omitempty,oneof=marcenaria plano-corte fabrica"`
}

type UpdateServiceStatusRequestDTO struct {
	Status string `json:"status" validate:"required,oneof=open in-progress completed cancelled"`
}
