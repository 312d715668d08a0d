package dto

type ProfileResponseDTO struct {
	ID        int                  `json:"id"`
	Username  string               `json:"username"`
	Name      string               `json:"name"`
	Email     string               `json:"email"`
	Phone     string               `json:"phone"`
	UserType  string               `json:"userType"`
	Store     *StoreProfileDTO     `json:"store,omitempty"`
	Assembler *AssemblerProfileDTO `json:"assembler,omitempty"`
	Rating    float64              `json:"rating,omitempty" example:"4.8"`
}

type UpdateProfileRequestDTO struct {
	Name      string               `json:"name"`
	Email     string               `json:"email" validate:"omitempty,email"`
	Phone     string               `json:"phone"`
	Store     *StoreProfileDTO     `json:"store,omitempty"`
	Assembler *AssemblerProfileDTO `json:"assembler,omitempty"`
}
