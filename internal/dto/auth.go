package dto

type StoreProfileDTO struct {
	Name           string   `json:"name" validate:"required"`
	DocumentType   string   `json:"documentType" validate:"required,oneof=cpf cnpj"`
	DocumentNumber string   `json:"documentNumber" validate:"required"`
	Address        string   `json:"address" validate:"required"`
	City           string   `json:"city" validate:"required"`
	State          string   `json:"state" validate:"required,len=2"`
	CEP            string   `json:"cep" validate:"required"`
	Phone          string   `json:"phone"`
	LogoURL        string   `json:"logoUrl"`
	MaterialTypes  []string `json:"materialTypes" validate:"dive,oneof=marcenaria plano-corte fabrica"`
}

type AssemblerProfileDTO struct {
	Address             string   `json:"address" validate:"required"`
	City                string   `json:"city" validate:"required"`
	State               string   `json:"state" validate:"required,len=2"`
	CEP                 string   `json:"cep" validate:"required"`
	Specialties         []string `json:"specialties" validate:"dive,oneof=marcenaria plano-corte fabrica"`
	TechnicalAssistance bool     `json:"technicalAssistance"`
	Experience          string   `json:"experience"`
	WorkRadiusKm        int      `json:"workRadiusKm" validate:"omitempty,min=1,max=500"`
	Documents           []string `json:"documents"`
}

type RegisterRequestDTO struct {
	Username  string               `json:"username" validate:"required,min=3,max=50"`
	Password  string               `json:"password" validate:"required,min=8"`
	Name      string               `json:"name" validate:"required"`
	Email     string               `json:"email" validate:"required,email"`
	Phone     string               `json:"phone"`
	UserType  string               `json:"userType" validate:"required,oneof=lojista montador"`
	Store     *StoreProfileDTO     `json:"store,omitempty"`
	Assembler *AssemblerProfileDTO `json:"assembler,omitempty"`
}

type AuthResponseDTO struct {
	Message  string `json:"message"`
	Token    string `json:"token"`
	UserID   int    `json:"userId"`
	UserType string `json:"userType" example:"lojista"`
}

type LoginRequestDTO struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}
