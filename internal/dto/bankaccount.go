package dto

type BankAccountRequestDTO struct {
	BankName       string `json:"bankName" validate:"required"`
	AccountType    string `json:"accountType" validate:"required,oneof=corrente poupanca"`
	Agency         string `json:"agency" validate:"required"`
	AccountNumber  string `json:"accountNumber" validate:"required"`
	HolderName     string `json:"holderName" validate:"required"`
	HolderDocument string `json:"holderDocument" validate:"required"`
	PixKeyType     string `json:"pixKeyType" validate:"omitempty,oneof=cpf cnpj email phone random"`
	PixKey         string `json:"pixKey"`
}

type BankAccountResponseDTO struct {
	ID             int    `json:"id"`
	BankName       string `json:"bankName"`
	AccountType    string `json:"accountType"`
	Agency         string `json:"agency"`
	AccountNumber  string `json:"accountNumber"`
	HolderName     string `json:"holderName"`
	HolderDocument string `json:"holderDocument"`
	PixKeyType     string `json:"pixKeyType,omitempty"`
	PixKey         string `json:"pixKey,omitempty"`
	CreatedAt      string `json:"createdAt"`
}
