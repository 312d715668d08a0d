package domain

import "time"

const (
	UserTypeLojista  = "lojista"
	UserTypeMontador = "montador"
)

type User struct {
	ID           int       `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	Phone        string    `db:"phone"`
	UserType     string    `db:"user_type"`
	CreatedAt    time.Time `db:"created_at"`
}

type Store struct {
	ID             int      `db:"id"`
	UserID         int      `db:"user_id"`
	Name           string   `db:"name"`
	DocumentType   string   `db:"document_type"`
	DocumentNumber string   `db:"document_number"`
	Address        string   `db:"address"`
	City           string   `db:"city"`
	State          string   `db:"state"`
	CEP            string   `db:"cep"`
	Latitude       float64  `db:"latitude"`
	Longitude      float64  `db:"longitude"`
	Phone          string   `db:"phone"`
	LogoURL        string   `db:"logo_url"`
	MaterialTypes  []string `db:"material_types"`
}

type Assembler struct {
	ID                  int      `db:"id"`
	UserID              int      `db:"user_id"`
	Address             string   `db:"address"`
	City                string   `db:"city"`
	State               string   `db:"state"`
	CEP                 string   `db:"cep"`
	Latitude            float64  `db:"latitude"`
	Longitude           float64  `db:"longitude"`
	Specialties         []string `db:"specialties"`
	TechnicalAssistance bool     `db:"technical_assistance"`
	Experience          string   `db:"experience"`
	WorkRadiusKm        int      `db:"work_radius_km"`
	RatingAvg           float64  `db:"rating_avg"`
	RatingCount         int      `db:"rating_count"`
	Documents           []string `db:"documents"`
}

const (
	ServiceStatusOpen       = "open"
	ServiceStatusInProgress = "in-progress"
	ServiceStatusCompleted  = "completed"
	ServiceStatusCancelled  = "cancelled"
)

type Service struct {
	ID           int       `db:"id"`
	StoreID      int       `db:"store_id"`
	Title        string    `db:"title"`
	Description  string    `db:"description"`
	Location     string    `db:"location"`
	CEP          string    `db:"cep"`
	Latitude     float64   `db:"latitude"`
	Longitude    float64   `db:"longitude"`
	StartDate    string    `db:"start_date"`
	EndDate      string    `db:"end_date"`
	Price        float64   `db:"price"`
	Status       string    `db:"status"`
	MaterialType string    `db:"material_type"`
	ProjectFiles []string  `db:"project_files"`
	CreatedAt    time.Time `db:"created_at"`
}

// ServiceWithDistance carries the haversine distance from an assembler's
// registered coordinates, in kilometers.
type ServiceWithDistance struct {
	Service
	DistanceKm float64
}

const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

type Application struct {
	ID          int       `db:"id"`
	ServiceID   int       `db:"service_id"`
	AssemblerID int       `db:"assembler_id"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
}

type Message struct {
	ID        int       `db:"id"`
	ServiceID int       `db:"service_id"`
	SenderID  int       `db:"sender_id"`
	Content   string    `db:"content"`
	SentAt    time.Time `db:"sent_at"`
}

type Rating struct {
	ID         int       `db:"id"`
	ServiceID  int       `db:"service_id"`
	FromUserID int       `db:"from_user_id"`
	ToUserID   int       `db:"to_user_id"`
	Rating     int       `db:"rating"`
	Comment    string    `db:"comment"`
	CreatedAt  time.Time `db:"created_at"`
}

// PendingEvaluation is a completed service still missing a rating from the
// listed user towards the counterpart.
type PendingEvaluation struct {
	ServiceID     int    `db:"service_id"`
	ServiceTitle  string `db:"service_title"`
	OtherUserID   int    `db:"other_user_id"`
	OtherUserName string `db:"other_user_name"`
	OtherUserType string `db:"other_user_type"`
}

type BankAccount struct {
	ID             int       `db:"id"`
	UserID         int       `db:"user_id"`
	BankName       string    `db:"bank_name"`
	AccountType    string    `db:"account_type"`
	Agency         string    `db:"agency"`
	AccountNumber  string    `db:"account_number"`
	HolderName     string    `db:"holder_name"`
	HolderDocument string    `db:"holder_document"`
	PixKeyType     string    `db:"pix_key_type"`
	PixKey         string    `db:"pix_key"`
	CreatedAt      time.Time `db:"created_at"`
}
