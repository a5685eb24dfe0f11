package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Order statuses. No transition rules are enforced between them; the admin
// panel may move an order from any status to any other.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

var ValidStatuses = []string{StatusPending, StatusProcessing, StatusCompleted, StatusCancelled}

func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Placeholder values applied when the wizard leaves optional fields empty.
const (
	NotInformed   = "Não informado"
	NoTeam        = "nenhum_time"
	UnknownOrigin = "unknown"
)

type Order struct {
	ID                  uuid.UUID
	OrderNumber         string
	PetName             string
	PetGender           string
	PetBreed            string
	PetColor            string
	PetBirthDate        string
	OwnerName           string
	OwnerContact        string
	AddressState        string
	AddressCity         string
	AddressNeighborhood string
	AddressStreet       string
	AddressNumber       string
	PreferencesTeam     string
	SelectedBackgrounds string
	SessionID           string
	UserAgent           string
	Status              string
	PetPhotoURL         sql.NullString
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type OrderStats struct {
	Total      int
	Pending    int
	Processing int
	Completed  int
	Cancelled  int
}
