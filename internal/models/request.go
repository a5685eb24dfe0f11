package models

// CreateOrderRequest carries the fields the registration wizard submits.
// Only pet name, pet gender, owner name and owner contact are mandatory;
// the rest fall back to placeholder values.
type CreateOrderRequest struct {
	PetName             string `json:"pet_name"`
	PetGender           string `json:"pet_gender"`
	PetBreed            string `json:"pet_breed"`
	PetColor            string `json:"pet_color"`
	PetBirthDate        string `json:"pet_birth_date"`
	OwnerName           string `json:"owner_name"`
	OwnerContact        string `json:"owner_contact"`
	AddressState        string `json:"address_state"`
	AddressCity         string `json:"address_city"`
	AddressNeighborhood string `json:"address_neighborhood"`
	AddressStreet       string `json:"address_street"`
	AddressNumber       string `json:"address_number"`
	PreferencesTeam     string `json:"preferences_team"`
	SelectedBackgrounds string `json:"selected_backgrounds"`
	SessionID           string `json:"session_id"`
	UserAgent           string `json:"user_agent"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// SignedURLRequest asks for a time-limited URL the browser can upload a
// photo to directly, bypassing this server.
type SignedURLRequest struct {
	FileName  string `json:"fileName"`
	FileType  string `json:"fileType"`
	OrderID   string `json:"orderId"`
	SessionID string `json:"session_id"`
}
