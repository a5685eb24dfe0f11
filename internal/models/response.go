package models

import "time"

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Service     string    `json:"service"`
	Version     string    `json:"version"`
	Environment string    `json:"environment"`
	Bucket      string    `json:"bucket"`
}

type CreateOrderResponse struct {
	Success     bool   `json:"success"`
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
	Message     string `json:"message"`
}

type SignedURLResponse struct {
	Success   bool   `json:"success"`
	SignedURL string `json:"signedUrl"`
	FilePath  string `json:"filePath"`
	PublicURL string `json:"publicUrl"`
}

// OrderResponse is the wire form of an order row. Field names match the
// database columns so the admin panel can render rows as-is.
type OrderResponse struct {
	ID                  string    `json:"id"`
	OrderNumber         string    `json:"order_number"`
	PetName             string    `json:"pet_name"`
	PetGender           string    `json:"pet_gender"`
	PetBreed            string    `json:"pet_breed"`
	PetColor            string    `json:"pet_color"`
	PetBirthDate        string    `json:"pet_birth_date"`
	OwnerName           string    `json:"owner_name"`
	OwnerContact        string    `json:"owner_contact"`
	AddressState        string    `json:"address_state"`
	AddressCity         string    `json:"address_city"`
	AddressNeighborhood string    `json:"address_neighborhood"`
	AddressStreet       string    `json:"address_street"`
	AddressNumber       string    `json:"address_number"`
	PreferencesTeam     string    `json:"preferences_team"`
	SelectedBackgrounds string    `json:"selected_backgrounds"`
	SessionID           string    `json:"session_id"`
	UserAgent           string    `json:"user_agent"`
	Status              string    `json:"status"`
	PetPhotoURL         *string   `json:"pet_photo_url"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (o *Order) ToResponse() OrderResponse {
	resp := OrderResponse{
		ID:                  o.ID.String(),
		OrderNumber:         o.OrderNumber,
		PetName:             o.PetName,
		PetGender:           o.PetGender,
		PetBreed:            o.PetBreed,
		PetColor:            o.PetColor,
		PetBirthDate:        o.PetBirthDate,
		OwnerName:           o.OwnerName,
		OwnerContact:        o.OwnerContact,
		AddressState:        o.AddressState,
		AddressCity:         o.AddressCity,
		AddressNeighborhood: o.AddressNeighborhood,
		AddressStreet:       o.AddressStreet,
		AddressNumber:       o.AddressNumber,
		PreferencesTeam:     o.PreferencesTeam,
		SelectedBackgrounds: o.SelectedBackgrounds,
		SessionID:           o.SessionID,
		UserAgent:           o.UserAgent,
		Status:              o.Status,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
	if o.PetPhotoURL.Valid && o.PetPhotoURL.String != "" {
		url := o.PetPhotoURL.String
		resp.PetPhotoURL = &url
	}
	return resp
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type OrderListResponse struct {
	Success    bool            `json:"success"`
	Orders     []OrderResponse `json:"orders"`
	Pagination Pagination      `json:"pagination"`
}

type StatsResponse struct {
	Total      int       `json:"total"`
	Pending    int       `json:"pending"`
	Processing int       `json:"processing"`
	Completed  int       `json:"completed"`
	Cancelled  int       `json:"cancelled"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type UpdateOrderResponse struct {
	Success bool          `json:"success"`
	Order   OrderResponse `json:"order"`
	Message string        `json:"message"`
}

type DeletedOrder struct {
	ID          string `json:"id"`
	OrderNumber string `json:"order_number"`
}

type DeleteOrderResponse struct {
	Success      bool         `json:"success"`
	Message      string       `json:"message"`
	DeletedOrder DeletedOrder `json:"deletedOrder"`
}

// CheckPhotosResponse summarizes photo presence for the most recent orders.
type CheckPhotosResponse struct {
	TotalOrders  int               `json:"total_orders"`
	WithPhotoURL int               `json:"with_pet_photo_url"`
	Orders       []PhotoCheckEntry `json:"orders"`
}

type PhotoCheckEntry struct {
	ID          string `json:"id"`
	OrderNumber string `json:"order_number"`
	PetName     string `json:"pet_name"`
	HasPhotoURL bool   `json:"has_pet_photo_url"`
}
