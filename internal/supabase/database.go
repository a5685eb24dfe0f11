package supabase

import (
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"rg-pet-backend/internal/models"
)

const orderColumns = `id, order_number, pet_name, pet_gender, pet_breed, pet_color, pet_birth_date,
	owner_name, owner_contact, address_state, address_city, address_neighborhood, address_street,
	address_number, preferences_team, selected_backgrounds, session_id, user_agent, status,
	pet_photo_url, created_at, updated_at`

const orderNumberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

type OrderStore struct {
	db *sql.DB
}

func NewOrderStore(connectionString string) (*OrderStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &OrderStore{db: db}, nil
}

// GenerateOrderNumber produces a human-readable order label,
// "RG-PET-<unix ms>-<5 uppercase alphanumerics>". Uniqueness relies on the
// timestamp plus randomness; the orders table additionally enforces it.
func GenerateOrderNumber() string {
	suffix := make([]byte, 5)
	for i := range suffix {
		suffix[i] = orderNumberAlphabet[rand.Intn(len(orderNumberAlphabet))]
	}
	return fmt.Sprintf("RG-PET-%d-%s", time.Now().UnixMilli(), suffix)
}

// CreateOrder validates and normalizes the submission, then writes one row
// with status pending. Nothing is written when validation fails.
func (s *OrderStore) CreateOrder(req *models.CreateOrderRequest) (*models.Order, error) {
	order, err := buildOrder(req)
	if err != nil {
		return nil, err
	}

	_, err = s.db.Exec(`
		INSERT INTO orders (`+orderColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
	`, order.ID, order.OrderNumber, order.PetName, order.PetGender, order.PetBreed, order.PetColor,
		order.PetBirthDate, order.OwnerName, order.OwnerContact, order.AddressState, order.AddressCity,
		order.AddressNeighborhood, order.AddressStreet, order.AddressNumber, order.PreferencesTeam,
		order.SelectedBackgrounds, order.SessionID, order.UserAgent, order.Status, order.PetPhotoURL,
		order.CreatedAt, order.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return order, nil
}

// buildOrder trims and validates the required fields and applies the
// placeholder defaults for everything optional.
func buildOrder(req *models.CreateOrderRequest) (*models.Order, error) {
	petName := strings.TrimSpace(req.PetName)
	petGender := strings.TrimSpace(req.PetGender)
	ownerName := strings.TrimSpace(req.OwnerName)
	ownerContact := strings.TrimSpace(req.OwnerContact)

	if petName == "" || petGender == "" || ownerName == "" || ownerContact == "" {
		return nil, newValidationError("Dados incompletos",
			"Nome do pet, sexo, nome do tutor e contato são obrigatórios")
	}

	now := time.Now().UTC()
	return &models.Order{
		ID:                  uuid.New(),
		OrderNumber:         GenerateOrderNumber(),
		PetName:             petName,
		PetGender:           petGender,
		PetBreed:            defaultIfEmpty(req.PetBreed, models.NotInformed),
		PetColor:            defaultIfEmpty(req.PetColor, models.NotInformed),
		PetBirthDate:        req.PetBirthDate,
		OwnerName:           ownerName,
		OwnerContact:        ownerContact,
		AddressState:        defaultIfEmpty(req.AddressState, models.NotInformed),
		AddressCity:         defaultIfEmpty(req.AddressCity, models.NotInformed),
		AddressNeighborhood: defaultIfEmpty(req.AddressNeighborhood, models.NotInformed),
		AddressStreet:       defaultIfEmpty(req.AddressStreet, models.NotInformed),
		AddressNumber:       defaultIfEmpty(req.AddressNumber, models.NotInformed),
		PreferencesTeam:     defaultIfEmpty(req.PreferencesTeam, models.NoTeam),
		SelectedBackgrounds: defaultIfEmpty(req.SelectedBackgrounds, "{}"),
		SessionID:           defaultIfEmpty(req.SessionID, models.UnknownOrigin),
		UserAgent:           req.UserAgent,
		Status:              models.StatusPending,
		CreatedAt:           now,
		UpdatedAt:           now,
	}, nil
}

func defaultIfEmpty(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}

// ListOrders returns one page of orders, newest first, plus the total count
// across the whole table regardless of pagination.
func (s *OrderStore) ListOrders(page, limit int) ([]models.Order, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 100
	}

	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM orders`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	rows, err := s.db.Query(`
		SELECT `+orderColumns+`
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, total, nil
}

func (s *OrderStore) GetOrder(orderID uuid.UUID) (*models.Order, error) {
	order, err := scanOrder(s.db.QueryRow(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = $1
	`, orderID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return order, nil
}

// UpdateOrderStatus sets the status and refreshes updated_at. Any
// enumerated status is reachable from any other; there is no transition
// state machine.
func (s *OrderStore) UpdateOrderStatus(orderID uuid.UUID, status string) (*models.Order, error) {
	if status == "" {
		return nil, newValidationError("Dados incompletos", "Status é obrigatório")
	}
	if !models.IsValidStatus(status) {
		return nil, newValidationError("Status inválido",
			"Status deve ser um dos: %s", strings.Join(models.ValidStatuses, ", "))
	}

	order, err := scanOrder(s.db.QueryRow(`
		UPDATE orders
		SET status = $1, updated_at = $2
		WHERE id = $3
		RETURNING `+orderColumns+`
	`, status, time.Now().UTC(), orderID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	return order, nil
}

// DeleteOrder looks the order up first so the caller gets its order number
// back, then hard-deletes the row. Bucket photos are left alone on purpose;
// a dangling photo is cheaper than a delete that half-fails.
func (s *OrderStore) DeleteOrder(orderID uuid.UUID) (*models.Order, error) {
	order, err := s.GetOrder(orderID)
	if err != nil {
		return nil, err
	}

	if _, err := s.db.Exec(`DELETE FROM orders WHERE id = $1`, orderID); err != nil {
		return nil, fmt.Errorf("failed to delete order: %w", err)
	}

	return order, nil
}

// SaveOrderPhotoURL backfills a resolved photo URL. It is a pure overwrite,
// safe to repeat.
func (s *OrderStore) SaveOrderPhotoURL(orderID uuid.UUID, photoURL string) error {
	_, err := s.db.Exec(`
		UPDATE orders
		SET pet_photo_url = $1, updated_at = $2
		WHERE id = $3
	`, photoURL, time.Now().UTC(), orderID)
	if err != nil {
		return fmt.Errorf("failed to save photo url: %w", err)
	}
	return nil
}

// OrderStats counts the whole order population, ignoring pagination.
func (s *OrderStore) OrderStats() (*models.OrderStats, error) {
	stats := &models.OrderStats{}

	if err := s.db.QueryRow(`SELECT COUNT(*) FROM orders`).Scan(&stats.Total); err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	rows, err := s.db.Query(`SELECT status, COUNT(*) FROM orders GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders by status: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		switch status {
		case models.StatusPending:
			stats.Pending = count
		case models.StatusProcessing:
			stats.Processing = count
		case models.StatusCompleted:
			stats.Completed = count
		case models.StatusCancelled:
			stats.Cancelled = count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to count orders by status: %w", err)
	}

	return stats, nil
}

// RecentOrders returns the newest orders for the photo diagnostics route.
func (s *OrderStore) RecentOrders(limit int) ([]models.Order, error) {
	rows, err := s.db.Query(`
		SELECT `+orderColumns+`
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list recent orders: %w", err)
	}

	return orders, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(row scanner) (*models.Order, error) {
	var order models.Order
	err := row.Scan(
		&order.ID, &order.OrderNumber, &order.PetName, &order.PetGender, &order.PetBreed,
		&order.PetColor, &order.PetBirthDate, &order.OwnerName, &order.OwnerContact,
		&order.AddressState, &order.AddressCity, &order.AddressNeighborhood, &order.AddressStreet,
		&order.AddressNumber, &order.PreferencesTeam, &order.SelectedBackgrounds, &order.SessionID,
		&order.UserAgent, &order.Status, &order.PetPhotoURL, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderStore) Ping() error {
	return s.db.Ping()
}

func (s *OrderStore) Close() error {
	return s.db.Close()
}
