package handlers_test

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"
	"rg-pet-backend/internal/models"
	"rg-pet-backend/internal/supabase"
)

// fakeOrderStore is an in-memory stand-in for *supabase.OrderStore with the
// same validation and error semantics.
type fakeOrderStore struct {
	orders []models.Order
	err    error
}

func (s *fakeOrderStore) CreateOrder(req *models.CreateOrderRequest) (*models.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	if strings.TrimSpace(req.PetName) == "" || strings.TrimSpace(req.PetGender) == "" ||
		strings.TrimSpace(req.OwnerName) == "" || strings.TrimSpace(req.OwnerContact) == "" {
		return nil, &supabase.ValidationError{
			Category: "Dados incompletos",
			Message:  "Nome do pet, sexo, nome do tutor e contato são obrigatórios",
		}
	}

	now := time.Now().UTC()
	order := models.Order{
		ID:           uuid.New(),
		OrderNumber:  supabase.GenerateOrderNumber(),
		PetName:      strings.TrimSpace(req.PetName),
		PetGender:    strings.TrimSpace(req.PetGender),
		PetBreed:     req.PetBreed,
		PetColor:     req.PetColor,
		OwnerName:    strings.TrimSpace(req.OwnerName),
		OwnerContact: strings.TrimSpace(req.OwnerContact),
		Status:       models.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.orders = append(s.orders, order)
	return &order, nil
}

func (s *fakeOrderStore) ListOrders(page, limit int) ([]models.Order, int, error) {
	if s.err != nil {
		return nil, 0, s.err
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 100
	}

	sorted := s.sortedByNewest()
	total := len(sorted)

	from := (page - 1) * limit
	if from > total {
		from = total
	}
	to := from + limit
	if to > total {
		to = total
	}
	return sorted[from:to], total, nil
}

func (s *fakeOrderStore) UpdateOrderStatus(orderID uuid.UUID, status string) (*models.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	if status == "" {
		return nil, &supabase.ValidationError{Category: "Dados incompletos", Message: "Status é obrigatório"}
	}
	if !models.IsValidStatus(status) {
		return nil, &supabase.ValidationError{Category: "Status inválido", Message: "Status desconhecido: " + status}
	}

	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = status
			s.orders[i].UpdatedAt = time.Now().UTC()
			order := s.orders[i]
			return &order, nil
		}
	}
	return nil, supabase.ErrOrderNotFound
}

func (s *fakeOrderStore) DeleteOrder(orderID uuid.UUID) (*models.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			order := s.orders[i]
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return &order, nil
		}
	}
	return nil, supabase.ErrOrderNotFound
}

func (s *fakeOrderStore) OrderStats() (*models.OrderStats, error) {
	if s.err != nil {
		return nil, s.err
	}
	stats := &models.OrderStats{Total: len(s.orders)}
	for i := range s.orders {
		switch s.orders[i].Status {
		case models.StatusPending:
			stats.Pending++
		case models.StatusProcessing:
			stats.Processing++
		case models.StatusCompleted:
			stats.Completed++
		case models.StatusCancelled:
			stats.Cancelled++
		}
	}
	return stats, nil
}

func (s *fakeOrderStore) RecentOrders(limit int) ([]models.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	sorted := s.sortedByNewest()
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (s *fakeOrderStore) SaveOrderPhotoURL(orderID uuid.UUID, photoURL string) error {
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].PetPhotoURL.String = photoURL
			s.orders[i].PetPhotoURL.Valid = true
			s.orders[i].UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return supabase.ErrOrderNotFound
}

// sortedByNewest mirrors the store's ORDER BY created_at DESC with stable
// ties by insertion order.
func (s *fakeOrderStore) sortedByNewest() []models.Order {
	sorted := make([]models.Order, len(s.orders))
	copy(sorted, s.orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}

// fakePhotoLister plays the bucket listing side of the photo resolver.
type fakePhotoLister struct {
	files []storage.FileObject
	err   error
	calls int
}

func (f *fakePhotoLister) ListPetPhotos() ([]storage.FileObject, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.files, nil
}

func (f *fakePhotoLister) PhotoPublicURL(fileName string) string {
	return "https://example.supabase.co/storage/v1/object/public/backrg/pet-photos/" + fileName
}

// noPhotoResolver leaves orders untouched.
type noPhotoResolver struct{}

func (noPhotoResolver) ResolveAll(orders []models.Order) {}

// fakeUploadSigner records the paths it signed.
type fakeUploadSigner struct {
	signedPaths []string
	err         error
}

func (f *fakeUploadSigner) CreateSignedUploadURL(filePath string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.signedPaths = append(f.signedPaths, filePath)
	return "https://example.supabase.co/storage/v1/object/upload/sign/backrg/" + filePath + "?token=abc", nil
}

func (f *fakeUploadSigner) PublicURL(path string) string {
	return "https://example.supabase.co/storage/v1/object/public/backrg/" + path
}
