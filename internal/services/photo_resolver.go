package services

import (
	"database/sql"
	"strings"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"rg-pet-backend/internal/metrics"
	"rg-pet-backend/internal/models"
)

type PhotoLister interface {
	ListPetPhotos() ([]storage.FileObject, error)
	PhotoPublicURL(fileName string) string
}

type PhotoURLSaver interface {
	SaveOrderPhotoURL(orderID uuid.UUID, photoURL string) error
}

// PhotoResolver fills pet_photo_url on orders at minimal cost. The first
// successful resolution pays for a bucket scan; the discovered URL is
// persisted back onto the order so later resolutions short-circuit.
type PhotoResolver struct {
	storage PhotoLister
	store   PhotoURLSaver
	logger  *zap.Logger
}

func NewPhotoResolver(storage PhotoLister, store PhotoURLSaver, logger *zap.Logger) *PhotoResolver {
	return &PhotoResolver{
		storage: storage,
		store:   store,
		logger:  logger,
	}
}

// Resolve returns the best-effort photo URL for an order, or "" when no
// photo is known yet. An empty result is not an error: the upload may still
// be in flight.
func (r *PhotoResolver) Resolve(order *models.Order) string {
	if order.PetPhotoURL.Valid && order.PetPhotoURL.String != "" {
		metrics.PhotoResolutionsTotal.WithLabelValues("cached").Inc()
		return order.PetPhotoURL.String
	}

	files, err := r.storage.ListPetPhotos()
	if err != nil {
		// Photo display is an enhancement to the listing view, so a
		// listing failure is treated the same as no files found.
		r.logger.Warn("failed to list pet photos", zap.Error(err))
		metrics.PhotoResolutionsTotal.WithLabelValues("error").Inc()
		return ""
	}

	ownerID := order.ID.String()
	for _, file := range files {
		if OwnerToken(file.Name) != ownerID {
			continue
		}

		photoURL := r.storage.PhotoPublicURL(file.Name)
		if err := r.store.SaveOrderPhotoURL(order.ID, photoURL); err != nil {
			// Losing the backfill only means the next listing scans again.
			r.logger.Warn("failed to persist photo url",
				zap.String("order_id", ownerID),
				zap.Error(err))
		}
		metrics.PhotoResolutionsTotal.WithLabelValues("bucket").Inc()
		return photoURL
	}

	metrics.PhotoResolutionsTotal.WithLabelValues("miss").Inc()
	return ""
}

// ResolveAll resolves every order on a page concurrently. Each resolution
// writes only to its own order, so the fan-out needs no locking.
func (r *PhotoResolver) ResolveAll(orders []models.Order) {
	g := new(errgroup.Group)
	for i := range orders {
		order := &orders[i]
		g.Go(func() error {
			if url := r.Resolve(order); url != "" {
				order.PetPhotoURL = sql.NullString{String: url, Valid: true}
			}
			return nil
		})
	}
	_ = g.Wait()
}

// OwnerToken derives the owner of a stored photo from its filename: the
// substring before the first underscore, which uploads set to the order id.
// This is a naming convention, not a verified foreign key; a filename that
// breaks it is silently treated as unowned.
func OwnerToken(fileName string) string {
	if i := strings.Index(fileName, "_"); i >= 0 {
		return fileName[:i]
	}
	return fileName
}
