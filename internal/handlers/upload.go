package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"rg-pet-backend/internal/config"
	"rg-pet-backend/internal/models"
	"rg-pet-backend/internal/supabase"
)

// UploadSigner is the slice of the storage client the upload handler needs.
type UploadSigner interface {
	CreateSignedUploadURL(filePath string) (string, error)
	PublicURL(path string) string
}

type UploadHandler struct {
	storage UploadSigner
	logger  *zap.Logger
	errs    errorWriter
}

func NewUploadHandler(storage UploadSigner, logger *zap.Logger, cfg *config.Config) *UploadHandler {
	return &UploadHandler{
		storage: storage,
		logger:  logger,
		errs:    newErrorWriter(cfg),
	}
}

// CreateSignedURL godoc
// @Summary     Mint a signed upload URL for a pet photo
// @Description The browser uploads the photo straight to the bucket with the
// @Description returned URL; the file never passes through this server.
// @Tags        upload
// @Accept      json
// @Produce     json
// @Param       request body models.SignedURLRequest true "File name and type, plus the order or session id"
// @Success     200 {object} models.SignedURLResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/upload/signed-url [post]
func (h *UploadHandler) CreateSignedURL(c *gin.Context) {
	var req models.SignedURLRequest
	_ = c.ShouldBindJSON(&req)

	if req.FileName == "" || req.FileType == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Dados incompletos",
			Message: "Nome e tipo do arquivo são obrigatórios",
		})
		return
	}

	// The object name starts with the order id so the photo resolver can
	// find its way back to the order later.
	identifier := req.OrderID
	if identifier == "" {
		identifier = req.SessionID
	}
	if identifier == "" {
		identifier = models.UnknownOrigin
	}
	filePath := supabase.PetPhotoPath(identifier, req.FileName)

	signedURL, err := h.storage.CreateSignedUploadURL(filePath)
	if err != nil {
		h.logger.Error("failed to create signed upload url",
			zap.String("file_path", filePath),
			zap.Error(err))
		h.errs.write(c, err, "Erro ao preparar upload")
		return
	}

	c.JSON(http.StatusOK, models.SignedURLResponse{
		Success:   true,
		SignedURL: signedURL,
		FilePath:  filePath,
		PublicURL: h.storage.PublicURL(filePath),
	})
}
