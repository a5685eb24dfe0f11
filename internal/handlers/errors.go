package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"rg-pet-backend/internal/config"
	"rg-pet-backend/internal/models"
	"rg-pet-backend/internal/supabase"
)

// errorWriter maps store errors onto HTTP responses. Internal failure
// detail goes into the message field only outside production.
type errorWriter struct {
	includeDetail bool
}

func newErrorWriter(cfg *config.Config) errorWriter {
	return errorWriter{includeDetail: !cfg.IsProduction()}
}

// write responds with the status class the error belongs to. category is
// the label used for plain store failures (500).
func (w errorWriter) write(c *gin.Context, err error, category string) {
	var vErr *supabase.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   vErr.Category,
			Message: vErr.Message,
		})
	case errors.Is(err, supabase.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "Pedido não encontrado",
			Message: "Pedido com o ID informado não existe",
		})
	default:
		resp := models.ErrorResponse{Error: category}
		if w.includeDetail {
			resp.Message = err.Error()
		}
		c.JSON(http.StatusInternalServerError, resp)
	}
}
