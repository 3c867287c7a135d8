package gateway

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/valpere/trangate/internal/translator"
	"github.com/valpere/trangate/internal/validator"
)

func (h *Handler) statusFor(err error) int {
	var verr *validator.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case !h.Options.StrictErrors:
		return http.StatusBadRequest
	case errors.Is(err, translator.ErrUnsupported):
		return http.StatusNotImplemented
	default:
		return http.StatusBadGateway
	}
}

// fail writes the error message as a bare JSON string.
func (h *Handler) fail(c *gin.Context, err error) {
	c.JSON(h.statusFor(err), err.Error())
}

func relay(c *gin.Context, body []byte) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
