package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/valpere/trangate/internal/translator"
)

// Detect godoc
// @Summary      Detect language
// @Description  Detects language of the text
// @Tags         TranslatorAPI
// @Accept       json
// @Produce      json
// @Param        Detect  body      translator.DetectRequest  true  "Detection text"
// @Success      200     {array}   DetectResponse
// @Failure      400     {string}  string
// @Router       /api.v1.TextTranslator.com/Detect [post]
func (h *Handler) Detect(c *gin.Context) {
	var req translator.DetectRequest
	if err := h.Validator.Bind(c.Request.Body, &req); err != nil {
		h.fail(c, err)
		return
	}

	results, err := h.Service.Detect(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, reshapeDetect(results))
}
