package gateway

import (
	"github.com/gin-gonic/gin"
	"github.com/valpere/trangate/internal/translator"
)

// Translate godoc
// @Summary      Translate text
// @Description  Translate and detect input text
// @Tags         TranslatorAPI
// @Accept       json
// @Produce      json
// @Param        Translate  body      translator.TranslateRequest  true  "text translation"
// @Success      200        {array}   object
// @Failure      400        {string}  string
// @Router       /api.v1.TextTranslator.com/Translate [post]
func (h *Handler) Translate(c *gin.Context) {
	var req translator.TranslateRequest
	if err := h.Validator.Bind(c.Request.Body, &req); err != nil {
		h.fail(c, err)
		return
	}

	body, err := h.Service.Translate(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	relay(c, body)
}
