package gateway

import (
	"github.com/gin-gonic/gin"
	"github.com/valpere/trangate/internal/translator"
)

// Transliterate godoc
// @Summary      Transliterate text
// @Description  Text conversion of one language to another based on phonetic similarity
// @Tags         TranslatorAPI
// @Accept       json
// @Produce      json
// @Param        Transliterate  body      translator.TransliterateRequest  true  "Transliterate text"
// @Success      200            {array}   object
// @Failure      400            {string}  string
// @Router       /api.v1.TextTranslator.com/Transliterate [post]
func (h *Handler) Transliterate(c *gin.Context) {
	var req translator.TransliterateRequest
	if err := h.Validator.Bind(c.Request.Body, &req); err != nil {
		h.fail(c, err)
		return
	}

	body, err := h.Service.Transliterate(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	relay(c, body)
}
