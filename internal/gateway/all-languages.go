package gateway

import (
	"github.com/gin-gonic/gin"
	"github.com/valpere/trangate/internal/validator"
)

// AllLanguages godoc
// @Summary      Supported languages
// @Description  Gets the set of languages currently supported
// @Tags         TranslatorAPI
// @Produce      json
// @Param        scope  path      string  true  "translation or transliteration or dictionary"
// @Success      200    {object}  object
// @Failure      400    {string}  string
// @Router       /api.v1.TextTranslator.com/AllLanguages/{scope} [get]
func (h *Handler) AllLanguages(c *gin.Context) {
	scope := c.Param("scope")
	if err := validator.Required("scope", scope); err != nil {
		h.fail(c, err)
		return
	}

	body, err := h.Service.Languages(c.Request.Context(), scope)
	if err != nil {
		h.fail(c, err)
		return
	}

	relay(c, body)
}
