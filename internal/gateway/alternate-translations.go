package gateway

import (
	"github.com/gin-gonic/gin"
	"github.com/valpere/trangate/internal/translator"
)

// AlternateTranslations godoc
// @Summary      Dictionary lookup
// @Description  Gives alternate translations of the input
// @Tags         TranslatorAPI
// @Accept       json
// @Produce      json
// @Param        Alternate_Translation  body      translator.AlternateTranslationRequest  true  "Alternate_Translation Object"
// @Success      200                    {array}   object
// @Failure      400                    {string}  string
// @Router       /api.v1.TextTranslator.com/AlternateTranslations [post]
func (h *Handler) AlternateTranslations(c *gin.Context) {
	var req translator.AlternateTranslationRequest
	if err := h.Validator.Bind(c.Request.Body, &req); err != nil {
		h.fail(c, err)
		return
	}

	results, err := h.Service.DictionaryLookup(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	translations, err := firstTranslations(results)
	if err != nil {
		h.fail(c, err)
		return
	}

	relay(c, translations)
}
