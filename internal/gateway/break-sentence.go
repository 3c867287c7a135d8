package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/valpere/trangate/internal/translator"
)

// BreakSentence godoc
// @Summary      Sentence boundaries
// @Description  Get sentence length during translation
// @Tags         TranslatorAPI
// @Accept       json
// @Produce      json
// @Param        Sentence  body      translator.BreakSentenceRequest  true  "Sentence"
// @Success      200       {array}   BreakSentenceResponse
// @Failure      400       {string}  string
// @Router       /api.v1.TextTranslator.com/BreakSentence [post]
func (h *Handler) BreakSentence(c *gin.Context) {
	var req translator.BreakSentenceRequest
	if err := h.Validator.Bind(c.Request.Body, &req); err != nil {
		h.fail(c, err)
		return
	}

	results, err := h.Service.BreakSentence(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	out, err := reshapeBreakSentence(results)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}
