package v1

import (
	"net/http"

	"go-resume-backend/internal/delivery/http/response"
	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SpellcheckHandler struct {
	spellcheckUC domain.SpellcheckUsecase
}

func NewSpellcheckHandler(r *gin.RouterGroup, spellcheckUC domain.SpellcheckUsecase) {
	handler := &SpellcheckHandler{
		spellcheckUC: spellcheckUC,
	}

	r.POST("/spellcheck", handler.Check)
}

// Check godoc
// @Summary      Spell-check resume text fields
// @Description  Scans experience titles/descriptions, education courses and skill names, returning candidate corrections per field.
// @Tags         spellcheck
// @Accept       json
// @Produce      json
// @Success      200  {array}  domain.SpellcheckResult
// @Failure      400  {object}  map[string]string
// @Router       /resume/spellcheck [post]
func (h *SpellcheckHandler) Check(c *gin.Context) {
	var req domain.SpellcheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(msgNoBody))
		return
	}

	results, err := h.spellcheckUC.Check(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, results)
}
