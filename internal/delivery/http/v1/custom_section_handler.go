package v1

import (
	"errors"
	"net/http"
	"strings"

	"go-resume-backend/internal/delivery/http/response"
	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"
	"go-resume-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type CustomSectionHandler struct {
	customSectionUC domain.CustomSectionUsecase
}

func NewCustomSectionHandler(r *gin.RouterGroup, customSectionUC domain.CustomSectionUsecase) {
	handler := &CustomSectionHandler{
		customSectionUC: customSectionUC,
	}

	r.POST("/custom-section", handler.Create)
	r.GET("/custom-sections", handler.List)
}

func (h *CustomSectionHandler) Create(c *gin.Context) {
	var req domain.CustomSection
	if err := c.ShouldBind(&req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			c.Error(apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; ")))
			return
		}
		c.Error(apperror.BadRequest(msgNoBody))
		return
	}

	id, err := h.customSectionUC.Create(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Created(c, "New custom section created", id)
}

func (h *CustomSectionHandler) List(c *gin.Context) {
	sections, err := h.customSectionUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, sections)
}
