package v1

import (
	"net/http"
	"strconv"

	"go-resume-backend/internal/delivery/http/response"
	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"
	"go-resume-backend/pkg/upload"

	"github.com/gin-gonic/gin"
)

type EducationHandler struct {
	educationUC domain.EducationUsecase
	uploads     *upload.Saver
}

func NewEducationHandler(r *gin.RouterGroup, educationUC domain.EducationUsecase, uploads *upload.Saver) {
	handler := &EducationHandler{
		educationUC: educationUC,
		uploads:     uploads,
	}

	r.GET("/education", handler.List)
	r.POST("/education", handler.Create)
	r.GET("/education/:index", handler.Get)
	r.PUT("/education/:index", handler.Update)
	r.DELETE("/education/:index", handler.Delete)
}

func (h *EducationHandler) List(c *gin.Context) {
	educations, err := h.educationUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, educations)
}

func (h *EducationHandler) Create(c *gin.Context) {
	body, err := parseBody(c)
	if err != nil {
		c.Error(apperror.BadRequest(msgNoBody))
		return
	}

	id, err := h.educationUC.Create(c.Request.Context(), body, logoFilename(c, h.uploads))
	if err != nil {
		c.Error(err)
		return
	}
	response.Created(c, "New education created", id)
}

func (h *EducationHandler) Get(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.Error(apperror.NotFound("Education not found"))
		return
	}

	education, err := h.educationUC.Get(c.Request.Context(), index)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, education)
}

func (h *EducationHandler) Update(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.Error(apperror.NotFound("Education not found"))
		return
	}

	body, err := parseBody(c)
	if err != nil {
		c.Error(apperror.BadRequest(msgNoBody))
		return
	}

	id, err := h.educationUC.Update(c.Request.Context(), index, body, logoFilename(c, h.uploads))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"id": id})
}

func (h *EducationHandler) Delete(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.Error(apperror.NotFound("Education entry not found"))
		return
	}

	if err := h.educationUC.Delete(c.Request.Context(), index); err != nil {
		c.Error(err)
		return
	}
	response.Message(c, http.StatusOK, "Education entry successfully deleted")
}
