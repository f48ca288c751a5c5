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

type ExperienceHandler struct {
	experienceUC domain.ExperienceUsecase
	uploads      *upload.Saver
}

func NewExperienceHandler(r *gin.RouterGroup, experienceUC domain.ExperienceUsecase, uploads *upload.Saver) {
	handler := &ExperienceHandler{
		experienceUC: experienceUC,
		uploads:      uploads,
	}

	r.GET("/experience", handler.List)
	r.POST("/experience", handler.Create)
	r.GET("/experience/:index", handler.Get)
	r.PUT("/experience/:index", handler.Update)
	r.DELETE("/experience/:index", handler.Delete)
}

// List godoc
// @Summary      List experiences
// @Description  Returns every experience record; each carries its current index as id.
// @Tags         experience
// @Produce      json
// @Success      200  {array}  domain.Experience
// @Router       /resume/experience [get]
func (h *ExperienceHandler) List(c *gin.Context) {
	experiences, err := h.experienceUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, experiences)
}

// Create godoc
// @Summary      Create an experience
// @Description  Accepts JSON or multipart form data with an optional logo file.
// @Tags         experience
// @Accept       json
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /resume/experience [post]
func (h *ExperienceHandler) Create(c *gin.Context) {
	body, err := parseBody(c)
	if err != nil {
		c.Error(apperror.BadRequest(msgNoBody))
		return
	}

	id, err := h.experienceUC.Create(c.Request.Context(), body, logoFilename(c, h.uploads))
	if err != nil {
		c.Error(err)
		return
	}
	response.Created(c, "New experience created", id)
}

// Get godoc
// @Summary      Get an experience by index
// @Tags         experience
// @Produce      json
// @Success      200  {object}  domain.Experience
// @Failure      404  {object}  map[string]string
// @Router       /resume/experience/{index} [get]
func (h *ExperienceHandler) Get(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.Error(apperror.NotFound("Experience not found"))
		return
	}

	experience, err := h.experienceUC.Get(c.Request.Context(), index)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, experience)
}

// Update godoc
// @Summary      Replace an experience by index
// @Tags         experience
// @Accept       json
// @Accept       multipart/form-data
// @Produce      json
// @Success      200  {object}  map[string]int
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /resume/experience/{index} [put]
func (h *ExperienceHandler) Update(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.Error(apperror.NotFound("Experience not found"))
		return
	}

	body, err := parseBody(c)
	if err != nil {
		c.Error(apperror.BadRequest(msgNoBody))
		return
	}

	id, err := h.experienceUC.Update(c.Request.Context(), index, body, logoFilename(c, h.uploads))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"id": id})
}

// Delete godoc
// @Summary      Delete an experience by index
// @Description  Removes the record; later records shift down one index.
// @Tags         experience
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /resume/experience/{index} [delete]
func (h *ExperienceHandler) Delete(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.Error(apperror.NotFound("Experience entry not found"))
		return
	}

	if err := h.experienceUC.Delete(c.Request.Context(), index); err != nil {
		c.Error(err)
		return
	}
	response.Message(c, http.StatusOK, "Experience entry successfully deleted")
}
