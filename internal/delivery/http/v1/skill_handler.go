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

type SkillHandler struct {
	skillUC domain.SkillUsecase
	uploads *upload.Saver
}

// NewSkillHandler registers the skill routes. Skills are addressed by the
// ?id= query parameter for retrieve and update, and by path index for
// delete.
func NewSkillHandler(r *gin.RouterGroup, skillUC domain.SkillUsecase, uploads *upload.Saver) {
	handler := &SkillHandler{
		skillUC: skillUC,
		uploads: uploads,
	}

	r.GET("/skill", handler.List)
	r.POST("/skill", handler.Create)
	r.PUT("/skill", handler.Update)
	r.DELETE("/skill/:index", handler.Delete)
}

// List returns all skills, or a single skill when ?id= is given.
func (h *SkillHandler) List(c *gin.Context) {
	if idParam := c.Query("id"); idParam != "" {
		index, err := strconv.Atoi(idParam)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid skill id"))
			return
		}
		skill, err := h.skillUC.Get(c.Request.Context(), index)
		if err != nil {
			c.Error(err)
			return
		}
		response.JSON(c, http.StatusOK, skill)
		return
	}

	skills, err := h.skillUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, skills)
}

func (h *SkillHandler) Create(c *gin.Context) {
	body, err := parseBody(c)
	if err != nil {
		c.Error(apperror.BadRequest(msgNoBody))
		return
	}

	id, err := h.skillUC.Create(c.Request.Context(), body, logoFilename(c, h.uploads))
	if err != nil {
		c.Error(err)
		return
	}
	response.Created(c, "New skill created", id)
}

// Update replaces the skill addressed by ?id= and echoes the stored record.
func (h *SkillHandler) Update(c *gin.Context) {
	idParam := c.Query("id")
	if idParam == "" {
		c.Error(apperror.BadRequest("Invalid skill id"))
		return
	}
	index, err := strconv.Atoi(idParam)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid skill id"))
		return
	}

	body, err := parseBody(c)
	if err != nil {
		c.Error(apperror.BadRequest(msgNoBody))
		return
	}

	skill, err := h.skillUC.Update(c.Request.Context(), index, body)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, skill)
}

func (h *SkillHandler) Delete(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.Error(apperror.NotFound("Skill entry not found"))
		return
	}

	if err := h.skillUC.Delete(c.Request.Context(), index); err != nil {
		c.Error(err)
		return
	}
	response.Message(c, http.StatusOK, "Skill entry successfully deleted")
}
