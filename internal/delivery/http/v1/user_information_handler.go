package v1

import (
	"net/http"

	"go-resume-backend/internal/delivery/http/response"
	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UserInformationHandler struct {
	userInformationUC domain.UserInformationUsecase
}

// NewUserInformationHandler registers the singleton contact-details routes.
// POST and PUT behave identically: both replace the record wholesale.
func NewUserInformationHandler(r *gin.RouterGroup, userInformationUC domain.UserInformationUsecase) {
	handler := &UserInformationHandler{
		userInformationUC: userInformationUC,
	}

	r.GET("/user_information", handler.Get)
	r.POST("/user_information", handler.Set)
	r.PUT("/user_information", handler.Set)
}

func (h *UserInformationHandler) Get(c *gin.Context) {
	info, err := h.userInformationUC.Get(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, info)
}

func (h *UserInformationHandler) Set(c *gin.Context) {
	body, err := parseBody(c)
	if err != nil {
		c.Error(apperror.BadRequest(msgNoBody))
		return
	}

	info, err := h.userInformationUC.Set(c.Request.Context(), body)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, info)
}
