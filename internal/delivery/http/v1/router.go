package v1

import (
	"net/http"

	"go-resume-backend/config"
	"go-resume-backend/internal/delivery/http/middleware"
	"go-resume-backend/internal/delivery/http/response"
	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/upload"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ExperienceUC      domain.ExperienceUsecase
	EducationUC       domain.EducationUsecase
	SkillUC           domain.SkillUsecase
	UserInformationUC domain.UserInformationUsecase
	CustomSectionUC   domain.CustomSectionUsecase
	SpellcheckUC      domain.SpellcheckUsecase
	Uploads           *upload.Saver
	Config            *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	// Health check / smoke test
	r.GET("/test", func(c *gin.Context) {
		response.Message(c, http.StatusOK, "Hello, World!")
	})

	// Stored logo files
	r.Static("/uploads", deps.Config.UploadDir)

	resume := r.Group("/resume")
	{
		NewExperienceHandler(resume, deps.ExperienceUC, deps.Uploads)
		NewEducationHandler(resume, deps.EducationUC, deps.Uploads)
		NewSkillHandler(resume, deps.SkillUC, deps.Uploads)
		NewUserInformationHandler(resume, deps.UserInformationUC)
		NewSpellcheckHandler(resume, deps.SpellcheckUC)
	}

	root := r.Group("")
	NewCustomSectionHandler(root, deps.CustomSectionUC)

	return r
}
