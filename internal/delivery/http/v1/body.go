package v1

import (
	"errors"

	"go-resume-backend/pkg/logger"
	"go-resume-backend/pkg/upload"

	"github.com/gin-gonic/gin"
)

const maxMultipartMemory = 8 << 20

// msgNoBody is the canonical 400 message for an unusable request body.
const msgNoBody = "Request must be JSON or include form data"

var errNoBody = errors.New("request has no usable body")

// parseBody decodes the request into a flat field map regardless of
// transport encoding: multipart form fields or a JSON object. Handlers stay
// agnostic of which one the client picked.
func parseBody(c *gin.Context) (map[string]any, error) {
	if c.ContentType() == "multipart/form-data" {
		if err := c.Request.ParseMultipartForm(maxMultipartMemory); err != nil {
			return nil, errNoBody
		}
		body := make(map[string]any, len(c.Request.PostForm))
		for key, values := range c.Request.PostForm {
			if len(values) > 0 {
				body[key] = values[0]
			}
		}
		if len(body) == 0 {
			return nil, errNoBody
		}
		return body, nil
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, errNoBody
	}
	if len(body) == 0 {
		return nil, errNoBody
	}
	return body, nil
}

// logoFilename stores the "logo" attachment if one is present and valid.
// Empty result means no usable upload; the caller decides the fallback. A
// rejected file never fails the request.
func logoFilename(c *gin.Context, uploads *upload.Saver) string {
	file, err := c.FormFile("logo")
	if err != nil {
		return ""
	}
	name, err := uploads.Store(file)
	if err != nil {
		logger.Log.Warn("Rejected logo upload, using default", "filename", file.Filename, "error", err)
		return ""
	}
	return name
}
