package handler

import (
	"io"
	"net/http"

	"streetcats-backend/internal/domains/photo"
	"streetcats-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Multipart bodies are capped a little above the per-file limit so the
// size check in the service sees the full payload.
const maxUploadBody = 32 * 1024 * 1024

type PhotoHandler struct {
	service photo.Service
}

func NewPhotoHandler(svc photo.Service) *PhotoHandler {
	return &PhotoHandler{service: svc}
}

// Upload handles POST /photos. Accepts one or more files under the
// "photos" multipart field; each file uploads independently, so the
// response carries the subset that succeeded.
func (h *PhotoHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBody)

	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "Invalid multipart form")
		return
	}

	headers := form.File["photos"]
	if len(headers) == 0 {
		response.BadRequest(c, photo.ErrFileRequired.Error())
		return
	}

	files := make([]photo.File, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			response.BadRequest(c, "Cannot read uploaded file")
			return
		}

		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			response.BadRequest(c, "Cannot read uploaded file")
			return
		}

		files = append(files, photo.File{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	uploads := h.service.UploadPhotos(c.Request.Context(), files)
	response.Success(c, http.StatusCreated, uploads)
}

type deleteRequest struct {
	URL string `json:"url"`
}

// Delete handles DELETE /photos with a JSON body naming the public URL.
func (h *PhotoHandler) Delete(c *gin.Context) {
	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		response.BadRequest(c, "Photo URL is required")
		return
	}

	if !h.service.DeletePhoto(c.Request.Context(), req.URL) {
		response.BadRequest(c, "URL does not point to a stored photo")
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Photo deleted successfully")
}
