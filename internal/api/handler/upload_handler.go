package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salonspot/masters-api/internal/api/metrics"
	"github.com/salonspot/masters-api/internal/infrastructure/storage"
)

// uploadURLPrefix is where the router serves stored photos from.
const uploadURLPrefix = "/static/uploads/"

type UploadHandler struct {
	store *storage.LocalStore
}

func NewUploadHandler(store *storage.LocalStore) *UploadHandler {
	return &UploadHandler{store: store}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload accepts a photo and returns the URL to submit as the profile's
// photo field. Only the file extension is checked; content is opaque.
//
// @Summary      Upload a photo
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Image file (jpg, jpeg, png, gif, webp)"
// @Success      201   {object}  uploadResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/upload [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("rejected").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "no file")
	}

	src, err := file.Open()
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("error").Inc()
		return err
	}
	defer src.Close()

	name, err := h.store.Save(file.Filename, src)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedExtension) {
			metrics.UploadsTotal.WithLabelValues("rejected").Inc()
			return echo.NewHTTPError(http.StatusBadRequest, "bad type")
		}
		metrics.UploadsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.UploadsTotal.WithLabelValues("stored").Inc()
	return c.JSON(http.StatusCreated, uploadResponse{URL: uploadURLPrefix + name})
}
