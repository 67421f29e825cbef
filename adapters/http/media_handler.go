package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	mediaUC "github.com/GaluhWikri/Portofolio-Galuh/internal/application/usecase/media"
	"github.com/GaluhWikri/Portofolio-Galuh/pkg/apperror"
	"github.com/GaluhWikri/Portofolio-Galuh/pkg/logger"
)

type MediaHandler struct {
	uploadUseCase *mediaUC.UploadMediaUseCase
	logger        logger.Logger
}

func NewMediaHandler(uploadUC *mediaUC.UploadMediaUseCase, log logger.Logger) *MediaHandler {
	return &MediaHandler{uploadUseCase: uploadUC, logger: log}
}

// Upload writes its own response bodies instead of going through the error
// middleware: the dashboard expects the `{success, path|message}` shape here.
func (h *MediaHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, UploadResponse{
			Success: false,
			Message: "File tidak ditemukan di dalam request.",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, UploadResponse{
			Success: false,
			Message: "Gagal membuka file upload.",
		})
		return
	}
	defer file.Close()

	input := mediaUC.UploadMediaInput{File: file, Filename: fileHeader.Filename}
	output, err := h.uploadUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		h.logger.Error("upload failed", err)
		c.JSON(http.StatusInternalServerError, UploadResponse{
			Success: false,
			Message: apperror.UserMessage(err),
		})
		return
	}

	c.JSON(http.StatusOK, UploadResponse{Success: true, Path: output.Path})
}
