package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"rota-reader/internal/logger"
	"rota-reader/internal/model"
	"rota-reader/internal/service"
	"rota-reader/internal/store"
)

type DownloadHandler struct {
	exports *service.ExportService
	uploads *store.Uploads
}

func NewDownloadHandler(exports *service.ExportService, uploads *store.Uploads) *DownloadHandler {
	return &DownloadHandler{exports: exports, uploads: uploads}
}

// Download handles POST /api/downloadShifts, answering with the
// generated calendar feed as an attachment.
func (h *DownloadHandler) Download(c *gin.Context) {
	var req model.DownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	path, ok := h.uploads.Get(req.Token)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no uploaded roster found for token"})
		return
	}

	export, err := h.exports.Build(path, req)
	if err != nil {
		respondError(c, "download", err)
		return
	}

	logger.Info("download.ok", "employee", req.EmployeeData.Name, "type", req.Type, "file", export.Filename)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(export.Content))
}
