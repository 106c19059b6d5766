package handler

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"rota-reader/internal/config"
	"rota-reader/internal/logger"
	"rota-reader/internal/model"
	"rota-reader/internal/service"
	"rota-reader/internal/store"
)

type UploadHandler struct {
	rosters *service.RosterService
	uploads *store.Uploads
	cfg     config.UploadConfig
}

func NewUploadHandler(rosters *service.RosterService, uploads *store.Uploads, cfg config.UploadConfig) *UploadHandler {
	return &UploadHandler{rosters: rosters, uploads: uploads, cfg: cfg}
}

// Upload handles POST /api/upload. The saved workbook's directory sheet
// is parsed immediately so the caller gets the link groups along with
// the session token for subsequent requests.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}
	if file.Size > h.cfg.MaxSizeMB<<20 {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("file exceeds %dMB limit", h.cfg.MaxSizeMB)})
		return
	}
	if !strings.EqualFold(filepath.Ext(file.Filename), ".xlsx") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only .xlsx files are supported"})
		return
	}

	token := store.NewToken()
	dst := filepath.Join(h.cfg.Dir, "roster_"+token+".xlsx")
	if err := c.SaveUploadedFile(file, dst); err != nil {
		logger.Error("upload.save_failed", "file", file.Filename, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save uploaded file"})
		return
	}

	links, err := h.rosters.Links(dst)
	if err != nil {
		os.Remove(dst)
		respondError(c, "upload", err)
		return
	}

	h.uploads.Put(token, dst)
	logger.Info("upload.ok", "file", file.Filename, "size", file.Size, "token", token, "links", len(links))
	c.JSON(http.StatusOK, model.UploadResult{Success: true, Token: token, Links: links})
}
