package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rota-reader/internal/logger"
	"rota-reader/internal/model"
	"rota-reader/internal/service"
	"rota-reader/internal/store"
)

type EmployeeHandler struct {
	rosters *service.RosterService
	uploads *store.Uploads
}

func NewEmployeeHandler(rosters *service.RosterService, uploads *store.Uploads) *EmployeeHandler {
	return &EmployeeHandler{rosters: rosters, uploads: uploads}
}

// Select handles POST /api/selectEmployee.
func (h *EmployeeHandler) Select(c *gin.Context) {
	var req model.SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	path, ok := h.uploads.Get(req.Token)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no uploaded roster found for token"})
		return
	}

	result, err := h.rosters.ShiftData(path, req.EmployeeSelection)
	if err != nil {
		respondError(c, "select", err)
		return
	}

	logger.Info("select.ok", "employee", req.Name, "link", req.Link, "weeks", len(result.WeeksData))
	c.JSON(http.StatusOK, result)
}
