package apiserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arcosphere-go/catalyst/pathfmt"
	"github.com/arcosphere-go/catalyst/schedule"
)

type scheduleRequest struct {
	Path string `json:"path"`
}

// handleSchedule groups one canonical path's steps into concurrency
// stages and returns the canonical stage text.
func (h *APIHandler) handleSchedule(c *gin.Context) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	source, _, _, catalyst, path, err := pathfmt.ParsePath(req.Path, h.recipes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := source.MustAdd(catalyst)
	stages, err := schedule.Schedule(start, path)
	if err != nil {
		var se *schedule.Error
		if errors.As(err, &se) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stages": pathfmt.FormatStages(stages)})
}
