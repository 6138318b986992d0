package apiserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arcosphere-go/catalyst/pathfmt"
	"github.com/arcosphere-go/catalyst/verify"
)

type verifyRequest struct {
	Path string `json:"path"`
}

// handleVerify checks one canonical path text end to end.
func (h *APIHandler) handleVerify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	source, target, _, catalyst, path, err := pathfmt.ParsePath(req.Path, h.recipes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := source.MustAdd(catalyst)
	goal := target.MustAdd(catalyst)
	if err := verify.Verify(start, goal, path, h.recipes); err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true})
}
