package apiserver

import (
	"net/http"

	"github.com/blang/semver/v4"
	"github.com/gin-gonic/gin"
)

// Version is arcosphered's own release version, bumped manually —
// there is no build-time ldflags injection wired up yet.
var Version = semver.MustParse("0.1.0")

// handleVersion reports the running build, parsed and re-rendered
// through semver so a malformed Version constant fails at package
// init instead of silently shipping bad metadata.
func (h *APIHandler) handleVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": Version.String(),
		"major":   Version.Major,
		"minor":   Version.Minor,
		"patch":   Version.Patch,
	})
}
