package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"fornsaga-backend/internal/service"
)

type ProgressController struct {
	ProgressService    service.ProgressService
	AchievementService service.AchievementService
}

func NewProgressController(progressService service.ProgressService, achievementService service.AchievementService) *ProgressController {
	return &ProgressController{
		ProgressService:    progressService,
		AchievementService: achievementService,
	}
}

func (pc *ProgressController) GetProgress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	progress, err := pc.ProgressService.GetProgress(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// DownloadReport streams the PDF progress report.
func (pc *ProgressController) DownloadReport(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	username := c.GetString("username")
	pdfBytes, err := pc.ProgressService.RenderReport(userID, username)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=progress_%d.pdf", userID))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func (pc *ProgressController) GetAchievements(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	earned, err := pc.AchievementService.GetUserAchievements(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	catalog, err := pc.AchievementService.GetCatalog()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"earned": earned, "catalog": catalog})
}
