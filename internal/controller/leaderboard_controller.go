package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fornsaga-backend/internal/service"
)

type LeaderboardController struct {
	LeaderboardService service.LeaderboardService
	DefaultLimit       int
}

func NewLeaderboardController(leaderboardService service.LeaderboardService, defaultLimit int) *LeaderboardController {
	return &LeaderboardController{LeaderboardService: leaderboardService, DefaultLimit: defaultLimit}
}

func (lc *LeaderboardController) GetLeaderboard(c *gin.Context) {
	limit := queryInt(c, "limit")
	if limit <= 0 {
		limit = lc.DefaultLimit
	}
	entries, err := lc.LeaderboardService.GetLeaderboard(limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
