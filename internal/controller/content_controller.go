package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fornsaga-backend/internal/repository"
	"fornsaga-backend/internal/service"
)

type ContentController struct {
	ContentService service.ContentService
}

func NewContentController(contentService service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

func (cc *ContentController) ListPeriods(c *gin.Context) {
	periods, err := cc.ContentService.GetPeriods()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"periods": periods})
}

func (cc *ContentController) PeriodHome(c *gin.Context) {
	id, err := paramUint(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period id"})
		return
	}
	sampleSize := queryInt(c, "sample_size")
	home, err := cc.ContentService.GetPeriodHome(id, sampleSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, home)
}

func (cc *ContentController) ListCivilizations(c *gin.Context) {
	civilizations, err := cc.ContentService.GetCivilizations(queryUint(c, "period_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"civilizations": civilizations})
}

func (cc *ContentController) ListPeople(c *gin.Context) {
	people, err := cc.ContentService.GetPeople(queryUint(c, "period_id"), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"people": people})
}

func (cc *ContentController) GetPerson(c *gin.Context) {
	id, err := paramUint(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid person id"})
		return
	}
	person, err := cc.ContentService.GetPersonByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, person)
}

func (cc *ContentController) ListDeities(c *gin.Context) {
	deities, err := cc.ContentService.GetDeities(queryUint(c, "period_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deities": deities})
}

func (cc *ContentController) GetDeity(c *gin.Context) {
	id, err := paramUint(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid deity id"})
		return
	}
	deity, err := cc.ContentService.GetDeityByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deity)
}

func (cc *ContentController) ListBattles(c *gin.Context) {
	battles, err := cc.ContentService.GetBattles(queryUint(c, "period_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"battles": battles})
}

func (cc *ContentController) GetBattle(c *gin.Context) {
	id, err := paramUint(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid battle id"})
		return
	}
	battle, err := cc.ContentService.GetBattleByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, battle)
}

func (cc *ContentController) ListCulturalTopics(c *gin.Context) {
	topics, err := cc.ContentService.GetCulturalTopics(queryUint(c, "period_id"), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cultural_topics": topics})
}

func (cc *ContentController) GetCulturalTopic(c *gin.Context) {
	id, err := paramUint(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid topic id"})
		return
	}
	topic, err := cc.ContentService.GetCulturalTopicByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, topic)
}

func (cc *ContentController) ListTimelineEvents(c *gin.Context) {
	filter := repository.EventFilter{
		PeriodID:      queryUint(c, "period_id"),
		Category:      c.Query("category"),
		MinImportance: queryInt(c, "min_importance"),
	}
	if raw := c.Query("year_from"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filter.YearFrom = &v
		}
	}
	if raw := c.Query("year_to"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filter.YearTo = &v
		}
	}
	events, err := cc.ContentService.GetTimelineEvents(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (cc *ContentController) Search(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'q' is required"})
		return
	}
	results, err := cc.ContentService.Search(term, queryInt(c, "limit"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
