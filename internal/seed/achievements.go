package seed

import (
	"gorm.io/gorm"

	"fornsaga-backend/internal/model"
)

// The titles here must match the registered award rules; catalog rows
// without a rule are never awarded.
func seedAchievements(tx *gorm.DB) error {
	achievements := []model.Achievement{
		{
			Title:         "First Quiz",
			TitleIS:       "Fyrsta prófið",
			Description:   "Complete your first quiz.",
			DescriptionIS: "Ljúktu þínu fyrsta prófi.",
			Requirement:   "Complete 1 quiz",
			RequirementIS: "Ljúka 1 prófi",
			Icon:          "icons/first_quiz.png",
		},
		{
			Title:         "Perfect Score",
			TitleIS:       "Fullt hús",
			Description:   "Answer every question in a quiz correctly.",
			DescriptionIS: "Svaraðu öllum spurningum í prófi rétt.",
			Requirement:   "Score 100% on a quiz",
			RequirementIS: "Ná 100% á prófi",
			Icon:          "icons/perfect_score.png",
		},
		{
			Title:         "History Buff",
			TitleIS:       "Söguáhugamaður",
			Description:   "Complete ten quizzes.",
			DescriptionIS: "Ljúktu tíu prófum.",
			Requirement:   "Complete 10 quizzes",
			RequirementIS: "Ljúka 10 prófum",
			Icon:          "icons/history_buff.png",
		},
	}
	for i := range achievements {
		if err := tx.Where(model.Achievement{Title: achievements[i].Title}).FirstOrCreate(&achievements[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
