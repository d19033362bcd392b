package seed

import (
	"gorm.io/gorm"

	"fornsaga-backend/internal/model"
)

func seedPeriods(tx *gorm.DB) error {
	antiquity := model.HistoricalPeriod{
		Name:          "Antiquity",
		NameIS:        "Fornöld",
		StartYear:     -3000,
		EndYear:       476,
		Description:   "The classical civilizations of the Mediterranean, from the first Aegean palaces to the fall of the Western Roman Empire.",
		DescriptionIS: "Klassískar menningar Miðjarðarhafsins, frá fyrstu höllum Eyjahafsins til falls Vestrómverska ríkisins.",
	}
	if err := findOrCreatePeriod(tx, &antiquity); err != nil {
		return err
	}

	children := []model.HistoricalPeriod{
		{
			Name:          "Ancient Greece",
			NameIS:        "Forn-Grikkland",
			StartYear:     -800,
			EndYear:       -146,
			Description:   "The Greek city-states, their wars, philosophy and art, from the Archaic age to the Roman conquest.",
			DescriptionIS: "Grísku borgríkin, stríð þeirra, heimspeki og listir, frá fornaldarskeiði til landvinninga Rómverja.",
			ParentID:      &antiquity.ID,
		},
		{
			Name:          "Roman Empire",
			NameIS:        "Rómaveldi",
			StartYear:     -753,
			EndYear:       476,
			Description:   "Rome from its legendary founding through the Republic and the Empire to the deposition of Romulus Augustulus.",
			DescriptionIS: "Róm frá stofnun samkvæmt goðsögninni, gegnum lýðveldið og keisaradæmið, til falls Rómulusar Ágústulusar.",
			ParentID:      &antiquity.ID,
		},
	}
	for i := range children {
		if err := findOrCreatePeriod(tx, &children[i]); err != nil {
			return err
		}
	}

	middleAges := model.HistoricalPeriod{
		Name:          "Middle Ages",
		NameIS:        "Miðaldir",
		StartYear:     476,
		EndYear:       1500,
		Description:   "Europe between the fall of Rome and the Renaissance, including the Viking age and the Icelandic Commonwealth.",
		DescriptionIS: "Evrópa milli falls Rómar og endurreisnarinnar, þar á meðal víkingaöldin og íslenska þjóðveldið.",
	}
	return findOrCreatePeriod(tx, &middleAges)
}

// findOrCreatePeriod matches on the Icelandic name, the natural key of the
// catalog.
func findOrCreatePeriod(tx *gorm.DB, p *model.HistoricalPeriod) error {
	return tx.Where(model.HistoricalPeriod{NameIS: p.NameIS}).FirstOrCreate(p).Error
}

func periodIDByNameIS(tx *gorm.DB, nameIS string) (uint, error) {
	var p model.HistoricalPeriod
	if err := tx.Where("name_is = ?", nameIS).First(&p).Error; err != nil {
		return 0, err
	}
	return p.ID, nil
}
