package seed

import (
	"gorm.io/gorm"

	"fornsaga-backend/internal/model"
)

func seedRomanContent(tx *gorm.DB) error {
	periodID, err := periodIDByNameIS(tx, "Rómaveldi")
	if err != nil {
		return err
	}

	civ := model.Civilization{
		Name:          "Ancient Rome",
		NameIS:        "Róm hin forna",
		StartYear:     -753,
		EndYear:       476,
		Region:        "Mediterranean",
		Description:   "From a city on the Tiber to an empire spanning three continents.",
		DescriptionIS: "Frá borg við Tíber til heimsveldis sem náði yfir þrjár heimsálfur.",
		PeriodID:      &periodID,
	}
	if err := tx.Where(model.Civilization{NameIS: civ.NameIS}).FirstOrCreate(&civ).Error; err != nil {
		return err
	}

	people := []model.Person{
		{
			Name:           "Julius Caesar",
			NameIS:         "Júlíus Caesar",
			BirthYear:      intp(-100),
			DeathYear:      intp(-44),
			Category:       model.PersonMilitary,
			CivilizationID: &civ.ID,
			PeriodID:       &periodID,
			Biography:      "General and dictator whose conquest of Gaul and civil war ended the Republic.",
			BiographyIS:    "Herforingi og einræðisherra; landvinningar hans í Gallíu og borgarastríð bundu enda á lýðveldið.",
			Achievements:   "Conquered Gaul; reformed the calendar.",
			AchievementsIS: "Lagði undir sig Gallíu; endurbætti tímatalið.",
		},
		{
			Name:           "Augustus",
			NameIS:         "Ágústus",
			BirthYear:      intp(-63),
			DeathYear:      intp(14),
			Category:       model.PersonRuler,
			CivilizationID: &civ.ID,
			PeriodID:       &periodID,
			Biography:      "First Roman emperor, who ended a century of civil war and began the Pax Romana.",
			BiographyIS:    "Fyrsti keisari Rómar, sem batt enda á aldarlangt borgarastríð og hóf rómverska friðinn.",
		},
		{
			Name:           "Cicero",
			NameIS:         "Síseró",
			BirthYear:      intp(-106),
			DeathYear:      intp(-43),
			Category:       model.PersonPolitical,
			CivilizationID: &civ.ID,
			PeriodID:       &periodID,
			Biography:      "Orator and statesman whose speeches and letters shaped Latin prose.",
			BiographyIS:    "Ræðumaður og stjórnmálamaður; ræður hans og bréf mótuðu latneskt ritmál.",
		},
	}
	for i := range people {
		if err := tx.Where(model.Person{NameIS: people[i].NameIS}).FirstOrCreate(&people[i]).Error; err != nil {
			return err
		}
	}

	deities := []model.Deity{
		{
			Name:           "Jupiter",
			NameIS:         "Júpíter",
			CivilizationID: &civ.ID,
			Domain:         "King of the gods, god of sky and thunder",
			DomainIS:       "Konungur guðanna, guð himins og þrumu",
			Symbols:        "Thunderbolt, eagle",
			SymbolsIS:      "Þruma, örn",
			Mythology:      "Roman counterpart of Zeus, worshipped on the Capitoline hill.",
			MythologyIS:    "Rómversk hliðstæða Seifs, tilbeðinn á Kapítólhæð.",
		},
		{
			Name:           "Mars",
			NameIS:         "Mars",
			CivilizationID: &civ.ID,
			Domain:         "God of war",
			DomainIS:       "Guð hernaðar",
			Symbols:        "Spear, shield, wolf",
			SymbolsIS:      "Spjót, skjöldur, úlfur",
			Mythology:      "Father of Romulus and Remus, second only to Jupiter in the Roman pantheon.",
			MythologyIS:    "Faðir Rómulusar og Remusar, næstæðstur á eftir Júpíter í rómverska goðheiminum.",
		},
	}
	for i := range deities {
		if err := tx.Where(model.Deity{NameIS: deities[i].NameIS}).FirstOrCreate(&deities[i]).Error; err != nil {
			return err
		}
	}

	battles := []model.Battle{
		{
			Name:           "Battle of Cannae",
			NameIS:         "Orrustan við Cannae",
			Year:           -216,
			Location:       "Cannae, Apulia",
			PeriodID:       &periodID,
			Description:    "Hannibal encircled and destroyed a far larger Roman army.",
			DescriptionIS:  "Hannibal umkringdi og gjöreyddi mun stærri rómverskum her.",
			Outcome:        "Carthaginian victory",
			OutcomeIS:      "Sigur Karþagómanna",
			Significance:   "Still studied as the classic double envelopment.",
			SignificanceIS: "Enn rannsökuð sem klassískt dæmi um tvöfalda umkringingu.",
		},
		{
			Name:           "Battle of Actium",
			NameIS:         "Orrustan við Actium",
			Year:           -31,
			Location:       "Ionian Sea, off Actium",
			PeriodID:       &periodID,
			Description:    "Octavian's fleet defeated Antony and Cleopatra.",
			DescriptionIS:  "Floti Oktavíanusar sigraði Antóníus og Kleópötru.",
			Outcome:        "Decisive victory for Octavian",
			OutcomeIS:      "Afgerandi sigur Oktavíanusar",
			Significance:   "Left Octavian sole master of the Roman world.",
			SignificanceIS: "Gerði Oktavíanus að einvaldi rómverska heimsins.",
		},
	}
	for i := range battles {
		if err := tx.Where(model.Battle{NameIS: battles[i].NameIS}).FirstOrCreate(&battles[i]).Error; err != nil {
			return err
		}
	}

	topics := []model.CulturalTopic{
		{
			Title:          "Roman roads",
			TitleIS:        "Rómverskir vegir",
			Category:       model.TopicTrade,
			CivilizationID: &civ.ID,
			PeriodID:       &periodID,
			Content:        "A paved network of some 80,000 km moved legions, post and trade across the empire.",
			ContentIS:      "Um 80.000 km net steinlagðra vega flutti hersveitir, póst og verslun um allt heimsveldið.",
		},
		{
			Title:          "Bread and circuses",
			TitleIS:        "Brauð og leikar",
			Category:       model.TopicDailyLife,
			CivilizationID: &civ.ID,
			PeriodID:       &periodID,
			Content:        "Free grain and public games kept the urban populace content.",
			ContentIS:      "Ókeypis korn og opinberir leikar héldu borgarbúum ánægðum.",
		},
	}
	for i := range topics {
		if err := tx.Where(model.CulturalTopic{TitleIS: topics[i].TitleIS}).FirstOrCreate(&topics[i]).Error; err != nil {
			return err
		}
	}

	events := []model.TimelineEvent{
		{
			Title:          "Founding of Rome",
			TitleIS:        "Stofnun Rómar",
			Description:    "Traditional date of the founding of Rome by Romulus.",
			DescriptionIS:  "Hefðbundið ártal stofnunar Rómar af Rómulusi.",
			DateStart:      -753,
			PeriodID:       &periodID,
			CivilizationID: &civ.ID,
			Region:         "Latium",
			Category:       model.EventPolitical,
			Importance:     5,
			Latitude:       floatp(41.8902),
			Longitude:      floatp(12.4922),
		},
		{
			Title:          "Assassination of Caesar",
			TitleIS:        "Morðið á Caesari",
			Description:    "Caesar is stabbed in the senate on the Ides of March.",
			DescriptionIS:  "Caesar er stunginn til bana í öldungaráðinu á hinum íðnu mars.",
			DateStart:      -44,
			PeriodID:       &periodID,
			CivilizationID: &civ.ID,
			Region:         "Latium",
			Category:       model.EventPolitical,
			Importance:     5,
			Latitude:       floatp(41.8955),
			Longitude:      floatp(12.4769),
		},
		{
			Title:          "Fall of the Western Empire",
			TitleIS:        "Fall Vestrómverska ríkisins",
			Description:    "Odoacer deposes Romulus Augustulus, the conventional end of antiquity.",
			DescriptionIS:  "Ódóaker steypir Rómulusi Ágústulusi af stóli; hefðbundin lok fornaldar.",
			DateStart:      476,
			PeriodID:       &periodID,
			CivilizationID: &civ.ID,
			Region:         "Italy",
			Category:       model.EventPolitical,
			Importance:     5,
			Latitude:       floatp(44.4184),
			Longitude:      floatp(12.2035),
		},
	}
	for i := range events {
		if err := tx.Where(model.TimelineEvent{TitleIS: events[i].TitleIS}).FirstOrCreate(&events[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
