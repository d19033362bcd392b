package seed

import (
	"gorm.io/gorm"

	"fornsaga-backend/internal/model"
)

func seedMiddleAgesContent(tx *gorm.DB) error {
	periodID, err := periodIDByNameIS(tx, "Miðaldir")
	if err != nil {
		return err
	}

	civ := model.Civilization{
		Name:          "Norse world",
		NameIS:        "Norræni heimurinn",
		StartYear:     793,
		EndYear:       1066,
		Region:        "Scandinavia and the North Atlantic",
		Description:   "Seafaring societies that raided, traded and settled from Newfoundland to the Volga.",
		DescriptionIS: "Sjófarandi samfélög sem rændu, versluðu og námu land frá Nýfundnalandi til Volgu.",
		PeriodID:      &periodID,
	}
	if err := tx.Where(model.Civilization{NameIS: civ.NameIS}).FirstOrCreate(&civ).Error; err != nil {
		return err
	}

	people := []model.Person{
		{
			Name:           "Charlemagne",
			NameIS:         "Karlamagnús",
			BirthYear:      intp(748),
			DeathYear:      intp(814),
			Category:       model.PersonRuler,
			PeriodID:       &periodID,
			Biography:      "King of the Franks, crowned emperor by the pope in 800, uniting much of western Europe.",
			BiographyIS:    "Konungur Frakka, krýndur keisari af páfa árið 800, sameinaði stóran hluta Vestur-Evrópu.",
		},
		{
			Name:           "Ingólfr Arnarson",
			NameIS:         "Ingólfur Arnarson",
			Category:       model.PersonOther,
			CivilizationID: &civ.ID,
			PeriodID:       &periodID,
			Biography:      "According to Landnámabók the first permanent settler of Iceland, around 874.",
			BiographyIS:    "Samkvæmt Landnámabók fyrsti landnámsmaður Íslands, um árið 874.",
		},
		{
			Name:           "Snorri Sturluson",
			NameIS:         "Snorri Sturluson",
			BirthYear:      intp(1179),
			DeathYear:      intp(1241),
			Category:       model.PersonArtist,
			CivilizationID: &civ.ID,
			PeriodID:       &periodID,
			Biography:      "Icelandic chieftain and author of the Prose Edda and Heimskringla.",
			BiographyIS:    "Íslenskur höfðingi og höfundur Snorra-Eddu og Heimskringlu.",
			Achievements:   "Preserved Norse mythology for posterity.",
			AchievementsIS: "Varðveitti norræna goðafræði fyrir komandi kynslóðir.",
		},
	}
	for i := range people {
		if err := tx.Where(model.Person{NameIS: people[i].NameIS}).FirstOrCreate(&people[i]).Error; err != nil {
			return err
		}
	}

	deities := []model.Deity{
		{
			Name:           "Odin",
			NameIS:         "Óðinn",
			CivilizationID: &civ.ID,
			Domain:         "God of wisdom, war and poetry",
			DomainIS:       "Guð visku, hernaðar og skáldskapar",
			Symbols:        "Spear Gungnir, ravens Huginn and Muninn",
			SymbolsIS:      "Spjótið Gungnir, hrafnarnir Huginn og Muninn",
			Mythology:      "Sacrificed an eye at Mímir's well and hung nine nights on Yggdrasil for the runes.",
			MythologyIS:    "Fórnaði auga í Mímisbrunni og hékk níu nætur á Yggdrasili til að öðlast rúnirnar.",
		},
		{
			Name:           "Thor",
			NameIS:         "Þór",
			CivilizationID: &civ.ID,
			Domain:         "God of thunder and protector of mankind",
			DomainIS:       "Guð þrumunnar og verndari manna",
			Symbols:        "Hammer Mjölnir, goats",
			SymbolsIS:      "Hamarinn Mjölnir, hafrar",
			Mythology:      "Defender of Asgard against the giants; his hammer returns when thrown.",
			MythologyIS:    "Verndari Ásgarðs gegn jötnum; hamar hans snýr aftur þegar honum er kastað.",
		},
	}
	for i := range deities {
		if err := tx.Where(model.Deity{NameIS: deities[i].NameIS}).FirstOrCreate(&deities[i]).Error; err != nil {
			return err
		}
	}

	battles := []model.Battle{
		{
			Name:           "Battle of Hastings",
			NameIS:         "Orrustan við Hastings",
			Year:           1066,
			Location:       "Hastings, England",
			PeriodID:       &periodID,
			Description:    "William of Normandy defeated King Harold and conquered England.",
			DescriptionIS:  "Vilhjálmur af Normandí sigraði Harald konung og lagði England undir sig.",
			Outcome:        "Norman victory",
			OutcomeIS:      "Sigur Normanna",
			Significance:   "Ended Anglo-Saxon rule in England.",
			SignificanceIS: "Batt enda á veldi Engilsaxa í Englandi.",
		},
	}
	for i := range battles {
		if err := tx.Where(model.Battle{NameIS: battles[i].NameIS}).FirstOrCreate(&battles[i]).Error; err != nil {
			return err
		}
	}

	topics := []model.CulturalTopic{
		{
			Title:          "The Icelandic Commonwealth",
			TitleIS:        "Þjóðveldið",
			Category:       model.TopicSocialClasses,
			CivilizationID: &civ.ID,
			PeriodID:       &periodID,
			Content:        "Iceland was governed without a king from 930 to 1262 through the Althing and local chieftains.",
			ContentIS:      "Íslandi var stjórnað án konungs frá 930 til 1262 í gegnum Alþingi og goðorðsmenn.",
		},
		{
			Title:          "The sagas",
			TitleIS:        "Íslendingasögurnar",
			Category:       model.TopicLiterature,
			CivilizationID: &civ.ID,
			PeriodID:       &periodID,
			Content:        "Prose narratives of the settlement families, written down in the 13th and 14th centuries.",
			ContentIS:      "Frásagnir í lausu máli um landnámsættirnar, skráðar á 13. og 14. öld.",
		},
	}
	for i := range topics {
		if err := tx.Where(model.CulturalTopic{TitleIS: topics[i].TitleIS}).FirstOrCreate(&topics[i]).Error; err != nil {
			return err
		}
	}

	events := []model.TimelineEvent{
		{
			Title:          "Raid on Lindisfarne",
			TitleIS:        "Árásin á Lindisfarne",
			Description:    "The raid on the Lindisfarne monastery, conventional start of the Viking age.",
			DescriptionIS:  "Árásin á klaustrið í Lindisfarne, hefðbundið upphaf víkingaaldar.",
			DateStart:      793,
			PeriodID:       &periodID,
			CivilizationID: &civ.ID,
			Region:         "Northumbria",
			Category:       model.EventMilitary,
			Importance:     4,
			Latitude:       floatp(55.6809),
			Longitude:      floatp(-1.8016),
		},
		{
			Title:          "Settlement of Iceland",
			TitleIS:        "Landnám Íslands",
			Description:    "Ingólfr Arnarson settles at Reykjavík.",
			DescriptionIS:  "Ingólfur Arnarson nemur land í Reykjavík.",
			DateStart:      874,
			PeriodID:       &periodID,
			CivilizationID: &civ.ID,
			Region:         "Iceland",
			Category:       model.EventPolitical,
			Importance:     5,
			Latitude:       floatp(64.1466),
			Longitude:      floatp(-21.9426),
		},
		{
			Title:          "Founding of the Althing",
			TitleIS:        "Stofnun Alþingis",
			Description:    "The general assembly convenes at Þingvellir for the first time.",
			DescriptionIS:  "Allsherjarþingið kemur saman á Þingvöllum í fyrsta sinn.",
			DateStart:      930,
			PeriodID:       &periodID,
			CivilizationID: &civ.ID,
			Region:         "Iceland",
			Category:       model.EventPolitical,
			Importance:     5,
			Latitude:       floatp(64.2559),
			Longitude:      floatp(-21.1295),
		},
	}
	for i := range events {
		if err := tx.Where(model.TimelineEvent{TitleIS: events[i].TitleIS}).FirstOrCreate(&events[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

const middleAgesQuizText = `Hvaða atburður markar að jafnaði upphaf víkingaaldar?
a) Stofnun Alþingis
b) Árásin á Lindisfarne ✓
c) Orrustan við Hastings
d) Krýning Karlamagnúsar

Hvenær var Alþingi stofnað á Þingvöllum?
a) Árið 874
b) Árið 930 ✓
c) Árið 1000
d) Árið 1262

Hver var fyrsti landnámsmaður Íslands samkvæmt Landnámabók?
a) Hrafna-Flóki
b) Garðar Svavarsson
c) Ingólfur Arnarson ✓
d) Naddoddur

Hver ritaði Snorra-Eddu?
a) Ari fróði
b) Sæmundur fróði
c) Sturla Þórðarson
d) Snorri Sturluson ✓

Hvenær var Karlamagnús krýndur keisari?
a) Árið 800 ✓
b) Árið 793
c) Árið 843
d) Árið 1066`

func seedMiddleAgesQuiz(tx *gorm.DB) error {
	periodID, err := periodIDByNameIS(tx, "Miðaldir")
	if err != nil {
		return err
	}
	return seedQuizFromText(tx, quizSpec{
		Title:         "The Middle Ages",
		TitleIS:       "Miðaldir",
		Description:   "Multiple choice questions on the Viking age and medieval Iceland.",
		DescriptionIS: "Krossaspurningar um víkingaöldina og Ísland á miðöldum.",
		QuizType:      model.QuizByPeriod,
		PeriodID:      &periodID,
		Difficulty:    2,
		RawText:       middleAgesQuizText,
	})
}
