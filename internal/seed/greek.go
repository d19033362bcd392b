package seed

import (
	"gorm.io/gorm"

	"fornsaga-backend/internal/model"
)

func seedGreekContent(tx *gorm.DB) error {
	periodID, err := periodIDByNameIS(tx, "Forn-Grikkland")
	if err != nil {
		return err
	}

	civ := model.Civilization{
		Name:          "Ancient Greece",
		NameIS:        "Grikkland hið forna",
		StartYear:     -800,
		EndYear:       -146,
		Region:        "Aegean",
		Description:   "A civilization of independent city-states bound by language, religion and the panhellenic games.",
		DescriptionIS: "Menning sjálfstæðra borgríkja sem tengdust í gegnum tungumál, trú og alhellensku leikana.",
		PeriodID:      &periodID,
	}
	if err := tx.Where(model.Civilization{NameIS: civ.NameIS}).FirstOrCreate(&civ).Error; err != nil {
		return err
	}

	people := []model.Person{
		{
			Name:           "Alexander the Great",
			NameIS:         "Alexander mikli",
			BirthYear:      intp(-356),
			DeathYear:      intp(-323),
			Category:       model.PersonMilitary,
			CivilizationID: &civ.ID,
			PeriodID:       &periodID,
			Biography:      "King of Macedon who conquered the Persian Empire and spread Greek culture as far as India.",
			BiographyIS:    "Konungur Makedóníu sem lagði undir sig Persaveldi og breiddi gríska menningu allt til Indlands.",
			Achievements:   "Undefeated in battle; founded over twenty cities named Alexandria.",
			AchievementsIS: "Ósigraður í orrustu; stofnaði yfir tuttugu borgir sem báru nafnið Alexandría.",
		},
		{
			Name:           "Socrates",
			NameIS:         "Sókrates",
			BirthYear:      intp(-470),
			DeathYear:      intp(-399),
			Category:       model.PersonPhilosopher,
			CivilizationID: &civ.ID,
			PeriodID:       &periodID,
			Biography:      "Athenian philosopher who taught through questioning and was sentenced to death for impiety.",
			BiographyIS:    "Aþenskur heimspekingur sem kenndi með spurningum og var dæmdur til dauða fyrir guðlast.",
		},
		{
			Name:           "Pericles",
			NameIS:         "Períkles",
			BirthYear:      intp(-495),
			DeathYear:      intp(-429),
			Category:       model.PersonPolitical,
			CivilizationID: &civ.ID,
			PeriodID:       &periodID,
			Biography:      "Statesman who led Athens during its golden age and oversaw the building of the Parthenon.",
			BiographyIS:    "Stjórnmálamaður sem leiddi Aþenu á gullöld hennar og stóð fyrir byggingu Meyjarhofsins.",
		},
	}
	for i := range people {
		if err := tx.Where(model.Person{NameIS: people[i].NameIS}).FirstOrCreate(&people[i]).Error; err != nil {
			return err
		}
	}

	deities := []model.Deity{
		{
			Name:           "Zeus",
			NameIS:         "Seifur",
			CivilizationID: &civ.ID,
			Domain:         "King of the gods, god of sky and thunder",
			DomainIS:       "Konungur guðanna, guð himins og þrumu",
			Symbols:        "Thunderbolt, eagle, oak",
			SymbolsIS:      "Þruma, örn, eik",
			Mythology:      "Overthrew his father Cronus and divided the world with his brothers Poseidon and Hades.",
			MythologyIS:    "Steypti föður sínum Krónosi af stóli og skipti heiminum með bræðrum sínum Póseidon og Hades.",
		},
		{
			Name:           "Athena",
			NameIS:         "Aþena",
			CivilizationID: &civ.ID,
			Domain:         "Goddess of wisdom and war",
			DomainIS:       "Gyðja visku og hernaðar",
			Symbols:        "Owl, olive tree, aegis",
			SymbolsIS:      "Ugla, ólífutré, ægisskjöldur",
			Mythology:      "Sprang fully armed from the head of Zeus and became the patron of Athens.",
			MythologyIS:    "Spratt alvopnuð úr höfði Seifs og varð verndari Aþenu.",
		},
	}
	for i := range deities {
		if err := tx.Where(model.Deity{NameIS: deities[i].NameIS}).FirstOrCreate(&deities[i]).Error; err != nil {
			return err
		}
	}

	battles := []model.Battle{
		{
			Name:           "Battle of Marathon",
			NameIS:         "Orrustan við Maraþon",
			Year:           -490,
			Location:       "Marathon, Attica",
			PeriodID:       &periodID,
			Description:    "The Athenians repelled the first Persian invasion of Greece.",
			DescriptionIS:  "Aþeningar hrundu fyrstu innrás Persa í Grikkland.",
			Outcome:        "Decisive Athenian victory",
			OutcomeIS:      "Afgerandi sigur Aþeninga",
			Significance:   "Proved the hoplite phalanx could defeat the Persian army.",
			SignificanceIS: "Sannaði að gríska fylkingin gat sigrað persneska herinn.",
		},
		{
			Name:           "Battle of Salamis",
			NameIS:         "Orrustan við Salamis",
			Year:           -480,
			Location:       "Straits of Salamis",
			PeriodID:       &periodID,
			Description:    "The Greek fleet lured the Persian navy into narrow waters and destroyed it.",
			DescriptionIS:  "Gríski flotinn lokkaði persneska flotann inn í þröng sund og gjöreyddi honum.",
			Outcome:        "Decisive Greek victory",
			OutcomeIS:      "Afgerandi sigur Grikkja",
			Significance:   "Turning point of the second Persian invasion.",
			SignificanceIS: "Vendipunktur seinni innrásar Persa.",
		},
	}
	for i := range battles {
		if err := tx.Where(model.Battle{NameIS: battles[i].NameIS}).FirstOrCreate(&battles[i]).Error; err != nil {
			return err
		}
	}

	topics := []model.CulturalTopic{
		{
			Title:          "Democracy in Athens",
			TitleIS:        "Lýðræði í Aþenu",
			Category:       model.TopicSocialClasses,
			CivilizationID: &civ.ID,
			PeriodID:       &periodID,
			Content:        "Free adult male citizens voted directly in the assembly; offices were filled by lot.",
			ContentIS:      "Frjálsir fullorðnir karlkyns borgarar kusu beint á þjóðfundinum; embætti voru skipuð með hlutkesti.",
		},
		{
			Title:          "The Olympic Games",
			TitleIS:        "Ólympíuleikarnir",
			Category:       model.TopicDailyLife,
			CivilizationID: &civ.ID,
			PeriodID:       &periodID,
			Content:        "Held every four years at Olympia in honour of Zeus; wars paused under the sacred truce.",
			ContentIS:      "Haldnir á fjögurra ára fresti í Ólympíu til heiðurs Seifi; stríð lágu niðri meðan á helgu vopnahléi stóð.",
		},
	}
	for i := range topics {
		if err := tx.Where(model.CulturalTopic{TitleIS: topics[i].TitleIS}).FirstOrCreate(&topics[i]).Error; err != nil {
			return err
		}
	}

	events := []model.TimelineEvent{
		{
			Title:          "First Olympic Games",
			TitleIS:        "Fyrstu Ólympíuleikarnir",
			Description:    "Traditional date of the first recorded games at Olympia.",
			DescriptionIS:  "Hefðbundið ártal fyrstu skráðu leikanna í Ólympíu.",
			DateStart:      -776,
			PeriodID:       &periodID,
			CivilizationID: &civ.ID,
			Region:         "Peloponnese",
			Category:       model.EventCultural,
			Importance:     4,
			Latitude:       floatp(37.6383),
			Longitude:      floatp(21.6300),
		},
		{
			Title:          "Golden age of Athens",
			TitleIS:        "Gullöld Aþenu",
			Description:    "Periclean Athens dominates Greek art, drama and philosophy.",
			DescriptionIS:  "Aþena Períklesar ræður ríkjum í grískri list, leiklist og heimspeki.",
			DateStart:      -461,
			DateEnd:        intp(-429),
			PeriodID:       &periodID,
			CivilizationID: &civ.ID,
			Region:         "Attica",
			Category:       model.EventCultural,
			Importance:     5,
			Latitude:       floatp(37.9715),
			Longitude:      floatp(23.7267),
		},
		{
			Title:          "Death of Alexander the Great",
			TitleIS:        "Dauði Alexanders mikla",
			Description:    "Alexander dies in Babylon and his empire fractures among the Diadochi.",
			DescriptionIS:  "Alexander deyr í Babýlon og ríki hans skiptist milli eftirmannanna.",
			DateStart:      -323,
			PeriodID:       &periodID,
			CivilizationID: &civ.ID,
			Region:         "Mesopotamia",
			Category:       model.EventPolitical,
			Importance:     5,
			Latitude:       floatp(32.5355),
			Longitude:      floatp(44.4275),
		},
	}
	for i := range events {
		if err := tx.Where(model.TimelineEvent{TitleIS: events[i].TitleIS}).FirstOrCreate(&events[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// Raw quiz text in the bundled authoring format: a question line followed by
// four option lines, the correct one marked with a check mark.
const greekQuizText = `Hvenær hófst blómatími mínóskrar menningar á Krít?
a) Um 2000 f.Kr. ✓
b) Um 1000 f.Kr.
c) Um 500 f.Kr.
d) Um 3000 e.Kr.

Hvaða borgríki var þekkt fyrir herskáa uppeldishætti?
a) Aþena
b) Sparta ✓
c) Kórinta
d) Þeba

Hver kenndi Alexander mikla heimspeki?
a) Sókrates
b) Platon
c) Aristóteles ✓
d) Pýþagóras

Í hvaða orrustu sigruðu Aþeningar fyrstu innrás Persa?
a) Orrustunni við Salamis
b) Orrustunni við Maraþon ✓
c) Orrustunni við Laugaskarð
d) Orrustunni við Plataju

Hvaða gyðja var verndari Aþenu?
a) Hera
b) Artemis
c) Afródíta
d) Aþena ✓

Hvað kallaðist samkoma atkvæðisbærra borgara í Aþenu?
a) Þjóðfundurinn ✓
b) Öldungaráðið
c) Fimmhundraðráðið
d) Areopagus`

func seedGreekQuiz(tx *gorm.DB) error {
	periodID, err := periodIDByNameIS(tx, "Forn-Grikkland")
	if err != nil {
		return err
	}
	return seedQuizFromText(tx, quizSpec{
		Title:         "Ancient Greece",
		TitleIS:       "Forn-Grikkland",
		Description:   "Multiple choice questions on Greek history, from Crete to Alexander.",
		DescriptionIS: "Krossaspurningar um gríska sögu, frá Krít til Alexanders.",
		QuizType:      model.QuizByPeriod,
		PeriodID:      &periodID,
		Difficulty:    2,
		RawText:       greekQuizText,
	})
}

func intp(v int) *int { return &v }

func floatp(v float64) *float64 { return &v }
