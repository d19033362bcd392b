// Package seed loads the reference catalog and the bundled quizzes into the
// database. Every dataset runs inside a single transaction and can be re-run
// safely: rows are matched on their natural keys before insertion.
package seed

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"fornsaga-backend/internal/apperrors"
	"fornsaga-backend/internal/db"
	logger "fornsaga-backend/pkg/logging"
)

// Dataset is one self-contained seeding unit, addressable by name.
type Dataset struct {
	Name string
	Run  func(tx *gorm.DB) error
}

// Ordered so that "all" loads periods before the content that references them.
func datasets() []Dataset {
	return []Dataset{
		{Name: "periods", Run: seedPeriods},
		{Name: "greek-content", Run: seedGreekContent},
		{Name: "roman-content", Run: seedRomanContent},
		{Name: "middleages-content", Run: seedMiddleAgesContent},
		{Name: "achievements", Run: seedAchievements},
		{Name: "greek-quiz", Run: seedGreekQuiz},
		{Name: "middleages-quiz", Run: seedMiddleAgesQuiz},
	}
}

// Names lists the valid dataset names, in load order.
func Names() []string {
	ds := datasets()
	names := make([]string, 0, len(ds)+1)
	for _, d := range ds {
		names = append(names, d.Name)
	}
	return append(names, "all")
}

// Run executes the named datasets, each in its own transaction. "all" expands
// to every dataset in load order.
func Run(names []string) error {
	selected, err := resolve(names)
	if err != nil {
		return err
	}
	for _, d := range selected {
		logger.Info("seeding dataset %s", d.Name)
		if err := db.Transaction(d.Run); err != nil {
			return fmt.Errorf("dataset %s: %w", d.Name, err)
		}
	}
	return nil
}

func resolve(names []string) ([]Dataset, error) {
	all := datasets()
	if len(names) == 1 && names[0] == "all" {
		return all, nil
	}
	byName := make(map[string]Dataset, len(all))
	for _, d := range all {
		byName[d.Name] = d
	}
	var selected []Dataset
	for _, name := range names {
		d, ok := byName[name]
		if !ok {
			return nil, apperrors.Validationf("unknown dataset %q (valid: %s)", name, strings.Join(Names(), ", "))
		}
		selected = append(selected, d)
	}
	return selected, nil
}
