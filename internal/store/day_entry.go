package store

import (
	"time"

	"github.com/selene-app/selene/internal/models"
)

// DayEntry is the sqlite row shape for one day of observations. The date is
// unique: a re-recorded day updates its row in place, so a range load never
// sees duplicates. Every column besides the date is nullable so that "not
// recorded" survives the round trip as nil instead of collapsing to a zero
// value.
type DayEntry struct {
	ID   uint      `gorm:"primaryKey"`
	Date time.Time `gorm:"type:date;not null;uniqueIndex"`

	Flow             *string
	Discharge        *string
	BowelChanges     *string
	Mood             *string
	Energy           *string
	Anxiety          *string
	Concentration    *string
	SexDrive         *string
	PhysicalActivity *string
	Nutrition        *string
	WaterIntake      *string
	Alcohol          *string
	Medication       *string
	SexualActivity   *string

	Cramps           *bool
	Bloating         *bool
	BreastTenderness *bool
	Headaches        *bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (entry DayEntry) toRecord() models.SymptomRecord {
	return models.SymptomRecord{
		Date:             entry.Date,
		Flow:             entry.Flow,
		Discharge:        entry.Discharge,
		BowelChanges:     entry.BowelChanges,
		Mood:             entry.Mood,
		Energy:           entry.Energy,
		Anxiety:          entry.Anxiety,
		Concentration:    entry.Concentration,
		SexDrive:         entry.SexDrive,
		PhysicalActivity: entry.PhysicalActivity,
		Nutrition:        entry.Nutrition,
		WaterIntake:      entry.WaterIntake,
		Alcohol:          entry.Alcohol,
		Medication:       entry.Medication,
		SexualActivity:   entry.SexualActivity,
		Cramps:           entry.Cramps,
		Bloating:         entry.Bloating,
		BreastTenderness: entry.BreastTenderness,
		Headaches:        entry.Headaches,
	}
}
