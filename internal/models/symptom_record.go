package models

import (
	"strings"
	"time"
)

const (
	FlowNone     = "none"
	FlowSpotting = "spotting"
	FlowLight    = "light"
	FlowMedium   = "medium"
	FlowHeavy    = "heavy"
)

const DateLayout = "2006-01-02"

// SymptomRecord is one day of observations. Every field besides Date is
// independently optional: nil means "not recorded", never "recorded as
// absent". Records are rebuilt from the observation source on every load and
// are not mutated afterwards.
type SymptomRecord struct {
	Date time.Time `json:"date"`

	Flow             *string `json:"flow,omitempty"`
	Discharge        *string `json:"discharge,omitempty"`
	BowelChanges     *string `json:"bowel_changes,omitempty"`
	Mood             *string `json:"mood,omitempty"`
	Energy           *string `json:"energy,omitempty"`
	Anxiety          *string `json:"anxiety,omitempty"`
	Concentration    *string `json:"concentration,omitempty"`
	SexDrive         *string `json:"sex_drive,omitempty"`
	PhysicalActivity *string `json:"physical_activity,omitempty"`
	Nutrition        *string `json:"nutrition,omitempty"`
	WaterIntake      *string `json:"water_intake,omitempty"`
	Alcohol          *string `json:"alcohol,omitempty"`
	Medication       *string `json:"medication,omitempty"`
	SexualActivity   *string `json:"sexual_activity,omitempty"`

	Cramps           *bool `json:"cramps,omitempty"`
	Bloating         *bool `json:"bloating,omitempty"`
	BreastTenderness *bool `json:"breast_tenderness,omitempty"`
	Headaches        *bool `json:"headaches,omitempty"`
}

// IsPeriodDay reports whether this record documents actual bleeding: a
// recorded flow whose value is not "none" in any casing. Every component that
// needs to know "a period occurred on this date" must go through this
// predicate rather than reading Flow directly.
func (record SymptomRecord) IsPeriodDay() bool {
	if record.Flow == nil {
		return false
	}
	return !strings.EqualFold(strings.TrimSpace(*record.Flow), FlowNone)
}

// HasData reports whether anything at all was recorded for the day.
func (record SymptomRecord) HasData() bool {
	for _, value := range []*string{
		record.Flow, record.Discharge, record.BowelChanges, record.Mood,
		record.Energy, record.Anxiety, record.Concentration, record.SexDrive,
		record.PhysicalActivity, record.Nutrition, record.WaterIntake,
		record.Alcohol, record.Medication, record.SexualActivity,
	} {
		if value != nil && strings.TrimSpace(*value) != "" {
			return true
		}
	}
	for _, flag := range []*bool{
		record.Cramps, record.Bloating, record.BreastTenderness, record.Headaches,
	} {
		if flag != nil {
			return true
		}
	}
	return false
}
