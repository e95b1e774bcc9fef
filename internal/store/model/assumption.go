package model

import (
	"encoding/json"
	"time"
)

type AssumptionStatus string

const (
	AssumptionStatusProcessing AssumptionStatus = "Processing"
	AssumptionStatusSuccess    AssumptionStatus = "Success"
	AssumptionStatusError      AssumptionStatus = "Error"
)

func (s AssumptionStatus) Valid() bool {
	switch s {
	case AssumptionStatusProcessing, AssumptionStatusSuccess, AssumptionStatusError:
		return true
	default:
		return false
	}
}

// Terminal reports whether the worker is done with the job.
func (s AssumptionStatus) Terminal() bool {
	return s == AssumptionStatusSuccess || s == AssumptionStatusError
}

// Assumption is the record of one assumption-processing job, keyed by name.
type Assumption struct {
	Name         string           `gorm:"primaryKey;column:name;type:VARCHAR(250);"`
	Status       AssumptionStatus `gorm:"not null;type:VARCHAR(32);index:assumptions_status_idx"`
	StatusDetail *string
	DownloadLink *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Values       []AssumptionValue `gorm:"foreignKey:AssumptionName;references:Name;constraint:OnDelete:CASCADE;" json:"-"`
}

type AssumptionList []Assumption

func (a Assumption) String() string {
	val, _ := json.Marshal(a)
	return string(val)
}

// AssumptionValue is one numeric cell of a processed assumption workbook.
type AssumptionValue struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"`
	AssumptionName string `gorm:"not null;type:VARCHAR(250);index:assumption_values_name_idx"`
	Sheet          string `gorm:"not null"`
	Parameter      string `gorm:"not null"`
	Period         string `gorm:"not null"`
	Value          float64
}
