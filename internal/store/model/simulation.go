package model

import (
	"encoding/json"
	"time"
)

const SimulationStatusCreated = "Created"

type Simulation struct {
	ID             uint        `gorm:"primaryKey;autoIncrement"`
	RunID          string      `gorm:"not null;uniqueIndex:simulations_run_id_idx;type:VARCHAR(64)"`
	Name           string      `gorm:"not null;type:VARCHAR(250)"`
	AssumptionName *string     `gorm:"type:VARCHAR(250)"`
	Assumption     *Assumption `gorm:"foreignKey:AssumptionName;references:Name;constraint:OnDelete:SET NULL;" json:"-"`
	Status         string      `gorm:"not null;type:VARCHAR(32)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type SimulationList []Simulation

func (s Simulation) String() string {
	val, _ := json.Marshal(s)
	return string(val)
}
