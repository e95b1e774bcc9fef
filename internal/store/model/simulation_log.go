package model

import "time"

const (
	ActionResultSuccess = "Success"
	ActionResultFailed  = "Failed"
)

// SimulationLog is an append-only audit row for simulation actions.
type SimulationLog struct {
	ID               uint      `gorm:"primaryKey;autoIncrement"`
	User             string    `gorm:"type:VARCHAR(255);index:simulation_logs_user_idx"`
	Action           string    `gorm:"not null;type:VARCHAR(255)"`
	ActionObject     string    `gorm:"type:VARCHAR(250)"`
	ActionObjectType string    `gorm:"type:VARCHAR(64)"`
	Dttm             time.Time `gorm:"not null;index:simulation_logs_dttm_idx"`
	Result           string    `gorm:"type:VARCHAR(32)"`
	Detail           *string
}

type SimulationLogList []SimulationLog
