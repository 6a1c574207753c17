package models

import (
	"gorm.io/gorm"
)

// StatusChange is an audit row written every time the admin surface moves an
// intake record to a new status. There is no state machine on top of it: any
// status can be written at any time and the latest write wins.
type StatusChange struct {
	gorm.Model
	Kind        string `json:"kind"`
	RecordID    uint   `json:"record_id"`
	OldStatus   int    `json:"old_status"`
	NewStatus   int    `json:"new_status"`
	ChangedByID uint   `json:"changed_by_id"`
}
