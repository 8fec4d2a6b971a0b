package models

import "time"

// CheckInRecord chấm công nhân viên theo ngày
type CheckInRecord struct {
	ID     uint      `gorm:"primaryKey"`
	UserID uint      `gorm:"index;not null"`
	Date   time.Time `gorm:"not null"`
}
