package models

import "time"

// RoomStatus ghi nhận một khoảng ngày phòng không khả dụng
// (đã đặt, đang dọn dẹp hoặc bảo trì)
type RoomStatus struct {
	ID        uint      `gorm:"primaryKey"`
	RoomID    uint      `gorm:"index"`
	BookingID *uint     `gorm:"index"` // null với khoảng dọn dẹp/bảo trì
	FromDate  time.Time `gorm:"index"`
	ToDate    time.Time `gorm:"index"`
	Status    int
	Reason    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
