package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type Room struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	BranchID     uint            `json:"branchId" gorm:"index"`
	FloorID      uint            `json:"floorId" gorm:"index"`
	RoomTypeID   uint            `json:"roomTypeId" gorm:"index"`
	RoomName     string          `json:"roomName"`
	Price        float64         `json:"price"` // Giá mỗi đêm
	Status       int             `json:"status" gorm:"default:0"`
	Description  string          `json:"description"`
	Avatar       string          `json:"avatar"`
	Img          json.RawMessage `json:"img" gorm:"type:json"`
	NumBed       int             `json:"numBed"`
	People       int             `json:"people"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Branch       Branch          `json:"branch" gorm:"foreignKey:BranchID"`
	Floor        Floor           `json:"floor" gorm:"foreignKey:FloorID"`
	RoomType     RoomType        `json:"roomType" gorm:"foreignKey:RoomTypeID"`
	RoomStatuses []RoomStatus    `gorm:"foreignKey:RoomID"`
}

func (r *Room) ValidateStatus() error {
	if r.Status < 0 || r.Status > 3 {
		return fmt.Errorf("invalid status: %d, must be between 0 and 3", r.Status)
	}
	return nil
}
