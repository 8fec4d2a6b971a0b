package models

import "time"

type Branch struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Status    int       `json:"status" gorm:"default:1"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type Floor struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	BranchID uint   `json:"branchId" gorm:"index"`
	Name     string `json:"name"`
}

type RoomType struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"basePrice"`
	People    int     `json:"people"`
}
