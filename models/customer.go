package models

import "time"

type Customer struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name"`
	Email          string    `json:"email" gorm:"index"`
	PhoneNumber    string    `json:"phoneNumber" gorm:"index;type:varchar(11)"`
	Gender         int       `json:"gender"`
	DateOfBirth    string    `gorm:"default:'01/01/2000'" json:"dateOfBirth"`
	Address        string    `json:"address"`
	IdentityNumber string    `json:"identityNumber"` // CCCD/hộ chiếu
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
