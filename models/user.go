package models

import (
	"time"

	"github.com/lib/pq"
)

// User là tài khoản nhân viên/quản trị của hệ thống
type User struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Name          string          `gorm:"default:New User" json:"name"`
	Email         string          `gorm:"unique" json:"email"`
	Password      string          `json:"password"`
	IsVerified    bool            `gorm:"default:false" json:"is_verified"`
	Code          string          `json:"code"`
	CodeCreatedAt time.Time       `gorm:"autoCreateTime" json:"codeCreatedAt"`
	PhoneNumber   string          `gorm:"unique;type:varchar(11);not null" json:"phoneNumber"`
	Avatar        string          `json:"avatar"`
	Role          int             `gorm:"default:0" json:"role"` // 0: nhân viên, 1: super admin, 2: quản lý, 3: lễ tân
	Status        int             `gorm:"default:0" json:"status"`
	Gender        int             `json:"gender"`
	DateOfBirth   string          `gorm:"default:'01/01/2000'" json:"dateOfBirth"`
	AdminId       *uint           `json:"adminId,omitempty"`
	BranchIDs     pq.Int64Array   `json:"branch_ids" gorm:"type:integer[]"` // Các chi nhánh được phân công
	CheckIns      []CheckInRecord `json:"checkins" gorm:"foreignKey:UserID"`
}
