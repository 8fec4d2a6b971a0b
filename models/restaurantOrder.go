package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Restaurant order status constants
const (
	RestaurantOrderOpen    = 0
	RestaurantOrderSettled = 1
	RestaurantOrderVoided  = 2
)

type RestaurantOrder struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	Code            string          `json:"code" gorm:"unique;size:20"`
	BranchID        uint            `json:"branchId" gorm:"index"`
	TableNumber     int             `json:"tableNumber"`
	CustomerID      *uint           `json:"customerId"`
	Customer        *Customer       `json:"customer" gorm:"foreignKey:CustomerID"`
	Items           json.RawMessage `json:"items" gorm:"type:json"` // [{name, quantity, unitPrice}]
	TotalAmount     float64         `json:"totalAmount"`
	DiscountPercent float64         `json:"discountPercent"`
	Status          int             `json:"status"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (order *RestaurantOrder) BeforeCreate(tx *gorm.DB) (err error) {
	if order.Code == "" {
		order.Code = fmt.Sprintf("NH%d", time.Now().UnixNano()/1e6)
	}
	return nil
}

// FinalAmount trả về số tiền phải thu sau giảm giá
func (order *RestaurantOrder) FinalAmount() float64 {
	return order.TotalAmount - order.TotalAmount*order.DiscountPercent/100
}
