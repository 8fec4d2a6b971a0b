package dto

import (
	"encoding/json"
	"time"
)

// OrderItem là một món trong order nhà hàng
type OrderItem struct {
	Name      string  `json:"name" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	UnitPrice float64 `json:"unitPrice" binding:"required"`
}

// CreateOrderRequest là DTO cho request mở order nhà hàng
type CreateOrderRequest struct {
	BranchID        uint        `json:"branchId" binding:"required"`
	TableNumber     int         `json:"tableNumber" binding:"required"`
	CustomerID      *uint       `json:"customerId"`
	Items           []OrderItem `json:"items" binding:"required"`
	DiscountPercent float64     `json:"discountPercent"`
}

// OrderResponse là DTO cho response của order nhà hàng
type OrderResponse struct {
	ID              uint            `json:"id"`
	Code            string          `json:"code"`
	BranchID        uint            `json:"branchId"`
	TableNumber     int             `json:"tableNumber"`
	Items           json.RawMessage `json:"items"`
	TotalAmount     float64         `json:"totalAmount"`
	DiscountPercent float64         `json:"discountPercent"`
	FinalAmount     float64         `json:"finalAmount"`
	Status          int             `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}
