package dto

import "time"

// CreateBookingRequest là DTO cho request tạo booking mới
type CreateBookingRequest struct {
	RoomID          uint    `json:"roomId" binding:"required"`
	CustomerID      *uint   `json:"customerId"`
	CheckInDate     string  `json:"checkInDate" binding:"required"`
	CheckOutDate    string  `json:"checkOutDate" binding:"required"`
	GuestName       string  `json:"guestName,omitempty"`
	GuestEmail      string  `json:"guestEmail,omitempty"`
	GuestPhone      string  `json:"guestPhone,omitempty"`
	ServiceAmount   float64 `json:"serviceAmount"`
	DiscountPercent float64 `json:"discountPercent"`
}

// TransitionRequest là DTO cho request chuyển trạng thái booking
type TransitionRequest struct {
	Event    string `json:"event" binding:"required"` // confirm, reject, checkIn, checkOut, cancel
	Reason   string `json:"reason,omitempty"`
	Override bool   `json:"override,omitempty"` // cho phép nhận phòng trước ngày
}

// ActorResponse là DTO cho thông tin khách/người thao tác
type ActorResponse struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// BookingRoomResponse là DTO rút gọn cho phòng trong booking
type BookingRoomResponse struct {
	ID       uint    `json:"id"`
	RoomName string  `json:"roomName"`
	Floor    string  `json:"floor"`
	RoomType string  `json:"roomType"`
	Price    float64 `json:"price"`
}

// BookingResponse là DTO cho response của booking
type BookingResponse struct {
	ID                 uint                `json:"id"`
	Code               string              `json:"code"`
	Room               BookingRoomResponse `json:"room"`
	Customer           *ActorResponse      `json:"customer,omitempty"`
	Guest              ActorResponse       `json:"guest"`
	CheckInDate        string              `json:"checkInDate"`
	CheckOutDate       string              `json:"checkOutDate"`
	Status             int                 `json:"status"`
	StatusName         string              `json:"statusName"`
	RoomPrice          float64             `json:"roomPrice"`
	ServiceAmount      float64             `json:"serviceAmount"`
	DiscountPercent    float64             `json:"discountPercent"`
	TotalAmount        float64             `json:"totalAmount"`
	FinalAmount        float64             `json:"finalAmount"`
	CancellationReason string              `json:"cancellationReason,omitempty"`
	RejectReason       string              `json:"rejectReason,omitempty"`
	CreatedAt          time.Time           `json:"createdAt"`
	UpdatedAt          time.Time           `json:"updatedAt"`
}
