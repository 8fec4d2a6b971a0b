package models

import (
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"
)

// Booking status constants
const (
	BookingStatusPending    = 0
	BookingStatusConfirmed  = 1
	BookingStatusCheckedIn  = 2
	BookingStatusCheckedOut = 3
	BookingStatusCancelled  = 4
	BookingStatusRejected   = 5
)

// DateLayout định dạng ngày dùng chung cho toàn hệ thống
const DateLayout = "02/01/2006"

type Booking struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	Code               string    `json:"code" gorm:"unique;size:20"` // Mã đặt phòng duy nhất
	RoomID             uint      `json:"roomId" gorm:"index"`
	Room               Room      `json:"room" gorm:"foreignKey:RoomID"`
	CustomerID         *uint     `json:"customerId"` // null với khách vãng lai chưa lưu hồ sơ
	Customer           *Customer `json:"customer" gorm:"foreignKey:CustomerID"`
	CheckInDate        string    `json:"checkInDate"`
	CheckOutDate       string    `json:"checkOutDate"`
	Status             int       `json:"status"`
	GuestName          string    `json:"guestName,omitempty"`
	GuestEmail         string    `json:"guestEmail,omitempty"`
	GuestPhone         string    `json:"guestPhone,omitempty"`
	RoomPrice          float64   `json:"roomPrice"`     // Giá phòng mỗi đêm tại thời điểm đặt
	ServiceAmount      float64   `json:"serviceAmount"` // Phụ thu dịch vụ
	DiscountPercent    float64   `json:"discountPercent"`
	TotalAmount        float64   `json:"totalAmount"`
	CancellationReason string    `json:"cancellationReason,omitempty"`
	RejectReason       string    `json:"rejectReason,omitempty"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Today trả về ngày hiện tại theo giờ địa phương, quy về nửa đêm UTC
// để so sánh được với các ngày parse từ DateLayout
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (booking *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if booking.Code == "" {
		// Hậu tố ngẫu nhiên tránh trùng mã khi hai booking tạo cùng mili-giây
		for attempt := 0; attempt < 3; attempt++ {
			code := fmt.Sprintf("BK%d%04d", time.Now().UnixNano()/1e6, rand.Intn(10000))
			var count int64
			if err := tx.Model(&Booking{}).Where("code = ?", code).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				booking.Code = code
				return nil
			}
		}
		return fmt.Errorf("không sinh được mã đặt phòng, hãy thử lại")
	}

	var count int64
	if err := tx.Model(&Booking{}).Where("code = ?", booking.Code).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("mã đặt phòng đã tồn tại, hãy thử lại")
	}
	return nil
}

// Nights trả về số đêm của booking
func (booking *Booking) Nights() (int, error) {
	checkIn, err := time.Parse(DateLayout, booking.CheckInDate)
	if err != nil {
		return 0, err
	}
	checkOut, err := time.Parse(DateLayout, booking.CheckOutDate)
	if err != nil {
		return 0, err
	}
	return int(checkOut.Sub(checkIn).Hours() / 24), nil
}

// FinalAmount trả về số tiền phải thu sau giảm giá
func (booking *Booking) FinalAmount() float64 {
	return booking.TotalAmount - booking.DiscountAmount()
}

// DiscountAmount trả về số tiền giảm giá
func (booking *Booking) DiscountAmount() float64 {
	return booking.TotalAmount * booking.DiscountPercent / 100
}

// IsActive cho biết booking còn chiếm phòng hay không
func (booking *Booking) IsActive() bool {
	return booking.Status != BookingStatusCancelled && booking.Status != BookingStatusRejected
}

// BookingStatusName trả về tên trạng thái booking
func BookingStatusName(status int) string {
	switch status {
	case BookingStatusPending:
		return "pending"
	case BookingStatusConfirmed:
		return "confirmed"
	case BookingStatusCheckedIn:
		return "checkedIn"
	case BookingStatusCheckedOut:
		return "checkedOut"
	case BookingStatusCancelled:
		return "cancelled"
	case BookingStatusRejected:
		return "rejected"
	default:
		return "unknown"
	}
}
