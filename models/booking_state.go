package models

import (
	"strings"
	"time"

	"hrms/errors"
)

// BookingState định nghĩa interface cho các trạng thái booking
type BookingState interface {
	Confirm(booking *Booking) error
	Reject(booking *Booking, reason string) error
	CheckIn(booking *Booking, override bool) error
	CheckOut(booking *Booking) error
	Cancel(booking *Booking, reason string) error
	Delete(booking *Booking) error
}

func invalidTransition(booking *Booking, event string) error {
	return errors.NewAppError(
		errors.ErrCodeInvalidTransition,
		"không thể "+event+" khi booking đang ở trạng thái "+BookingStatusName(booking.Status),
		nil,
	)
}

func notDeletable(booking *Booking) error {
	return errors.NewAppError(
		errors.ErrCodeBookingNotDeletable,
		"không thể xóa khi booking đang ở trạng thái "+BookingStatusName(booking.Status),
		nil,
	)
}

func requireReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return errors.NewAppError(errors.ErrCodeMissingReason, "lý do không được để trống", nil)
	}
	return nil
}

// PendingState trạng thái chờ xác nhận
type PendingState struct{}

func (s *PendingState) Confirm(booking *Booking) error {
	booking.Status = BookingStatusConfirmed
	return nil
}

func (s *PendingState) Reject(booking *Booking, reason string) error {
	if err := requireReason(reason); err != nil {
		return err
	}
	booking.Status = BookingStatusRejected
	booking.RejectReason = reason
	return nil
}

func (s *PendingState) CheckIn(booking *Booking, override bool) error {
	return invalidTransition(booking, "checkIn")
}

func (s *PendingState) CheckOut(booking *Booking) error {
	return invalidTransition(booking, "checkOut")
}

func (s *PendingState) Cancel(booking *Booking, reason string) error {
	if err := requireReason(reason); err != nil {
		return err
	}
	booking.Status = BookingStatusCancelled
	booking.CancellationReason = reason
	return nil
}

func (s *PendingState) Delete(booking *Booking) error {
	// Chỉ được xóa khi chưa từng xác nhận
	return nil
}

// ConfirmedState trạng thái đã xác nhận
type ConfirmedState struct{}

func (s *ConfirmedState) Confirm(booking *Booking) error {
	return invalidTransition(booking, "confirm")
}

func (s *ConfirmedState) Reject(booking *Booking, reason string) error {
	return invalidTransition(booking, "reject")
}

func (s *ConfirmedState) CheckIn(booking *Booking, override bool) error {
	if !override {
		checkInDate, err := time.Parse(DateLayout, booking.CheckInDate)
		if err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidFormat, "ngày nhận phòng không hợp lệ", err)
		}
		if Today().Before(checkInDate) {
			return errors.NewAppError(errors.ErrCodeValidation, "chưa đến ngày nhận phòng", nil)
		}
	}
	booking.Status = BookingStatusCheckedIn
	return nil
}

func (s *ConfirmedState) CheckOut(booking *Booking) error {
	return invalidTransition(booking, "checkOut")
}

func (s *ConfirmedState) Cancel(booking *Booking, reason string) error {
	if err := requireReason(reason); err != nil {
		return err
	}
	booking.Status = BookingStatusCancelled
	booking.CancellationReason = reason
	return nil
}

func (s *ConfirmedState) Delete(booking *Booking) error {
	return notDeletable(booking)
}

// CheckedInState trạng thái khách đang ở
type CheckedInState struct{}

func (s *CheckedInState) Confirm(booking *Booking) error {
	return invalidTransition(booking, "confirm")
}

func (s *CheckedInState) Reject(booking *Booking, reason string) error {
	return invalidTransition(booking, "reject")
}

func (s *CheckedInState) CheckIn(booking *Booking, override bool) error {
	return invalidTransition(booking, "checkIn")
}

func (s *CheckedInState) CheckOut(booking *Booking) error {
	// Cho phép trả phòng khi còn công nợ, thu tiền ở bước thanh toán sau
	booking.Status = BookingStatusCheckedOut
	return nil
}

func (s *CheckedInState) Cancel(booking *Booking, reason string) error {
	return invalidTransition(booking, "cancel")
}

func (s *CheckedInState) Delete(booking *Booking) error {
	return notDeletable(booking)
}

// CheckedOutState trạng thái đã trả phòng, chỉ còn thao tác hóa đơn
type CheckedOutState struct{}

func (s *CheckedOutState) Confirm(booking *Booking) error {
	return invalidTransition(booking, "confirm")
}

func (s *CheckedOutState) Reject(booking *Booking, reason string) error {
	return invalidTransition(booking, "reject")
}

func (s *CheckedOutState) CheckIn(booking *Booking, override bool) error {
	return invalidTransition(booking, "checkIn")
}

func (s *CheckedOutState) CheckOut(booking *Booking) error {
	return invalidTransition(booking, "checkOut")
}

func (s *CheckedOutState) Cancel(booking *Booking, reason string) error {
	return invalidTransition(booking, "cancel")
}

func (s *CheckedOutState) Delete(booking *Booking) error {
	return notDeletable(booking)
}

// CancelledState trạng thái đã hủy
type CancelledState struct{}

func (s *CancelledState) Confirm(booking *Booking) error {
	return invalidTransition(booking, "confirm")
}

func (s *CancelledState) Reject(booking *Booking, reason string) error {
	return invalidTransition(booking, "reject")
}

func (s *CancelledState) CheckIn(booking *Booking, override bool) error {
	return invalidTransition(booking, "checkIn")
}

func (s *CancelledState) CheckOut(booking *Booking) error {
	return invalidTransition(booking, "checkOut")
}

func (s *CancelledState) Cancel(booking *Booking, reason string) error {
	return invalidTransition(booking, "cancel")
}

func (s *CancelledState) Delete(booking *Booking) error {
	// Dọn booking chết
	return nil
}

// RejectedState trạng thái đã từ chối
type RejectedState struct{}

func (s *RejectedState) Confirm(booking *Booking) error {
	return invalidTransition(booking, "confirm")
}

func (s *RejectedState) Reject(booking *Booking, reason string) error {
	return invalidTransition(booking, "reject")
}

func (s *RejectedState) CheckIn(booking *Booking, override bool) error {
	return invalidTransition(booking, "checkIn")
}

func (s *RejectedState) CheckOut(booking *Booking) error {
	return invalidTransition(booking, "checkOut")
}

func (s *RejectedState) Cancel(booking *Booking, reason string) error {
	return invalidTransition(booking, "cancel")
}

func (s *RejectedState) Delete(booking *Booking) error {
	return nil
}

// GetBookingState trả về state tương ứng với trạng thái booking
func GetBookingState(status int) BookingState {
	switch status {
	case BookingStatusPending:
		return &PendingState{}
	case BookingStatusConfirmed:
		return &ConfirmedState{}
	case BookingStatusCheckedIn:
		return &CheckedInState{}
	case BookingStatusCheckedOut:
		return &CheckedOutState{}
	case BookingStatusCancelled:
		return &CancelledState{}
	case BookingStatusRejected:
		return &RejectedState{}
	default:
		return &PendingState{}
	}
}
