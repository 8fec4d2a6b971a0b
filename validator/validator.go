package validator

import (
	"regexp"
	"time"

	"hrms/dto"
	"hrms/errors"
	"hrms/models"
)

// ValidateUser validate thông tin user
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !IsValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	if user.PhoneNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại không được để trống", nil)
	}

	if !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}

	if user.Role < 0 || user.Role > 3 {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}

	return nil
}

// ValidateBooking validate request tạo booking
func ValidateBooking(req *dto.CreateBookingRequest) error {
	if req.RoomID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID phòng không được để trống", nil)
	}

	checkInDate, err := time.Parse(models.DateLayout, req.CheckInDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày nhận phòng không hợp lệ", err)
	}

	checkOutDate, err := time.Parse(models.DateLayout, req.CheckOutDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày trả phòng không hợp lệ", err)
	}

	if !checkOutDate.After(checkInDate) {
		return errors.NewAppError(errors.ErrCodeInvalidDateRange, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	if req.CustomerID == nil {
		if req.GuestName == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách không được để trống", nil)
		}
		if req.GuestPhone != "" && !isValidPhone(req.GuestPhone) {
			return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại khách không hợp lệ", nil)
		}
		if req.GuestEmail != "" && !IsValidEmail(req.GuestEmail) {
			return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email khách không hợp lệ", nil)
		}
	}

	if req.ServiceAmount < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Phụ thu dịch vụ không được âm", nil)
	}

	if req.DiscountPercent < 0 || req.DiscountPercent > 100 {
		return errors.NewAppError(errors.ErrCodeValidation, "Phần trăm giảm giá phải trong khoảng 0-100", nil)
	}

	return nil
}

// ValidateAmount validate số tiền của một khoản thu
func ValidateAmount(amount float64) error {
	if amount <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền phải lớn hơn 0", nil)
	}
	return nil
}

// ValidateTransitionReason bắt buộc lý do với các sự kiện hủy/từ chối
func ValidateTransitionReason(event, reason string) error {
	if (event == "cancel" || event == "reject") && reason == "" {
		return errors.NewAppError(errors.ErrCodeMissingReason, "Lý do không được để trống", nil)
	}
	return nil
}

// IsValidEmail kiểm tra email hợp lệ về mặt cú pháp, không xác minh hòm thư
func IsValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}
