package services

import (
	"fmt"
	"log"
	"time"

	"hrms/config"
	"hrms/constants"
	"hrms/dto"
	"hrms/errors"
	"hrms/models"

	"gorm.io/gorm"
)

// bookingRange đọc khoảng ngày [checkIn, checkOut) của booking
func bookingRange(booking models.Booking) (time.Time, time.Time, error) {
	checkIn, err := time.Parse(models.DateLayout, booking.CheckInDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "ngày nhận phòng không hợp lệ", err)
	}
	checkOut, err := time.Parse(models.DateLayout, booking.CheckOutDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "ngày trả phòng không hợp lệ", err)
	}
	return checkIn, checkOut, nil
}

func guestNameOf(booking models.Booking) string {
	if booking.GuestName != "" {
		return booking.GuestName
	}
	if booking.Customer != nil {
		return booking.Customer.Name
	}
	return ""
}

// BuildRoomCalendar dựng lịch phòng cho một cửa sổ ngày từ snapshot đã nạp sẵn.
// Hàm thuần, không truy vấn: luôn có thể dựng lại từ một lần fetch mới.
// Một ngày có hơn một booking còn hiệu lực là dữ liệu đã hỏng từ phía ghi,
// phải báo lỗi chứ không tự chọn một booking.
func BuildRoomCalendar(room models.Room, bookings []models.Booking, statuses []models.RoomStatus, fromDate, toDate time.Time) ([]dto.DayAvailability, error) {
	var days []dto.DayAvailability

	for day := fromDate; !day.After(toDate); day = day.AddDate(0, 0, 1) {
		var matched []models.Booking
		for _, booking := range bookings {
			if booking.RoomID != room.ID || !booking.IsActive() {
				continue
			}
			checkIn, checkOut, err := bookingRange(booking)
			if err != nil {
				return nil, err
			}
			if !day.Before(checkIn) && day.Before(checkOut) {
				matched = append(matched, booking)
			}
		}

		if len(matched) > 1 {
			return nil, errors.NewAppError(
				errors.ErrCodeDataIntegrity,
				fmt.Sprintf("phòng %d có %d booking còn hiệu lực trùng ngày %s", room.ID, len(matched), day.Format(models.DateLayout)),
				nil,
			)
		}

		cell := dto.DayAvailability{Date: day.Format(models.DateLayout)}

		if len(matched) == 1 {
			booking := matched[0]
			cell.Booking = &dto.CalendarBooking{
				ID:         booking.ID,
				Code:       booking.Code,
				GuestName:  guestNameOf(booking),
				Status:     booking.Status,
				StatusName: models.BookingStatusName(booking.Status),
			}
		} else if reason, blocked := roomBlockedOn(statuses, room.ID, day); blocked {
			cell.Reason = reason
		} else {
			cell.Available = true
		}

		days = append(days, cell)
	}

	return days, nil
}

// roomBlockedOn kiểm tra phòng có bị chặn bởi khoảng dọn dẹp/bảo trì vào ngày đó không
func roomBlockedOn(statuses []models.RoomStatus, roomID uint, day time.Time) (string, bool) {
	for _, status := range statuses {
		if status.RoomID != roomID {
			continue
		}
		if status.Status != constants.RoomStatusCleaning && status.Status != constants.RoomStatusMaintenance {
			continue
		}
		if !day.Before(status.FromDate) && day.Before(status.ToDate) {
			if status.Reason != "" {
				return status.Reason, true
			}
			if status.Status == constants.RoomStatusCleaning {
				return "cleaning", true
			}
			return "maintenance", true
		}
	}
	return "", false
}

// CanOpenBookingDialog cho biết có được mở form tạo booking cho phòng+ngày này không.
// Ô đã có booking hoặc phòng không khả dụng thì phải hiện thông tin xung đột thay vì mở form.
func CanOpenBookingDialog(days []dto.DayAvailability, date string) (bool, *dto.DayAvailability) {
	for i := range days {
		if days[i].Date == date {
			if days[i].Available {
				return true, nil
			}
			return false, &days[i]
		}
	}
	return false, nil
}

// uintFilterKey mã hóa bộ lọc tùy chọn thành phần cache key ổn định
func uintFilterKey(v *uint) string {
	if v == nil {
		return "all"
	}
	return fmt.Sprintf("%d", *v)
}

// GetCalendar trả về lịch cho tất cả phòng khớp bộ lọc, kèm cache Redis.
// Cache chỉ là tiện nghi, luôn chịu được rỗng/cũ: mọi mutation booking xóa pattern calendar:*.
func GetCalendar(branchID uint, floorID, roomTypeID *uint, fromDate, toDate time.Time) ([]dto.RoomCalendarResponse, error) {
	cacheKey := fmt.Sprintf("calendar:%d:%s:%s:%s:%s",
		branchID, uintFilterKey(floorID), uintFilterKey(roomTypeID),
		fromDate.Format("20060102"), toDate.Format("20060102"))

	var result []dto.RoomCalendarResponse
	rdb, redisErr := config.ConnectRedis()
	if redisErr == nil {
		if err := GetFromRedis(config.Ctx, rdb, cacheKey, &result); err == nil && len(result) > 0 {
			return result, nil
		}
	}

	tx := config.DB.Where("branch_id = ?", branchID)
	if floorID != nil {
		tx = tx.Where("floor_id = ?", *floorID)
	}
	if roomTypeID != nil {
		tx = tx.Where("room_type_id = ?", *roomTypeID)
	}

	var rooms []models.Room
	if err := tx.Find(&rooms).Error; err != nil {
		return nil, err
	}

	roomIDs := make([]uint, 0, len(rooms))
	for _, room := range rooms {
		roomIDs = append(roomIDs, room.ID)
	}

	var bookings []models.Booking
	if len(roomIDs) > 0 {
		if err := config.DB.Preload("Customer").
			Where("room_id IN ? AND status NOT IN ?", roomIDs,
				[]int{models.BookingStatusCancelled, models.BookingStatusRejected}).
			Find(&bookings).Error; err != nil {
			return nil, err
		}
	}

	var statuses []models.RoomStatus
	if len(roomIDs) > 0 {
		if err := config.DB.
			Where("room_id IN ? AND to_date >= ? AND from_date <= ?", roomIDs, fromDate, toDate.AddDate(0, 0, 1)).
			Find(&statuses).Error; err != nil {
			return nil, err
		}
	}

	for _, room := range rooms {
		days, err := BuildRoomCalendar(room, bookings, statuses, fromDate, toDate)
		if err != nil {
			return nil, err
		}
		result = append(result, dto.RoomCalendarResponse{
			Room: dto.CalendarRoomResponse{
				ID:         room.ID,
				RoomName:   room.RoomName,
				BranchID:   room.BranchID,
				FloorID:    room.FloorID,
				RoomTypeID: room.RoomTypeID,
				Price:      room.Price,
				Status:     room.Status,
			},
			Availability: days,
		})
	}

	if redisErr == nil {
		if err := SetToRedis(config.Ctx, rdb, cacheKey, result, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu lịch phòng vào Redis: %v", err)
		}
	}

	return result, nil
}

// FindOverlappingBookings trả về các booking còn hiệu lực chồng khoảng [checkIn, checkOut)
// của một phòng, dùng để chặn đặt trùng trước khi ghi.
func FindOverlappingBookings(db *gorm.DB, roomID uint, checkIn, checkOut time.Time, excludeBookingID uint) ([]models.Booking, error) {
	var candidates []models.Booking
	if err := db.
		Where("room_id = ? AND status NOT IN ?", roomID,
			[]int{models.BookingStatusCancelled, models.BookingStatusRejected}).
		Find(&candidates).Error; err != nil {
		return nil, err
	}

	var overlapping []models.Booking
	for _, booking := range candidates {
		if booking.ID == excludeBookingID {
			continue
		}
		from, to, err := bookingRange(booking)
		if err != nil {
			return nil, err
		}
		if checkIn.Before(to) && from.Before(checkOut) {
			overlapping = append(overlapping, booking)
		}
	}
	return overlapping, nil
}
