package dto

// CalendarBooking là thông tin booking chiếm một ngày trên lịch
type CalendarBooking struct {
	ID         uint   `json:"id"`
	Code       string `json:"code"`
	GuestName  string `json:"guestName"`
	Status     int    `json:"status"`
	StatusName string `json:"statusName"`
}

// DayAvailability là một ô ngày trên lịch phòng
type DayAvailability struct {
	Date      string           `json:"date"`
	Available bool             `json:"available"`
	Reason    string           `json:"reason,omitempty"` // cleaning/maintenance khi phòng không khả dụng
	Booking   *CalendarBooking `json:"booking"`
}

// CalendarRoomResponse là thông tin phòng kèm theo lịch
type CalendarRoomResponse struct {
	ID         uint    `json:"id"`
	RoomName   string  `json:"roomName"`
	BranchID   uint    `json:"branchId"`
	FloorID    uint    `json:"floorId"`
	RoomTypeID uint    `json:"roomTypeId"`
	Price      float64 `json:"price"`
	Status     int     `json:"status"`
}

// RoomCalendarResponse là lịch của một phòng trong cửa sổ ngày yêu cầu
type RoomCalendarResponse struct {
	Room         CalendarRoomResponse `json:"room"`
	Availability []DayAvailability    `json:"availability"`
}
