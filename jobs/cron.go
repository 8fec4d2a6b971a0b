package jobs

import (
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// BookingMaintainer định nghĩa interface cho việc dọn dẹp booking định kỳ
type BookingMaintainer interface {
	ExpireStalePending(m *melody.Melody) error
	CleanupPastRoomStatuses() error
}

var bookingMaintainer BookingMaintainer

// SetBookingMaintainer thiết lập implementation cho BookingMaintainer
func SetBookingMaintainer(maintainer BookingMaintainer) {
	bookingMaintainer = maintainer
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Cron job chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang chạy dọn dẹp booking định kỳ lúc: %v", now)
		if bookingMaintainer == nil {
			log.Printf("Lỗi: BookingMaintainer chưa được thiết lập")
			return
		}
		if err := bookingMaintainer.ExpireStalePending(m); err != nil {
			log.Printf("Lỗi khi hủy booking pending quá hạn: %v", err)
		}
		if err := bookingMaintainer.CleanupPastRoomStatuses(); err != nil {
			log.Printf("Lỗi khi dọn dẹp trạng thái phòng quá hạn: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
