package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

// Service phát sự kiện realtime cho dashboard lễ tân
type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// BookingEventBuilder dựng thông báo cho sự kiện vòng đời booking
type BookingEventBuilder struct {
	bookingCode string
	event       string
	statusName  string
}

func NewBookingEventBuilder(bookingCode, event, statusName string) *BookingEventBuilder {
	return &BookingEventBuilder{
		bookingCode: bookingCode,
		event:       event,
		statusName:  statusName,
	}
}

func (b *BookingEventBuilder) Build() string {
	return fmt.Sprintf("🔔 Booking %s: %s -> %s", b.bookingCode, b.event, b.statusName)
}
