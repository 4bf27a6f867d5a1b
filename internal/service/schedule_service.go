package service

import (
	"time"

	"skilleat/internal/entities"
)

// ScheduleService produces the availability feed for the read-only
// calendar. Placeholder data: a single all-day "available" event for the
// current date, not derived from any booking source.
type ScheduleService struct {
	now func() time.Time
}

func NewScheduleService() *ScheduleService {
	return &ScheduleService{now: time.Now}
}

func (s *ScheduleService) Events() []entities.ScheduleEvent {
	return []entities.ScheduleEvent{
		{
			Title:  "협업 가능",
			Start:  s.now().Format("2006-01-02"),
			AllDay: true,
		},
	}
}
