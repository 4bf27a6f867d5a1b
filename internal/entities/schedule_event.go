package entities

// ScheduleEvent is one entry of the availability feed consumed by the
// calendar widget. Start is an ISO date (YYYY-MM-DD).
type ScheduleEvent struct {
	Title  string `json:"title"`
	Start  string `json:"start"`
	AllDay bool   `json:"allDay"`
}
