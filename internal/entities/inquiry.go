package entities

// Inquiry is a collaboration inquiry as submitted by the contact form.
// It only lives for the duration of the request: validated, rendered
// into an email, then discarded.
type Inquiry struct {
	FullName    string `json:"fullName"`
	Company     string `json:"company"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Audience    string `json:"audience"`
	Topic       string `json:"topic"`
	TopicOther  string `json:"topicOther,omitempty"`
	DesiredDate string `json:"desiredDate"`
	Details     string `json:"details"`
}
