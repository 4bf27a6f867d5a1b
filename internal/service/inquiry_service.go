package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"skilleat/internal/entities"
	httperr "skilleat/internal/errors"
	"skilleat/internal/mailer"
)

// User-facing messages. The site runs in a single fixed locale.
const (
	MsgRequiredFieldsMissing = "필수 항목이 누락되었습니다."
	MsgMailConfigMissing     = "메일 설정이 누락되었습니다."
	MsgMailSendFailed        = "메일 전송 실패"
)

// InquiryService validates collaboration inquiries and relays them as
// email to the site contact address. Nothing is persisted.
type InquiryService struct {
	mailer mailer.Mailer
	from   string
	to     string
}

func NewInquiryService(m mailer.Mailer, from, to string) *InquiryService {
	return &InquiryService{
		mailer: m,
		from:   from,
		to:     to,
	}
}

// Submit checks required-field presence, composes the notification email
// and hands it to the mail transport. The returned error, if any, is an
// *httperr.HTTPError carrying the user-facing message; transport details
// stay in the server log.
func (s *InquiryService) Submit(ctx context.Context, inq *entities.Inquiry) error {
	if missingRequired(inq) {
		return httperr.BadRequest(MsgRequiredFieldsMissing)
	}

	subject, body := composeInquiryMail(inq)

	err := s.mailer.Send(ctx, mailer.Message{
		From:    s.from,
		To:      s.to,
		Subject: subject,
		Body:    body,
	})
	if err != nil {
		if errors.Is(err, mailer.ErrNotConfigured) {
			log.Printf("[CONTACT] mail transport not configured")
			return httperr.Internal(MsgMailConfigMissing)
		}
		log.Printf("[CONTACT] mail send failed: %v", err)
		return httperr.Internal(MsgMailSendFailed)
	}

	log.Printf("[CONTACT] inquiry relayed: name=%s, topic=%s", inq.FullName, inq.Topic)
	return nil
}

// missingRequired reports whether any required field is empty after
// trimming. Presence only; the email format is checked client-side.
func missingRequired(inq *entities.Inquiry) bool {
	required := []string{
		inq.FullName,
		inq.Company,
		inq.Email,
		inq.Audience,
		inq.Topic,
		inq.DesiredDate,
		inq.Details,
	}
	for _, v := range required {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

// composeInquiryMail renders the subject and plaintext body in the fixed
// label order the recipient expects.
func composeInquiryMail(inq *entities.Inquiry) (subject, body string) {
	topic := renderTopic(inq)

	phone := inq.Phone
	if strings.TrimSpace(phone) == "" {
		phone = "-"
	}

	subject = fmt.Sprintf("[협업 문의] %s - %s", inq.FullName, topic)
	body = fmt.Sprintf(
		"이름: %s\n"+
			"회사/기관: %s\n"+
			"이메일: %s\n"+
			"연락처: %s\n"+
			"대상: %s\n"+
			"주제: %s\n"+
			"희망 일정: %s\n\n"+
			"문의 내용:\n%s",
		inq.FullName, inq.Company, inq.Email, phone,
		inq.Audience, topic, inq.DesiredDate, inq.Details,
	)
	return subject, body
}

// renderTopic expands the "other" topic with its free-text refinement.
func renderTopic(inq *entities.Inquiry) string {
	topic := strings.TrimSpace(inq.Topic)
	if topic == "기타" && strings.TrimSpace(inq.TopicOther) != "" {
		return "기타: " + strings.TrimSpace(inq.TopicOther)
	}
	return topic
}
