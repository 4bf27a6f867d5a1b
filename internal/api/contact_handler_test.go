package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skilleat/internal/api"
	"skilleat/internal/mailer"
	"skilleat/internal/service"
)

type mockMailer struct {
	sent []mailer.Message
	err  error
}

func (m *mockMailer) Send(_ context.Context, msg mailer.Message) error {
	m.sent = append(m.sent, msg)
	return m.err
}

func newContactHandler(m mailer.Mailer) *api.ContactHandler {
	svc := service.NewInquiryService(m, "noreply@skilleat.com", "contact@skilleat.com")
	return api.NewContactHandler(svc)
}

const validBody = `{
	"fullName": "김민준",
	"company": "한빛교육",
	"email": "minjun@hanbit.co.kr",
	"phone": "",
	"audience": "임직원",
	"topic": "강연",
	"desiredDate": "2025-07-14",
	"details": "사내 교육 협업을 문의드립니다."
}`

func postContact(t *testing.T, h *api.ContactHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.SubmitInquiry(rr, req)
	return rr
}

func TestSubmitInquiryOK(t *testing.T) {
	m := &mockMailer{}
	rr := postContact(t, newContactHandler(m), validBody)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `{"ok": true}`, rr.Body.String())
	require.Len(t, m.sent, 1)
	assert.Contains(t, m.sent[0].Subject, "김민준")
	assert.Contains(t, m.sent[0].Subject, "강연")
}

func TestSubmitInquiryMissingField(t *testing.T) {
	m := &mockMailer{}
	body := strings.Replace(validBody, `"사내 교육 협업을 문의드립니다."`, `""`, 1)
	rr := postContact(t, newContactHandler(m), body)

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, service.MsgRequiredFieldsMissing, resp["message"])
	assert.Empty(t, m.sent)
}

func TestSubmitInquiryMalformedBody(t *testing.T) {
	m := &mockMailer{}
	rr := postContact(t, newContactHandler(m), `{"fullName": `)

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, service.MsgRequiredFieldsMissing, resp["message"])
	assert.Empty(t, m.sent)
}

func TestSubmitInquiryTransportFailure(t *testing.T) {
	m := &mockMailer{err: errors.New("550 relay rejected")}
	rr := postContact(t, newContactHandler(m), validBody)

	require.Equal(t, http.StatusInternalServerError, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, service.MsgMailSendFailed, resp["message"])
	assert.NotContains(t, rr.Body.String(), "relay rejected")
}

func TestSubmitInquiryTransportNotConfigured(t *testing.T) {
	m := &mockMailer{err: mailer.ErrNotConfigured}
	rr := postContact(t, newContactHandler(m), validBody)

	require.Equal(t, http.StatusInternalServerError, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, service.MsgMailConfigMissing, resp["message"])
}
