package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/koboapp/kobo/internal/adapter/http/dto"
)

type reminderServiceStub struct {
	sendDueFn func(ctx context.Context) (int, error)
}

func (s *reminderServiceStub) SendDue(ctx context.Context) (int, error) {
	return s.sendDueFn(ctx)
}

func TestCronHandler_SavingsReminder(t *testing.T) {
	h := NewCronHandler(&reminderServiceStub{
		sendDueFn: func(ctx context.Context) (int, error) { return 3, nil },
	}, "cron-secret")

	req := httptest.NewRequest(http.MethodPost, "/cron/savings-reminder", nil)
	req.Header.Set("Authorization", "Bearer cron-secret")
	rec := httptest.NewRecorder()

	h.SavingsReminder(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.ReminderRunResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Sent != 3 {
		t.Fatalf("expected 3 sent, got %d", resp.Sent)
	}
}

func TestCronHandler_SavingsReminder_BadSecret(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		header string
	}{
		{"wrong secret", "cron-secret", "Bearer nope"},
		{"missing header", "cron-secret", ""},
		{"secret not configured", "", "Bearer anything"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewCronHandler(&reminderServiceStub{
				sendDueFn: func(ctx context.Context) (int, error) {
					t.Fatal("job should not run when unauthorized")
					return 0, nil
				},
			}, tt.secret)

			req := httptest.NewRequest(http.MethodPost, "/cron/savings-reminder", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.SavingsReminder(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestCronHandler_SavingsReminder_JobFailure(t *testing.T) {
	h := NewCronHandler(&reminderServiceStub{
		sendDueFn: func(ctx context.Context) (int, error) {
			return 0, errors.New("smtp down")
		},
	}, "cron-secret")

	req := httptest.NewRequest(http.MethodPost, "/cron/savings-reminder", nil)
	req.Header.Set("Authorization", "Bearer cron-secret")
	rec := httptest.NewRecorder()

	h.SavingsReminder(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
