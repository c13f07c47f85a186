package httperror

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/vmdantas/mail-triage-go/internal/extract"
	"github.com/vmdantas/mail-triage-go/internal/gemini"
	"github.com/vmdantas/mail-triage-go/internal/upload"
)

func TestFromErrorSentinels(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   ErrorCode
		wantStatus int
	}{
		{
			name:       "model not configured",
			err:        gemini.ErrNotConfigured,
			wantCode:   ErrorCodeModelUnavailable,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "wrapped model not configured",
			err:        fmt.Errorf("classify: %w", gemini.ErrNotConfigured),
			wantCode:   ErrorCodeModelUnavailable,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "pdf support disabled",
			err:        extract.ErrPDFSupportDisabled,
			wantCode:   ErrorCodeDependencyMissing,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "unsafe filename",
			err:        upload.ErrUnsafeFilename,
			wantCode:   ErrorCodeInvalidInput,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "deadline exceeded",
			err:        context.DeadlineExceeded,
			wantCode:   ErrorCodeModelTimeout,
			wantStatus: http.StatusGatewayTimeout,
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantCode:   ErrorCodeInternal,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromError(tt.err)
			if got.Code != tt.wantCode {
				t.Fatalf("code = %q, want %q", got.Code, tt.wantCode)
			}
			if got.Status != tt.wantStatus {
				t.Fatalf("status = %d, want %d", got.Status, tt.wantStatus)
			}
		})
	}
}

func TestFromErrorNil(t *testing.T) {
	if got := FromError(nil); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestFromErrorPassesThroughAPIError(t *testing.T) {
	original := NewDependencyMissing("pdf_extraction", "PDF support off")
	got := FromError(fmt.Errorf("handle upload: %w", original))
	if got != original {
		t.Fatalf("expected original error, got %+v", got)
	}
	if got.Status != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", got.Status, http.StatusUnprocessableEntity)
	}
	if got.Details["capability"] != "pdf_extraction" {
		t.Fatalf("details = %+v", got.Details)
	}
}

func TestResponse(t *testing.T) {
	status, body := Response(NewMissingField("email_text"), "req-123")
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", status, http.StatusBadRequest)
	}
	if body.ErrorCode != string(ErrorCodeMissingField) {
		t.Fatalf("error_code = %q", body.ErrorCode)
	}
	if body.RequestID == nil || *body.RequestID != "req-123" {
		t.Fatalf("request_id = %v", body.RequestID)
	}

	status, body = Response(nil, "")
	if status != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", status, http.StatusInternalServerError)
	}
	if body.RequestID != nil {
		t.Fatalf("expected nil request_id, got %v", body.RequestID)
	}
}
