package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/fhuszti/videos-cdn-go/internal/mock"
	"github.com/fhuszti/videos-cdn-go/internal/task"
)

func TestPurgeObjectHandler_InvalidPayload(t *testing.T) {
	svc := &mock.MockUploadPurger{}
	err := PurgeObjectHandler(context.Background(), task.PurgeObjectPayload{}, svc)
	if err == nil {
		t.Fatal("expected error for empty object key")
	}
	if svc.Called {
		t.Error("service should not be called on invalid payload")
	}
}

func TestPurgeObjectHandler_ServiceError(t *testing.T) {
	svcErr := errors.New("svc fail")
	svc := &mock.MockUploadPurger{Err: svcErr}

	err := PurgeObjectHandler(context.Background(), task.PurgeObjectPayload{ObjectKey: "videos/abc"}, svc)
	if !errors.Is(err, svcErr) {
		t.Fatalf("got error %v; want %v", err, svcErr)
	}
	if !svc.Called {
		t.Error("service not called")
	}
}

func TestPurgeObjectHandler_Success(t *testing.T) {
	svc := &mock.MockUploadPurger{}

	if err := PurgeObjectHandler(context.Background(), task.PurgeObjectPayload{ObjectKey: "videos/abc"}, svc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.Key != "videos/abc" {
		t.Errorf("service got key %q", svc.Key)
	}
}
