package task

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
)

func TestPurgeObjectTask(t *testing.T) {
	tk, err := NewPurgeObjectTask("videos/abc")
	if err != nil {
		t.Fatalf("NewPurgeObjectTask: %v", err)
	}
	if tk.Type() != TypePurgeObject {
		t.Errorf("Type = %q", tk.Type())
	}
	p, err := ParsePurgeObjectPayload(tk)
	if err != nil {
		t.Fatalf("ParsePurgeObjectPayload: %v", err)
	}
	if p.ObjectKey != "videos/abc" {
		t.Errorf("ObjectKey = %q", p.ObjectKey)
	}
}

func TestParsePurgeObjectPayload_Invalid(t *testing.T) {
	if _, err := ParsePurgeObjectPayload(asynq.NewTask(TypePurgeObject, []byte("{"))); err == nil {
		t.Fatal("expected error")
	}
}

type fakeEnqueuer struct {
	task *asynq.Task
	err  error
}

func (f *fakeEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	f.task = task
	if f.err != nil {
		return nil, f.err
	}
	return &asynq.TaskInfo{Type: task.Type()}, nil
}

func TestDispatcher_EnqueuePurgeObject(t *testing.T) {
	fe := &fakeEnqueuer{}
	d := &Dispatcher{client: fe}

	if err := d.EnqueuePurgeObject(context.Background(), "videos/abc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fe.task == nil || fe.task.Type() != TypePurgeObject {
		t.Fatalf("enqueued task = %v", fe.task)
	}

	fe.err = errors.New("redis down")
	if err := d.EnqueuePurgeObject(context.Background(), "videos/abc"); err == nil {
		t.Fatal("expected enqueue error")
	}
}
