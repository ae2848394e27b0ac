package mock

import (
	"context"

	"github.com/fhuszti/videos-cdn-go/internal/model"
	"github.com/fhuszti/videos-cdn-go/internal/uuid"
)

// VideoCatalog implements port.VideoCatalog for tests.
type VideoCatalog struct {
	// stored values
	GetOut  *model.Video
	ListOut []*model.Video
	// KeepShared reports the removed video as still used by another course.
	KeepShared bool

	// captured inputs
	Created   []*model.Video
	GetID     uuid.UUID
	ListKey   string
	RemovedID uuid.UUID
	RemoveKey string

	// errors
	CreateErr error
	// CreateErrAt fails the n-th Create call (1-based) when CreateErr is set.
	CreateErrAt int
	GetErr      error
	ListErr     error
	RemoveErr   error

	// call flags
	CreateCalls  int
	GetCalled    bool
	ListCalled   bool
	RemoveCalled bool
}

func (m *VideoCatalog) Create(ctx context.Context, v *model.Video) error {
	m.CreateCalls++
	if m.CreateErr != nil && (m.CreateErrAt == 0 || m.CreateErrAt == m.CreateCalls) {
		return m.CreateErr
	}
	m.Created = append(m.Created, v)
	return nil
}

func (m *VideoCatalog) GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	m.GetCalled = true
	m.GetID = id
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.GetOut, nil
}

func (m *VideoCatalog) ListByCourse(ctx context.Context, courseKey string) ([]*model.Video, error) {
	m.ListCalled = true
	m.ListKey = courseKey
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListOut, nil
}

func (m *VideoCatalog) RemoveForCourse(ctx context.Context, courseKey string, id uuid.UUID) (bool, error) {
	m.RemoveCalled = true
	m.RemoveKey = courseKey
	m.RemovedID = id
	if m.RemoveErr != nil {
		return false, m.RemoveErr
	}
	return !m.KeepShared, nil
}
