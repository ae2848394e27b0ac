package mariadb

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fhuszti/videos-cdn-go/internal/model"
	"github.com/fhuszti/videos-cdn-go/internal/usecase/video"
)

func courseRow() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"course_key", "display_name"}).AddRow(courseKey, "Intro")
}

func TestCourseRepository_Locate_Staff(t *testing.T) {
	sqlDB, mock := newMock(t)
	repo := NewCourseRepository(sqlDB)

	mock.ExpectQuery("FROM courses WHERE course_key = ?").WithArgs(courseKey).WillReturnRows(courseRow())

	c, err := repo.Locate(context.Background(), courseKey, model.Requester{UserID: "1", Staff: true})
	if err != nil {
		t.Fatalf("Locate() error: %v", err)
	}
	if c.Key != courseKey || c.DisplayName != "Intro" {
		t.Errorf("unexpected course: %+v", c)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestCourseRepository_Locate_NotFound(t *testing.T) {
	sqlDB, mock := newMock(t)
	repo := NewCourseRepository(sqlDB)

	mock.ExpectQuery("FROM courses").WithArgs(courseKey).WillReturnRows(sqlmock.NewRows([]string{"course_key", "display_name"}))

	if _, err := repo.Locate(context.Background(), courseKey, model.Requester{Staff: true}); !errors.Is(err, video.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestCourseRepository_Locate_Author(t *testing.T) {
	sqlDB, mock := newMock(t)
	repo := NewCourseRepository(sqlDB)

	mock.ExpectQuery("FROM courses").WithArgs(courseKey).WillReturnRows(courseRow())
	mock.ExpectQuery("FROM course_access").WithArgs(courseKey, "42").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	if _, err := repo.Locate(context.Background(), courseKey, model.Requester{UserID: "42"}); err != nil {
		t.Fatalf("Locate() error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestCourseRepository_Locate_NoAccess(t *testing.T) {
	sqlDB, mock := newMock(t)
	repo := NewCourseRepository(sqlDB)

	mock.ExpectQuery("FROM courses").WithArgs(courseKey).WillReturnRows(courseRow())
	mock.ExpectQuery("FROM course_access").WithArgs(courseKey, "42").
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	if _, err := repo.Locate(context.Background(), courseKey, model.Requester{UserID: "42"}); !errors.Is(err, video.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestCourseRepository_Locate_DBError(t *testing.T) {
	sqlDB, mock := newMock(t)
	repo := NewCourseRepository(sqlDB)

	mock.ExpectQuery("FROM courses").WillReturnError(errors.New("conn refused"))

	_, err := repo.Locate(context.Background(), courseKey, model.Requester{Staff: true})
	if err == nil || errors.Is(err, video.ErrCourseNotFound) {
		t.Fatalf("expected raw db error, got %v", err)
	}
}
