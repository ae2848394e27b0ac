package mariadb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fhuszti/videos-cdn-go/internal/model"
	"github.com/fhuszti/videos-cdn-go/internal/port"
	"github.com/fhuszti/videos-cdn-go/internal/usecase/video"
)

type CourseRepository struct {
	db *sql.DB
}

// compile-time check: *CourseRepository must satisfy port.CourseLocator
var _ port.CourseLocator = (*CourseRepository)(nil)

func NewCourseRepository(db *sql.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// Locate returns the course when it exists and the requester may author it.
// Staff may author every course; other users need a course_access row.
func (r *CourseRepository) Locate(ctx context.Context, courseKey string, requester model.Requester) (*model.Course, error) {
	const query = `SELECT course_key, display_name FROM courses WHERE course_key = ?`

	var c model.Course
	if err := r.db.QueryRowContext(ctx, query, courseKey).Scan(&c.Key, &c.DisplayName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", video.ErrCourseNotFound, courseKey)
		}
		return nil, err
	}

	if requester.Staff {
		return &c, nil
	}

	const access = `SELECT 1 FROM course_access WHERE course_key = ? AND user_id = ?`
	var one int
	if err := r.db.QueryRowContext(ctx, access, courseKey, requester.UserID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", video.ErrCourseNotFound, courseKey)
		}
		return nil, err
	}
	return &c, nil
}
