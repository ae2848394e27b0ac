package mariadb

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/fhuszti/videos-cdn-go/internal/model"
	"github.com/fhuszti/videos-cdn-go/internal/port"
	"github.com/fhuszti/videos-cdn-go/internal/uuid"
)

type VideoRepository struct {
	db *sql.DB
}

// compile-time check: *VideoRepository must satisfy port.VideoCatalog
var _ port.VideoCatalog = (*VideoRepository)(nil)

func NewVideoRepository(db *sql.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

const videoColumns = `v.id, v.client_video_id, v.course_key, v.status, v.duration, v.encoded_videos, v.html5_sources, v.created_at, v.updated_at`

// Create inserts the video and attaches it to its course in one transaction.
func (r *VideoRepository) Create(ctx context.Context, v *model.Video) error {
	log.Printf("creating database record for video #%s, at status %q...", v.ID, v.Status)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	const insertVideo = `
      INSERT INTO videos
        (id, client_video_id, course_key, status, duration, encoded_videos, html5_sources)
      VALUES (?, ?, ?, ?, ?, ?, ?)
    `
	if _, err := tx.ExecContext(ctx, insertVideo,
		v.ID, v.ClientVideoID, v.CourseKey, v.Status, v.Duration, v.EncodedVideos, v.HTML5Sources,
	); err != nil {
		return err
	}

	const attach = `INSERT INTO course_videos (course_key, video_id) VALUES (?, ?)`
	if _, err := tx.ExecContext(ctx, attach, v.CourseKey, v.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *VideoRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	log.Printf("fetching video #%s from the database...", id)

	query := `SELECT ` + videoColumns + ` FROM videos v WHERE v.id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var v model.Video
	if err := scanVideo(row, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VideoRepository) ListByCourse(ctx context.Context, courseKey string) ([]*model.Video, error) {
	log.Printf("listing videos of course %q...", courseKey)

	query := `SELECT ` + videoColumns + `
      FROM videos v
      JOIN course_videos cv ON cv.video_id = v.id
      WHERE cv.course_key = ?
      ORDER BY v.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, courseKey)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	videos := []*model.Video{}
	for rows.Next() {
		var v model.Video
		if err := scanVideo(rows, &v); err != nil {
			return nil, err
		}
		videos = append(videos, &v)
	}
	return videos, rows.Err()
}

// RemoveForCourse detaches the video from the course. When no other course
// references it, the video row goes too and orphaned is true. Returns
// sql.ErrNoRows when the video is not attached to the course.
func (r *VideoRepository) RemoveForCourse(ctx context.Context, courseKey string, id uuid.UUID) (orphaned bool, err error) {
	log.Printf("removing video #%s from course %q...", id, courseKey)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback() }()

	const detach = `DELETE FROM course_videos WHERE course_key = ? AND video_id = ?`
	res, err := tx.ExecContext(ctx, detach, courseKey, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return false, sql.ErrNoRows
	}

	var remaining int
	const count = `SELECT COUNT(*) FROM course_videos WHERE video_id = ?`
	if err := tx.QueryRowContext(ctx, count, id).Scan(&remaining); err != nil {
		return false, err
	}
	if remaining == 0 {
		log.Printf("video #%s is no longer used by any course, deleting its record...", id)
		if _, err := tx.ExecContext(ctx, `DELETE FROM videos WHERE id = ?`, id); err != nil {
			return false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return remaining == 0, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanVideo(s scanner, v *model.Video) error {
	return s.Scan(
		&v.ID, &v.ClientVideoID, &v.CourseKey, &v.Status, &v.Duration,
		&v.EncodedVideos, &v.HTML5Sources, &v.CreatedAt, &v.UpdatedAt,
	)
}
