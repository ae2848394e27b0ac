package integration

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/fhuszti/videos-cdn-go/internal/model"
	"github.com/fhuszti/videos-cdn-go/internal/repository/mariadb"
	"github.com/fhuszti/videos-cdn-go/internal/usecase/video"
	"github.com/fhuszti/videos-cdn-go/internal/uuid"
)

const courseKey = "course-v1:edX+DemoX+Demo_Course"

func TestVideoRepositoryIntegration(t *testing.T) {
	db := migratedDB(t)
	seedCourse(t, db, courseKey)
	repo := mariadb.NewVideoRepository(db)
	ctx := context.Background()

	first := model.NewPendingVideo(uuid.NewUUID(), courseKey, "a.mp4", "")
	second := model.NewPendingVideo(uuid.NewUUID(), courseKey, "b.mp4", "https://cdn.example.com/videos/x")
	for _, v := range []*model.Video{first, second} {
		if err := repo.Create(ctx, v); err != nil {
			t.Fatalf("Create(%s): %v", v.ClientVideoID, err)
		}
	}

	got, err := repo.GetByID(ctx, second.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != model.VideoStatusUpload || got.Duration != 0 || len(got.EncodedVideos) != 0 {
		t.Errorf("unexpected pending video %+v", got)
	}
	if len(got.HTML5Sources) != 1 || got.HTML5Sources[0] != "https://cdn.example.com/videos/x" {
		t.Errorf("html5_sources = %v", got.HTML5Sources)
	}

	list, err := repo.ListByCourse(ctx, courseKey)
	if err != nil {
		t.Fatalf("ListByCourse: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 videos, got %d", len(list))
	}

	orphaned, err := repo.RemoveForCourse(ctx, courseKey, first.ID)
	if err != nil {
		t.Fatalf("RemoveForCourse: %v", err)
	}
	if !orphaned {
		t.Error("a video used by a single course must be reported orphaned")
	}
	if _, err := repo.GetByID(ctx, first.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("GetByID after removal: got %v; want sql.ErrNoRows", err)
	}
	if _, err := repo.RemoveForCourse(ctx, courseKey, first.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("second removal: got %v; want sql.ErrNoRows", err)
	}
	list, err = repo.ListByCourse(ctx, courseKey)
	if err != nil {
		t.Fatalf("ListByCourse: %v", err)
	}
	if len(list) != 1 || list[0].ID != second.ID {
		t.Errorf("after removal got %+v", list)
	}
}

func TestSharedVideoRemovalIntegration(t *testing.T) {
	const otherCourse = "course-v1:edX+Other+2024"
	db := migratedDB(t)
	seedCourse(t, db, courseKey)
	seedCourse(t, db, otherCourse)
	repo := mariadb.NewVideoRepository(db)
	ctx := context.Background()

	v := model.NewPendingVideo(uuid.NewUUID(), courseKey, "shared.mp4", "")
	if err := repo.Create(ctx, v); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO course_videos (course_key, video_id) VALUES (?, ?)`, otherCourse, v.ID); err != nil {
		t.Fatalf("attach to second course: %v", err)
	}

	orphaned, err := repo.RemoveForCourse(ctx, courseKey, v.ID)
	if err != nil {
		t.Fatalf("RemoveForCourse: %v", err)
	}
	if orphaned {
		t.Error("video still used by another course reported orphaned")
	}
	if _, err := repo.GetByID(ctx, v.ID); err != nil {
		t.Errorf("shared video row must stay: %v", err)
	}
	list, err := repo.ListByCourse(ctx, otherCourse)
	if err != nil {
		t.Fatalf("ListByCourse: %v", err)
	}
	if len(list) != 1 || list[0].ID != v.ID {
		t.Errorf("other course lost its video: %+v", list)
	}
}

func TestCourseRepositoryIntegration(t *testing.T) {
	db := migratedDB(t)
	seedCourse(t, db, courseKey)
	if _, err := db.Exec(`INSERT INTO course_access (course_key, user_id) VALUES (?, ?)`, courseKey, "author-1"); err != nil {
		t.Fatalf("seed access: %v", err)
	}
	repo := mariadb.NewCourseRepository(db)
	ctx := context.Background()

	tests := []struct {
		name      string
		key       string
		requester model.Requester
		wantErr   error
	}{
		{"staff", courseKey, model.Requester{UserID: "admin", Staff: true}, nil},
		{"author with access", courseKey, model.Requester{UserID: "author-1"}, nil},
		{"author without access", courseKey, model.Requester{UserID: "author-2"}, video.ErrCourseNotFound},
		{"unknown course", "course-v1:edX+Nope+2024", model.Requester{Staff: true}, video.ErrCourseNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := repo.Locate(ctx, tc.key, tc.requester)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("got %v; want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Locate: %v", err)
			}
			if c.Key != tc.key || c.DisplayName != "Demo course" {
				t.Errorf("course = %+v", c)
			}
		})
	}
}

func TestTranscriptPreferencesRepositoryIntegration(t *testing.T) {
	db := migratedDB(t)
	repo := mariadb.NewTranscriptPreferencesRepository(db)
	ctx := context.Background()

	prefs, err := repo.Get(ctx, courseKey)
	if err != nil || prefs != nil {
		t.Fatalf("expected no preferences, got %+v (err=%v)", prefs, err)
	}

	_, err = db.Exec(`INSERT INTO transcript_preferences (course_key, provider, cielo24_fidelity, preferred_languages)
		VALUES (?, 'Cielo24', 'PROFESSIONAL', '["en","fr"]')`, courseKey)
	if err != nil {
		t.Fatalf("seed preferences: %v", err)
	}

	prefs, err = repo.Get(ctx, courseKey)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if prefs == nil || prefs.Provider != "Cielo24" || prefs.CieloFidelity != "PROFESSIONAL" || len(prefs.PreferredLanguages) != 2 {
		t.Errorf("preferences = %+v", prefs)
	}
}
