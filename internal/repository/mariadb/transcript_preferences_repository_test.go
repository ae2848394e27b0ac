package mariadb

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

var prefColumns = []string{
	"provider", "cielo24_fidelity", "cielo24_turnaround", "three_play_turnaround", "preferred_languages", "video_source_language",
}

func TestTranscriptPreferencesRepository_Get(t *testing.T) {
	sqlDB, mock := newMock(t)
	repo := NewTranscriptPreferencesRepository(sqlDB)

	mock.ExpectQuery("FROM transcript_preferences").WithArgs(courseKey).WillReturnRows(
		sqlmock.NewRows(prefColumns).AddRow("Cielo24", "PROFESSIONAL", "PRIORITY", nil, []byte(`["en","ar"]`), "en"),
	)

	p, err := repo.Get(context.Background(), courseKey)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if p == nil || p.Provider != "Cielo24" || p.CieloFidelity != "PROFESSIONAL" || p.ThreePlayTurnaround != "" {
		t.Fatalf("unexpected preferences: %+v", p)
	}
	if !reflect.DeepEqual(p.PreferredLanguages, []string{"en", "ar"}) {
		t.Errorf("PreferredLanguages = %v", p.PreferredLanguages)
	}
}

func TestTranscriptPreferencesRepository_GetNone(t *testing.T) {
	sqlDB, mock := newMock(t)
	repo := NewTranscriptPreferencesRepository(sqlDB)

	mock.ExpectQuery("FROM transcript_preferences").WithArgs(courseKey).WillReturnRows(sqlmock.NewRows(prefColumns))

	p, err := repo.Get(context.Background(), courseKey)
	if err != nil || p != nil {
		t.Fatalf("expected nil, nil; got %+v, %v", p, err)
	}
}

func TestTranscriptPreferencesRepository_GetError(t *testing.T) {
	sqlDB, mock := newMock(t)
	repo := NewTranscriptPreferencesRepository(sqlDB)

	mock.ExpectQuery("FROM transcript_preferences").WillReturnError(errors.New("timeout"))

	if _, err := repo.Get(context.Background(), courseKey); err == nil {
		t.Fatal("expected error")
	}
}
