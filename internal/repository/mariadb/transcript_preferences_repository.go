package mariadb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fhuszti/videos-cdn-go/internal/model"
	"github.com/fhuszti/videos-cdn-go/internal/port"
)

type TranscriptPreferencesRepository struct {
	db *sql.DB
}

// compile-time check: *TranscriptPreferencesRepository must satisfy port.TranscriptPreferencesStore
var _ port.TranscriptPreferencesStore = (*TranscriptPreferencesRepository)(nil)

func NewTranscriptPreferencesRepository(db *sql.DB) *TranscriptPreferencesRepository {
	return &TranscriptPreferencesRepository{db: db}
}

// Get returns nil without error when the course has no preferences.
func (r *TranscriptPreferencesRepository) Get(ctx context.Context, courseKey string) (*model.TranscriptPreferences, error) {
	const query = `
      SELECT provider, cielo24_fidelity, cielo24_turnaround, three_play_turnaround, preferred_languages, video_source_language
      FROM transcript_preferences
      WHERE course_key = ?
    `
	var (
		p                                   model.TranscriptPreferences
		fidelity, cielo, threePlay, srcLang sql.NullString
		langs                               []byte
	)
	err := r.db.QueryRowContext(ctx, query, courseKey).Scan(
		&p.Provider, &fidelity, &cielo, &threePlay, &langs, &srcLang,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	p.CieloFidelity = fidelity.String
	p.CieloTurnaround = cielo.String
	p.ThreePlayTurnaround = threePlay.String
	p.VideoSourceLanguage = srcLang.String
	p.PreferredLanguages = []string{}
	if len(langs) > 0 {
		if err := json.Unmarshal(langs, &p.PreferredLanguages); err != nil {
			return nil, fmt.Errorf("preferred_languages of %q: %w", courseKey, err)
		}
	}
	return &p, nil
}
