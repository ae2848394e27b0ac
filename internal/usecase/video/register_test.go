package video

import (
	"context"
	"errors"
	"testing"

	"github.com/fhuszti/videos-cdn-go/internal/mock"
	"github.com/fhuszti/videos-cdn-go/internal/model"
	"github.com/fhuszti/videos-cdn-go/internal/uuid"
)

func TestRegister_DefaultStrategy(t *testing.T) {
	catalog := &mock.VideoCatalog{}
	r := NewRegistrar(catalog, Strategy{RootPath: "videos"})
	id := uuid.NewUUID()

	v, err := r.Register(context.Background(), id, courseKey, "clip.mp4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(catalog.Created) != 1 || catalog.Created[0] != v {
		t.Fatalf("expected one catalog write, got %d", len(catalog.Created))
	}
	if v.ID != id || v.Status != model.VideoStatusUpload || v.ClientVideoID != "clip.mp4" || v.CourseKey != courseKey {
		t.Errorf("unexpected entry: %+v", v)
	}
	if len(v.HTML5Sources) != 0 {
		t.Errorf("HTML5Sources = %v; want none without CDN", v.HTML5Sources)
	}
}

func TestRegister_CDNStrategy(t *testing.T) {
	catalog := &mock.VideoCatalog{}
	r := NewRegistrar(catalog, Strategy{RootPath: "videos", CDNEnabled: true, CDNHost: "https://cdn.example.com"})
	id := uuid.NewUUID()

	v, err := r.Register(context.Background(), id, courseKey, "clip.mp4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "https://cdn.example.com/videos/" + id.String()
	if len(v.HTML5Sources) != 1 || v.HTML5Sources[0] != want {
		t.Errorf("HTML5Sources = %v; want [%s]", v.HTML5Sources, want)
	}
}

func TestRegister_CatalogError(t *testing.T) {
	catalog := &mock.VideoCatalog{CreateErr: errors.New("duplicate")}
	r := NewRegistrar(catalog, Strategy{})

	if _, err := r.Register(context.Background(), uuid.NewUUID(), courseKey, "clip.mp4"); !errors.Is(err, ErrCatalogWrite) {
		t.Fatalf("expected ErrCatalogWrite, got %v", err)
	}
}
