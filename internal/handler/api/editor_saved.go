package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fhuszti/videos-cdn-go/internal/port"
)

// EditorSavedHandler runs the post-save steps on a video block sent by the
// host editor and returns the adjusted block.
func EditorSavedHandler(svc port.VideoPostProcessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in port.PostProcessInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		block, err := svc.PostProcess(r.Context(), in)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not process video block", err)
			return
		}

		RespondJSON(w, http.StatusOK, block)
	}
}
