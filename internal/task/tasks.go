package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const TypePurgeObject = "video:purge_object"

type PurgeObjectPayload struct {
	ObjectKey string `json:"object_key" validate:"required"`
}

// NewPurgeObjectTask creates an Asynq task removing an uploaded object.
func NewPurgeObjectTask(objectKey string) (*asynq.Task, error) {
	p := PurgeObjectPayload{ObjectKey: objectKey}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal purge-object payload: %w", err)
	}
	return asynq.NewTask(TypePurgeObject, data, asynq.MaxRetry(5)), nil
}

// ParsePurgeObjectPayload parses the task payload to PurgeObjectPayload.
func ParsePurgeObjectPayload(t *asynq.Task) (PurgeObjectPayload, error) {
	var p PurgeObjectPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return PurgeObjectPayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}
