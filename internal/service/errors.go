package service

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a missing company, config, or document; the HTTP layer
// maps it to 404.
var ErrNotFound = errors.New("not found")

// ErrPublished is returned when a delete targets an already published post.
var ErrPublished = errors.New("published posts cannot be deleted")

// PlannerError reports a failed or unusable planner/text-generation call for
// one unit of a channel batch.
type PlannerError struct {
	Channel string
	Unit    int
	Err     error
}

func (e *PlannerError) Error() string {
	return fmt.Sprintf("planner failed for %s post %d: %v", e.Channel, e.Unit, e.Err)
}

func (e *PlannerError) Unwrap() error { return e.Err }

// ImageGenerationError reports a failed image generation or upload for one
// unit of a channel batch.
type ImageGenerationError struct {
	Channel string
	Unit    int
	Err     error
}

func (e *ImageGenerationError) Error() string {
	return fmt.Sprintf("image generation failed for %s post %d: %v", e.Channel, e.Unit, e.Err)
}

func (e *ImageGenerationError) Unwrap() error { return e.Err }
