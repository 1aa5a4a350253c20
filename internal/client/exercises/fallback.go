package exercises

import "github.com/mindcase/mindcase/internal/client/models"

var fallback = []models.Exercise{
	{Title: "Box Breathing", Type: "breathing", Description: "Inhale 4s, hold 4s, exhale 4s, hold 4s."},
	{Title: "1-Minute Mindfulness", Type: "mindfulness", Description: "Observe surroundings & breathing for one minute."},
	{Title: "Body Scan", Type: "relaxation", Description: "Mentally scan each part of your body and relax."},
}

// Fallback returns the bundled exercises. The slice is a copy.
func Fallback() []models.Exercise {
	out := make([]models.Exercise, len(fallback))
	copy(out, fallback)
	return out
}
