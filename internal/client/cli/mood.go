package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/mindcase/mindcase/internal/client/models"
	"github.com/mindcase/mindcase/internal/client/services"
)

func (a *App) Moods(ctx context.Context) error {
	if err := a.state.Moods.Load(ctx); err != nil {
		return err
	}
	items := a.state.Moods.Items()
	if len(items) == 0 {
		a.printf("No moods logged yet. Try: mood calm\n")
		return nil
	}
	if today, ok := a.state.Moods.Today(a.now()); ok {
		a.printf("Today: %s\n", today.MoodType)
	}
	for _, m := range items {
		a.printf("%-10s %-10s %s\n", m.ID, m.MoodType, formatTime(m.CreatedAt))
	}
	return nil
}

// SetMood logs today's mood, replacing an earlier check-in from today.
func (a *App) SetMood(ctx context.Context, args []string) error {
	if len(args) == 0 {
		names := make([]string, 0, len(models.MoodTypes))
		for _, m := range models.MoodTypes {
			names = append(names, string(m))
		}
		return errors.New("usage: mood <" + strings.Join(names, "|") + ">")
	}
	mood, err := models.ParseMoodType(args[0])
	if err != nil {
		return err
	}
	// today's entry is looked up in the loaded list
	if len(a.state.Moods.Items()) == 0 {
		if err := a.state.Moods.Load(ctx); err != nil {
			return err
		}
	}

	out, err := a.state.Moods.SetToday(ctx, mood)
	if err != nil {
		return err
	}
	switch out {
	case services.MoodCreated:
		a.printf("Logged %s for today.\n", mood)
	case services.MoodUpdated:
		a.printf("Updated today's mood to %s.\n", mood)
	default:
		a.printf("Today's mood is already %s.\n", mood)
	}
	return nil
}
