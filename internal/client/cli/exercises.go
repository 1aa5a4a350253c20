package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/mindcase/mindcase/internal/client/exercises"
	"github.com/mindcase/mindcase/internal/client/models"
)

// Exercises browses the catalog: exercises [muscle] [type].
func (a *App) Exercises(ctx context.Context, args []string) error {
	var f exercises.Filter
	if len(args) > 0 {
		f.Muscle = args[0]
	}
	if len(args) > 1 {
		f.Type = args[1]
	}

	view, err := a.state.Exercises.Browse(ctx, f)
	switch {
	case view.Empty:
		a.printf("No exercises matched; here are some offline suggestions.\n")
	case view.Fallback && err == nil:
		a.printf("The catalog is unavailable right now; here are some offline exercises.\n")
	case view.Fallback:
		a.printf("Could not load the catalog (%v). Offline exercises:\n", err)
	case view.FromCache:
		a.printf("(cached)\n")
	}
	for _, e := range view.Items {
		a.printExercise(e)
	}
	return nil
}

func (a *App) printExercise(e models.Exercise) {
	star := " "
	if a.state.Favorites.IsFavorite(e.Identity()) {
		star = "*"
	}
	details := strings.Join(nonEmpty(e.Type, e.Muscle, e.Difficulty), ", ")
	a.printf("%s %s", star, e.Identity())
	if details != "" {
		a.printf(" (%s)", details)
	}
	a.printf("\n")
	if e.Description != "" {
		a.printf("    %s\n", e.Description)
	}
}

// Favorite toggles the named exercise from the last listing.
func (a *App) Favorite(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: fav <exercise name>")
	}
	name := strings.Join(args, " ")

	ex, ok := a.state.Exercises.Find(name)
	if !ok {
		for _, f := range a.state.Favorites.Items() {
			if f.Identity() == name {
				ex, ok = f, true
				break
			}
		}
	}
	if !ok {
		return errors.New("unknown exercise " + name + ", list them with 'exercises' first")
	}

	added, err := a.state.Favorites.Toggle(ctx, ex)
	if err != nil {
		return err
	}
	if added {
		a.printf("Added %s to favorites.\n", name)
	} else {
		a.printf("Removed %s from favorites.\n", name)
	}
	return nil
}

func (a *App) Favorites(ctx context.Context) error {
	items := a.state.Favorites.Items()
	if len(items) == 0 {
		a.printf("No favorites yet. Use 'fav <name>' on a listed exercise.\n")
		return nil
	}
	for _, e := range items {
		a.printExercise(e)
	}
	return nil
}

func nonEmpty(ss ...string) []string {
	out := ss[:0]
	for _, s := range ss {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
