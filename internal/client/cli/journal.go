package cli

import (
	"context"
	"errors"

	"github.com/mindcase/mindcase/internal/client/models"
)

var getMultiline = GetMultiline

func (a *App) Journals(ctx context.Context) error {
	if err := a.state.Journals.Load(ctx); err != nil {
		return err
	}
	items := a.state.Journals.Items()
	if len(items) == 0 {
		a.printf("Your journal is empty. Use 'journal' to write an entry.\n")
		return nil
	}
	for _, j := range items {
		a.printf("%-10s %s  %s\n", j.ID, formatTime(j.CreatedAt), j.Title)
	}
	return nil
}

func (a *App) NewJournal(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	text, err := getMultiline(a.reader, "What's on your mind?", a.out)
	if err != nil {
		return err
	}
	entry, err := a.state.Journals.Create(ctx, models.JournalInput{Title: title, Text: text})
	if err != nil {
		return err
	}
	a.printf("Saved entry %s.\n", entry.ID)
	return nil
}

// EditJournal re-prompts both fields; empty answers keep the current value.
func (a *App) EditJournal(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: editjournal <id>")
	}
	id := models.ID(args[0])
	cur, ok := a.state.Journals.Get(id)
	if !ok {
		if err := a.state.Journals.Load(ctx); err != nil {
			return err
		}
		if cur, ok = a.state.Journals.Get(id); !ok {
			return errors.New("no journal entry " + args[0])
		}
	}

	title, err := getSimpleText(a.reader, "Title ["+cur.Title+"]", a.out)
	if err != nil {
		return err
	}
	if title == "" {
		title = cur.Title
	}
	text, err := getMultiline(a.reader, "Text (empty keeps the current text)", a.out)
	if err != nil {
		return err
	}
	if text == "" {
		text = cur.Text
	}

	if err := a.state.Journals.Update(ctx, id, models.JournalInput{Title: title, Text: text}); err != nil {
		return err
	}
	a.printf("Updated.\n")
	return nil
}

func (a *App) DeleteJournal(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: deljournal <id>")
	}
	if err := a.state.Journals.Delete(ctx, models.ID(args[0])); err != nil {
		return err
	}
	a.printf("Deleted.\n")
	return nil
}
