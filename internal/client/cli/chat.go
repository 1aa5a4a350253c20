package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/mindcase/mindcase/internal/client/models"
)

// Chat sends a message; "chat new" starts a fresh conversation and
// "chat open <id>" resumes one.
func (a *App) Chat(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: chat <message> | chat new | chat open <id> | chat clear | chat delete <id>")
	}

	switch args[0] {
	case "new":
		c, err := a.state.Chat.NewChat(ctx)
		if err != nil {
			return err
		}
		a.printf("Started chat %s.\n", c.ID)
		return nil
	case "open":
		if len(args) < 2 {
			return errors.New("usage: chat open <id>")
		}
		c, err := a.state.Chat.Open(ctx, models.ID(args[1]))
		if err != nil {
			return err
		}
		for _, m := range c.Messages {
			a.printMessage(m)
		}
		return nil
	case "clear":
		c, ok := a.state.Chat.Active()
		if !ok {
			return errors.New("no open chat")
		}
		if err := a.state.Chat.Clear(ctx, c.ID); err != nil {
			return err
		}
		a.printf("Cleared.\n")
		return nil
	case "delete":
		if len(args) < 2 {
			return errors.New("usage: chat delete <id>")
		}
		if err := a.state.Chat.Delete(ctx, models.ID(args[1])); err != nil {
			return err
		}
		a.printf("Deleted.\n")
		return nil
	}

	reply, err := a.state.Chat.Send(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	a.printMessage(reply)
	return nil
}

func (a *App) printMessage(m models.ChatMessage) {
	who := "you"
	if m.Role == models.RoleAssistant {
		who = "mindcase"
	}
	a.printf("%s: %s\n", who, m.Content)
}

func (a *App) Chats(ctx context.Context) error {
	if err := a.state.Chat.LoadChats(ctx); err != nil {
		return err
	}
	chats := a.state.Chat.Chats()
	if len(chats) == 0 {
		a.printf("No chats yet. Say hello with 'chat <message>'.\n")
		return nil
	}
	for _, c := range chats {
		a.printf("%-36s %s  %s (%d messages)\n", c.ID, formatTime(c.UpdatedAt), c.Title, len(c.Messages))
	}
	return nil
}
