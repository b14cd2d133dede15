package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// EventKind classifies one inbound chat event.
type EventKind int

const (
	EventCommand EventKind = iota
	EventText
	EventCallback
	EventPhoto
	EventDocument
	EventContact
)

// Event is the normalized inbound event both engines consume. Only the fields
// relevant to the kind are populated.
type Event struct {
	Kind     EventKind
	UserID   int64
	ChatID   int64
	Username string
	FullName string

	Command      string // EventCommand: name without the leading slash
	Text         string // EventCommand (full text) and EventText
	CallbackID   string // EventCallback: query id for acknowledgement
	CallbackData string // EventCallback: raw button token
	FileID       string // EventPhoto / EventDocument
	Phone        string // EventContact
}

// FromUpdate converts a Telegram update into an Event. The second return is
// false for update kinds the bot does not handle (edits, channel posts, ...).
func FromUpdate(update tgbotapi.Update) (Event, bool) {
	if cq := update.CallbackQuery; cq != nil && cq.From != nil {
		ev := Event{
			Kind:         EventCallback,
			UserID:       cq.From.ID,
			ChatID:       cq.From.ID,
			Username:     cq.From.UserName,
			FullName:     fullName(cq.From),
			CallbackID:   cq.ID,
			CallbackData: cq.Data,
		}
		if cq.Message != nil && cq.Message.Chat != nil {
			ev.ChatID = cq.Message.Chat.ID
		}
		return ev, true
	}

	msg := update.Message
	if msg == nil || msg.From == nil {
		return Event{}, false
	}

	ev := Event{
		UserID:   msg.From.ID,
		ChatID:   msg.Chat.ID,
		Username: msg.From.UserName,
		FullName: fullName(msg.From),
	}

	switch {
	case msg.Contact != nil:
		ev.Kind = EventContact
		ev.Phone = msg.Contact.PhoneNumber
	case len(msg.Photo) > 0:
		// The last entry is the largest rendition.
		ev.Kind = EventPhoto
		ev.FileID = msg.Photo[len(msg.Photo)-1].FileID
	case msg.Document != nil:
		ev.Kind = EventDocument
		ev.FileID = msg.Document.FileID
	case strings.HasPrefix(msg.Text, "/"):
		// Commands are parsed from the raw text rather than entities so
		// tokens like /open_MBR-1024 keep the hyphenated id intact.
		ev.Kind = EventCommand
		ev.Text = msg.Text
		name := strings.Fields(msg.Text)[0]
		name = strings.TrimPrefix(name, "/")
		if at := strings.Index(name, "@"); at != -1 {
			name = name[:at]
		}
		ev.Command = name
	case msg.Text != "":
		ev.Kind = EventText
		ev.Text = msg.Text
	default:
		return Event{}, false
	}

	return ev, true
}

func fullName(user *tgbotapi.User) string {
	return strings.TrimSpace(strings.TrimSpace(user.FirstName) + " " + strings.TrimSpace(user.LastName))
}
