package bot

import (
	"strconv"
	"strings"
)

// Update is the subset of a Telegram webhook update the bot reads.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *message `json:"message"`
}

type message struct {
	Chat     chat      `json:"chat"`
	From     *user     `json:"from"`
	Text     string    `json:"text"`
	Caption  string    `json:"caption"`
	Contact  *contact  `json:"contact"`
	Photo    []photo   `json:"photo"`
	Document *document `json:"document"`
}

type chat struct {
	ID int64 `json:"id"`
}

type user struct {
	ID           int64  `json:"id"`
	LanguageCode string `json:"language_code"`
}

type contact struct {
	PhoneNumber string `json:"phone_number"`
	UserID      int64  `json:"user_id"`
}

type photo struct {
	FileID   string `json:"file_id"`
	FileSize int    `json:"file_size"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

type document struct {
	FileID   string `json:"file_id"`
	MimeType string `json:"mime_type"`
}

// Event converts an update into an inbound Event. ok is false for updates
// the bot does not act on (edits, channel posts, stickers).
func (u Update) Event() (Event, bool) {
	m := u.Message
	if m == nil || m.Chat.ID == 0 {
		return Event{}, false
	}

	ev := Event{
		ConversationID: strconv.FormatInt(m.Chat.ID, 10),
		Text:           m.Text,
	}
	if m.From != nil {
		ev.LanguageCode = m.From.LanguageCode
	}

	if m.Contact != nil {
		ev.Contact = &Contact{PhoneNumber: m.Contact.PhoneNumber}
		if m.Contact.UserID != 0 {
			ev.Contact.OwnerID = strconv.FormatInt(m.Contact.UserID, 10)
		}
	}

	if fileID := imageFileID(m); fileID != "" {
		ev.Image = &ImageRef{FileID: fileID, Caption: m.Caption}
	}

	if ev.empty() {
		return Event{}, false
	}
	return ev, true
}

// imageFileID picks the largest photo size, or an image sent as a file.
func imageFileID(m *message) string {
	if len(m.Photo) > 0 {
		best := m.Photo[0]
		for _, p := range m.Photo[1:] {
			if p.Width*p.Height > best.Width*best.Height {
				best = p
			}
		}
		return best.FileID
	}
	if m.Document != nil && strings.HasPrefix(m.Document.MimeType, "image/") {
		return m.Document.FileID
	}
	return ""
}
