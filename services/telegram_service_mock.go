package services

import (
	"fmt"
	"sync"
)

// SentMessage is one outbound message recorded by the mock sender.
type SentMessage struct {
	ChatID   int64
	Text     string
	PhotoID  string
	Caption  string
	Keyboard interface{}
}

// MockSender is an in-memory Sender for testing. It records every send and
// can be told to fail for specific chat ids.
type MockSender struct {
	mu        sync.Mutex
	messages  []SentMessage
	answered  []string
	failChats map[int64]bool
	failPhoto map[int64]bool
}

// NewMockSender creates an empty mock sender.
func NewMockSender() *MockSender {
	return &MockSender{
		failChats: make(map[int64]bool),
		failPhoto: make(map[int64]bool),
	}
}

// FailFor makes every subsequent send to the given chat fail.
func (m *MockSender) FailFor(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failChats[chatID] = true
}

// FailPhotosFor makes only photo sends to the given chat fail, so tests can
// exercise the image-to-text degradation path.
func (m *MockSender) FailPhotosFor(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failPhoto[chatID] = true
}

// SendMessage records a text send or fails if the chat is marked failing.
func (m *MockSender) SendMessage(chatID int64, text string, keyboard interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failChats[chatID] {
		return fmt.Errorf("mock delivery failure to %d", chatID)
	}
	m.messages = append(m.messages, SentMessage{ChatID: chatID, Text: text, Keyboard: keyboard})
	return nil
}

// SendPhoto records a photo send or fails if the chat is marked failing.
func (m *MockSender) SendPhoto(chatID int64, fileID, caption string, keyboard interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failChats[chatID] || m.failPhoto[chatID] {
		return fmt.Errorf("mock photo delivery failure to %d", chatID)
	}
	m.messages = append(m.messages, SentMessage{ChatID: chatID, PhotoID: fileID, Caption: caption, Keyboard: keyboard})
	return nil
}

// AnswerCallback records a callback acknowledgement.
func (m *MockSender) AnswerCallback(callbackID, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.answered = append(m.answered, callbackID)
	return nil
}

// FileURL returns a deterministic fake URL.
func (m *MockSender) FileURL(fileID string) (string, error) {
	return "https://files.example.test/" + fileID, nil
}

// Messages returns a copy of everything sent so far.
func (m *MockSender) Messages() []SentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentMessage, len(m.messages))
	copy(out, m.messages)
	return out
}

// MessagesTo returns everything sent to one chat.
func (m *MockSender) MessagesTo(chatID int64) []SentMessage {
	var out []SentMessage
	for _, msg := range m.Messages() {
		if msg.ChatID == chatID {
			out = append(out, msg)
		}
	}
	return out
}

// LastMessageTo returns the most recent message sent to one chat, or nil.
func (m *MockSender) LastMessageTo(chatID int64) *SentMessage {
	msgs := m.MessagesTo(chatID)
	if len(msgs) == 0 {
		return nil
	}
	return &msgs[len(msgs)-1]
}

// Reset clears all recorded traffic and failure marks.
func (m *MockSender) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = nil
	m.answered = nil
	m.failChats = make(map[int64]bool)
	m.failPhoto = make(map[int64]bool)
}
