package bot

import (
	"sync"

	"github.com/milliybrend/reklama-bot/models"
	"github.com/milliybrend/reklama-bot/utils"
)

// Step is the customer intake pipeline position.
type Step int

const (
	StepIdle Step = iota
	StepSelectService
	StepAskCompany
	StepAskDescription
	StepAskSize
	StepAskAddress
	StepAskDeadline
	StepAskBudget
	StepAskFile
	StepAskName
	StepAskPhone
	StepConfirm
)

// Session is one customer's in-memory conversation state. The two awaiting
// flags are orthogonal to the step machine and preempt it while set. The
// draft is discarded on completion, restart or /start.
type Session struct {
	Step             Step
	Draft            models.Order
	DraftFiles       []models.FileRef
	AwaitingOrderID  bool
	AwaitingQuestion bool
}

// SessionStore keys customer sessions by Telegram user id. It is injected
// into the customer engine so tests can run isolated instances.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

// NewSessionStore creates an empty customer session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]*Session)}
}

// Get returns the session for a user, creating an idle one on first contact.
func (s *SessionStore) Get(userID int64) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[userID]
	if !ok {
		session = &Session{}
		s.sessions[userID] = session
	}
	return session
}

// Clear replaces a user's session with a fresh idle one.
func (s *SessionStore) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = &Session{}
}

// Has reports whether a session exists without creating one.
func (s *SessionStore) Has(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[userID]
	return ok
}

// AdminAwait tags what free-text input an admin session is waiting for.
// Holding a single enum instead of parallel booleans makes simultaneous
// waiting states unrepresentable.
type AdminAwait int

const (
	AwaitNone AdminAwait = iota
	AwaitSearch
	AwaitStatusOrderID
	AwaitBroadcastMessage
	AwaitBroadcastButtons
	AwaitServiceName
	AwaitCategoryName
	AwaitItemTitle
	AwaitItemDescription
	AwaitItemPhoto
	AwaitSettingValue
	AwaitWorkerID
	AwaitQuestionReply
)

// AdminSession is one admin's in-memory conversation state: the single
// awaiting tag plus the scratch fields of the in-progress edit.
type AdminSession struct {
	Await AdminAwait

	BroadcastMessage string
	BroadcastButtons []utils.ButtonSpec

	ItemCategory    string
	ItemTitle       string
	ItemDescription string

	SettingKey string
	QuestionID uint
}

// Arm switches the session to a new awaiting state. Scratch fields survive so
// multi-field flows (broadcast, portfolio item) can carry data between steps;
// starting an unrelated flow goes through Reset first.
func (s *AdminSession) Arm(await AdminAwait) {
	s.Await = await
}

// Reset returns the session to idle and drops all scratch state.
func (s *AdminSession) Reset() {
	*s = AdminSession{}
}

// AdminSessionStore keys admin sessions by Telegram user id.
type AdminSessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*AdminSession
}

// NewAdminSessionStore creates an empty admin session store.
func NewAdminSessionStore() *AdminSessionStore {
	return &AdminSessionStore{sessions: make(map[int64]*AdminSession)}
}

// Get returns the session for an admin, creating an idle one on first contact.
func (s *AdminSessionStore) Get(userID int64) *AdminSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[userID]
	if !ok {
		session = &AdminSession{}
		s.sessions[userID] = session
	}
	return session
}

// Clear replaces an admin's session with a fresh idle one.
func (s *AdminSessionStore) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = &AdminSession{}
}

// Has reports whether a session exists without creating one.
func (s *AdminSessionStore) Has(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[userID]
	return ok
}
