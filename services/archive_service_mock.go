package services

import (
	"fmt"
	"sync"

	"github.com/milliybrend/reklama-bot/models"
)

// MockArchiveService is an in-memory ArchiveInterface for testing.
type MockArchiveService struct {
	mu       sync.Mutex
	archived map[string][]models.FileRef // order id -> refs
	failAll  bool
}

// NewMockArchiveService creates an empty mock archive.
func NewMockArchiveService() *MockArchiveService {
	return &MockArchiveService{archived: make(map[string][]models.FileRef)}
}

// FailAll makes every archive call fail.
func (m *MockArchiveService) FailAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failAll = true
}

// ArchiveOrderFiles records the refs and returns deterministic keys.
func (m *MockArchiveService) ArchiveOrderFiles(orderID string, refs []models.FileRef) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return nil, fmt.Errorf("mock archive failure for %s", orderID)
	}
	m.archived[orderID] = refs
	keys := make([]string, len(refs))
	for i, ref := range refs {
		keys[i] = fmt.Sprintf("orders/%s/%d_%s", orderID, i, ref.FileID)
	}
	return keys, nil
}

// GetPresignedURL returns a deterministic fake URL.
func (m *MockArchiveService) GetPresignedURL(key string) (string, error) {
	if key == "" {
		return "", nil
	}
	return "https://archive.example.test/" + key, nil
}

// Archived returns the refs recorded for one order.
func (m *MockArchiveService) Archived(orderID string) []models.FileRef {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.archived[orderID]
}
