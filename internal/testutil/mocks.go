package testutil

import (
	"contestbot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockRegistry is a mock for repository.Registry
type MockRegistry struct {
	mock.Mock
}

func (m *MockRegistry) LoadAll() ([]domain.Submission, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Submission), args.Error(1)
}

func (m *MockRegistry) Append(rec domain.Submission) error {
	args := m.Called(rec)
	return args.Error(0)
}

// MockMessenger is a mock for service.Messenger
type MockMessenger struct {
	mock.Mock
}

func (m *MockMessenger) Send(chatID int64, text string) error {
	args := m.Called(chatID, text)
	return args.Error(0)
}

func (m *MockMessenger) Forward(chatID, fromChatID int64, messageID int) error {
	args := m.Called(chatID, fromChatID, messageID)
	return args.Error(0)
}

// MockFetcher is a mock for service.Fetcher
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Fetch(fileID, dest string) error {
	args := m.Called(fileID, dest)
	return args.Error(0)
}
