package factory

import (
	"time"

	"github.com/mcoot/royalsquare/internal/dependencies/mocks"
	"github.com/mcoot/royalsquare/internal/storage"
	"github.com/mcoot/royalsquare/internal/storage/memory"
	"github.com/mcoot/royalsquare/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	return NewTestAppWithStorage(memory.New())
}

// NewTestAppWithStorage creates a test App on top of the given storage backend
func NewTestAppWithStorage(store storage.Storage) *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// TestWords is a small dictionary that supports the worked example game
var TestWords = []string{
	"игра", "слово", "ар", "год", "дом", "сон", "нос", "сад", "ад",
	"да", "мир", "рог", "гора", "арка",
}

// LoadTestDictionary loads a small dictionary for testing
func (t *TestApp) LoadTestDictionary() error {
	return t.DictionaryService.LoadWords(TestWords)
}
