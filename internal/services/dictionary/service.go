package dictionary

import (
	"bufio"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mcoot/royalsquare/internal/model"
	"github.com/mcoot/royalsquare/internal/storage"
)

//go:embed default_words.txt
var defaultWordList string

// DefaultWords returns the word list seeded when no dictionary exists yet
func DefaultWords() []string {
	words, _ := parseWords(strings.NewReader(defaultWordList))
	return words
}

// Service loads the dictionary and hands out the current Index
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu    sync.RWMutex
	index *Index
}

// New creates a new DictionaryService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// LoadFromStorage loads dictionary words from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetDictionaryWords(ctx)
	if err != nil {
		return err
	}
	return s.LoadWords(words)
}

// LoadFromFile loads dictionary words from a file (one word per line)
// and persists them to storage
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	words, err := parseWords(file)
	if err != nil {
		return err
	}

	// Save to storage for future use
	if err := s.storage.SaveDictionaryWords(ctx, words); err != nil {
		return err
	}

	return s.LoadWords(words)
}

// LoadOrSeed loads the dictionary, creating it from the default list if
// nothing has been persisted yet. A non-empty path names the word file;
// an empty path uses storage as the source.
func (s *Service) LoadOrSeed(ctx context.Context, path string) error {
	if path == "" {
		err := s.LoadFromStorage(ctx)
		if !errors.Is(err, model.ErrDictionaryNotLoaded) {
			return err
		}
		s.logger.Info("seeding default dictionary into storage")
		if err := s.storage.SaveDictionaryWords(ctx, DefaultWords()); err != nil {
			return err
		}
		return s.LoadWords(DefaultWords())
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		s.logger.Info("seeding default dictionary file", slog.String("path", path))
		if err := writeDefaultFile(path); err != nil {
			return fmt.Errorf("seed dictionary file: %w", err)
		}
	}
	return s.LoadFromFile(ctx, path)
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	index := NewIndex(words)

	s.mu.Lock()
	s.index = index
	s.mu.Unlock()

	s.logger.Info("dictionary loaded", slog.Int("word_count", index.Len()))
	return nil
}

// Index returns the loaded index
func (s *Service) Index() (*Index, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.index == nil {
		return nil, model.ErrDictionaryNotLoaded
	}
	return s.index, nil
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index != nil
}

// WordCount returns the number of words in the dictionary
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.index == nil {
		return 0
	}
	return s.index.Len()
}

func parseWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	return words, scanner.Err()
}

func writeDefaultFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(strings.Join(DefaultWords(), "\n")+"\n"), 0644)
}

// Interface check
type ServiceInterface interface {
	Index() (*Index, error)
	IsLoaded() bool
	WordCount() int
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string) error
	LoadOrSeed(ctx context.Context, path string) error
	LoadWords(words []string) error
}

var _ ServiceInterface = (*Service)(nil)
