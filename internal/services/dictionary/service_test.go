package dictionary

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/royalsquare/internal/model"
	"github.com/mcoot/royalsquare/internal/storage/memory"
	"github.com/mcoot/royalsquare/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestIsNotLoadedByDefault() {
	s.False(s.service.IsLoaded())
	s.Equal(0, s.service.WordCount())

	_, err := s.service.Index()
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *ServiceSuite) TestLoadWords() {
	err := s.service.LoadWords([]string{"игра", "слово", "дом"})
	s.Require().NoError(err)

	s.True(s.service.IsLoaded())
	s.Equal(3, s.service.WordCount())
}

func (s *ServiceSuite) TestLoadFromStorage() {
	err := s.storage.SaveDictionaryWords(s.ctx, []string{"море", "небо"})
	s.Require().NoError(err)

	err = s.service.LoadFromStorage(s.ctx)
	s.Require().NoError(err)

	index, err := s.service.Index()
	s.Require().NoError(err)
	s.True(index.Contains("море"))
	s.True(index.Contains("небо"))
}

func (s *ServiceSuite) TestLoadFromStorageWhenEmpty() {
	err := s.service.LoadFromStorage(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *ServiceSuite) TestLoadFromFilePersistsToStorage() {
	path := filepath.Join(s.T().TempDir(), "words.txt")
	err := os.WriteFile(path, []byte("игра\n\n  слово  \nДОМ\n"), 0644)
	s.Require().NoError(err)

	err = s.service.LoadFromFile(s.ctx, path)
	s.Require().NoError(err)

	index, _ := s.service.Index()
	s.Equal(3, index.Len())
	s.True(index.Contains("дом"))

	stored, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"игра", "слово", "ДОМ"}, stored)
}

func (s *ServiceSuite) TestLoadFromFileMissing() {
	err := s.service.LoadFromFile(s.ctx, filepath.Join(s.T().TempDir(), "missing.txt"))
	s.Error(err)
	s.False(s.service.IsLoaded())
}

func (s *ServiceSuite) TestLoadOrSeedCreatesMissingFile() {
	path := filepath.Join(s.T().TempDir(), "data", "dictionary.txt")

	err := s.service.LoadOrSeed(s.ctx, path)
	s.Require().NoError(err)

	data, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.Contains(string(data), "квадрат\n")

	s.Equal(len(DefaultWords()), s.service.WordCount())
}

func (s *ServiceSuite) TestLoadOrSeedKeepsExistingFile() {
	path := filepath.Join(s.T().TempDir(), "dictionary.txt")
	_ = os.WriteFile(path, []byte("кот\n"), 0644)

	err := s.service.LoadOrSeed(s.ctx, path)
	s.Require().NoError(err)

	index, _ := s.service.Index()
	s.Equal([]string{"кот"}, index.Words())
}

func (s *ServiceSuite) TestLoadOrSeedSeedsStorage() {
	err := s.service.LoadOrSeed(s.ctx, "")
	s.Require().NoError(err)

	stored, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal(DefaultWords(), stored)
	s.Equal(20, s.service.WordCount())
}

func (s *ServiceSuite) TestLoadOrSeedPrefersStoredWords() {
	_ = s.storage.SaveDictionaryWords(s.ctx, []string{"кот", "пёс"})

	err := s.service.LoadOrSeed(s.ctx, "")
	s.Require().NoError(err)

	s.Equal(2, s.service.WordCount())
}

func (s *ServiceSuite) TestReloadReplacesIndex() {
	_ = s.service.LoadWords([]string{"игра"})
	before, _ := s.service.Index()

	_ = s.service.LoadWords([]string{"слово"})
	after, _ := s.service.Index()

	s.True(before.Contains("игра"))
	s.False(after.Contains("игра"))
	s.True(after.Contains("слово"))
}
