package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"spectraSense/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/suite"
)

type stubPredictiveRepo struct {
	rows  []domain.PredictiveData
	err   error
	calls int
}

func (s *stubPredictiveRepo) FindByType(ctx context.Context, predictiveType string) ([]domain.PredictiveData, error) {
	s.calls++
	return s.rows, s.err
}

type stubMediaRepo struct {
	media []domain.Media
	calls int
}

func (s *stubMediaRepo) FindByGenre(ctx context.Context, genre string) ([]domain.Media, error) {
	s.calls++
	return s.media, nil
}

func (s *stubMediaRepo) FindByTitle(ctx context.Context, title string) ([]domain.Media, error) {
	s.calls++
	return s.media, nil
}

func (s *stubMediaRepo) FindByGenreExcluding(ctx context.Context, genre string, excludeID uint64) ([]domain.Media, error) {
	s.calls++
	return s.media, nil
}

type RowCacheTestSuite struct {
	suite.Suite
	mock redismock.ClientMock
	ttl  time.Duration
	rows []domain.PredictiveData
	repo *stubPredictiveRepo
	c    *PredictiveDataCache
}

func (s *RowCacheTestSuite) SetupTest() {
	client, mock := redismock.NewClientMock()
	s.mock = mock
	s.ttl = time.Minute
	s.rows = []domain.PredictiveData{
		{FeatureName: "price", Coefficient: -2, Feature: 3},
		{FeatureName: "ads", Coefficient: 1.5, Feature: 10},
	}
	s.repo = &stubPredictiveRepo{rows: s.rows}
	s.c = NewPredictiveDataCache(client, s.repo, s.ttl)
}

func (s *RowCacheTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *RowCacheTestSuite) TestMissLoadsAndStores() {
	payload, err := json.Marshal(s.rows)
	s.Require().NoError(err)

	s.mock.ExpectGet("spectrasense:predictive:type:sales").RedisNil()
	s.mock.ExpectSet("spectrasense:predictive:type:sales", payload, s.ttl).SetVal("OK")

	rows, err := s.c.FindByType(context.Background(), "sales")
	s.Require().NoError(err)
	s.Equal(s.rows, rows)
	s.Equal(1, s.repo.calls)
}

func (s *RowCacheTestSuite) TestHitSkipsRepository() {
	payload, err := json.Marshal(s.rows)
	s.Require().NoError(err)

	s.mock.ExpectGet("spectrasense:predictive:type:sales").SetVal(string(payload))

	rows, err := s.c.FindByType(context.Background(), "sales")
	s.Require().NoError(err)
	s.Equal(s.rows, rows)
	s.Equal(0, s.repo.calls)
}

func (s *RowCacheTestSuite) TestEmptyResultIsNotStored() {
	s.repo.rows = nil
	s.mock.ExpectGet("spectrasense:predictive:type:none").RedisNil()

	rows, err := s.c.FindByType(context.Background(), "none")
	s.NoError(err)
	s.Empty(rows)
}

func (s *RowCacheTestSuite) TestReadFailureFallsBackToRepository() {
	payload, err := json.Marshal(s.rows)
	s.Require().NoError(err)

	s.mock.ExpectGet("spectrasense:predictive:type:sales").SetErr(errors.New("i/o timeout"))
	s.mock.ExpectSet("spectrasense:predictive:type:sales", payload, s.ttl).SetVal("OK")

	rows, err := s.c.FindByType(context.Background(), "sales")
	s.NoError(err)
	s.Equal(s.rows, rows)
}

func (s *RowCacheTestSuite) TestRepositoryErrorIsReturned() {
	boom := errors.New("db down")
	s.repo.err = boom
	s.mock.ExpectGet("spectrasense:predictive:type:sales").RedisNil()

	_, err := s.c.FindByType(context.Background(), "sales")
	s.ErrorIs(err, boom)
}

func (s *RowCacheTestSuite) TestMediaKeys() {
	client, mock := redismock.NewClientMock()
	media := []domain.Media{{ID: 7, Title: "Heat II", Genre: "Action, Drama", Rating: 7.5}}
	payload, err := json.Marshal(media)
	s.Require().NoError(err)

	repo := &stubMediaRepo{media: media}
	c := NewMediaCache(client, repo, s.ttl)

	mock.ExpectGet("spectrasense:media:candidates:Action, Drama:exclude:1").RedisNil()
	mock.ExpectSet("spectrasense:media:candidates:Action, Drama:exclude:1", payload, s.ttl).SetVal("OK")
	mock.ExpectGet("spectrasense:media:title:Heat").SetVal(string(payload))

	got, err := c.FindByGenreExcluding(context.Background(), "Action, Drama", 1)
	s.Require().NoError(err)
	s.Equal(media, got)

	got, err = c.FindByTitle(context.Background(), "Heat")
	s.Require().NoError(err)
	s.Equal(media, got)

	s.Equal(1, repo.calls)
	s.NoError(mock.ExpectationsWereMet())
}

func (s *RowCacheTestSuite) TestGenreAndCandidateKeysDoNotOverlap() {
	client, mock := redismock.NewClientMock()
	media := []domain.Media{{ID: 9, Title: "Odd", Genre: "Action, Drama:exclude:1", Rating: 5}}
	payload, err := json.Marshal(media)
	s.Require().NoError(err)

	repo := &stubMediaRepo{media: media}
	c := NewMediaCache(client, repo, s.ttl)

	mock.ExpectGet("spectrasense:media:genre:Action, Drama:exclude:1").RedisNil()
	mock.ExpectSet("spectrasense:media:genre:Action, Drama:exclude:1", payload, s.ttl).SetVal("OK")
	mock.ExpectGet("spectrasense:media:candidates:Action, Drama:exclude:1").RedisNil()
	mock.ExpectSet("spectrasense:media:candidates:Action, Drama:exclude:1", payload, s.ttl).SetVal("OK")

	_, err = c.FindByGenre(context.Background(), "Action, Drama:exclude:1")
	s.Require().NoError(err)
	_, err = c.FindByGenreExcluding(context.Background(), "Action, Drama", 1)
	s.Require().NoError(err)

	s.Equal(2, repo.calls)
	s.NoError(mock.ExpectationsWereMet())
}

func TestRowCacheTestSuite(t *testing.T) {
	suite.Run(t, new(RowCacheTestSuite))
}
