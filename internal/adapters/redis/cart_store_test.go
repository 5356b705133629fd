//go:build integration

package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/DanielPopoola/cxtrauma-orders/internal/core/domain"
)

type CartSessionStoreTestSuite struct {
	suite.Suite
	container *tcredis.RedisContainer
	client    *Client
	store     *CartSessionStore
}

func TestCartSessionStoreSuite(t *testing.T) {
	suite.Run(t, new(CartSessionStoreTestSuite))
}

func (s *CartSessionStoreTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	s.Require().NoError(err)
	s.container = container

	url, err := container.ConnectionString(ctx)
	s.Require().NoError(err)

	client, err := New(ctx, url)
	s.Require().NoError(err)
	s.client = client
	s.store = NewCartSessionStore(client.Client, time.Hour)
}

func (s *CartSessionStoreTestSuite) TearDownSuite() {
	if s.client != nil {
		s.client.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(context.Background())
	}
}

func (s *CartSessionStoreTestSuite) SetupTest() {
	s.Require().NoError(s.client.FlushAll(context.Background()).Err())
}

func (s *CartSessionStoreTestSuite) TestCreateAndLoad() {
	ctx := context.Background()

	s.Require().NoError(s.store.Create(ctx, "session-1"))

	items, err := s.store.Load(ctx, "session-1")
	s.Require().NoError(err)
	s.Empty(items)
}

func (s *CartSessionStoreTestSuite) TestSaveAndLoad() {
	ctx := context.Background()
	exams := domain.DefaultExams()[1:3]

	s.Require().NoError(s.store.Create(ctx, "session-1"))
	s.Require().NoError(s.store.Save(ctx, "session-1", exams))

	items, err := s.store.Load(ctx, "session-1")
	s.Require().NoError(err)
	s.Equal(exams, items)

	ttl, err := s.client.TTL(ctx, key("session-1")).Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))
}

func (s *CartSessionStoreTestSuite) TestUnknownSession() {
	ctx := context.Background()

	_, err := s.store.Load(ctx, "missing")
	s.True(domain.IsErrorCode(err, domain.ErrCodeCartNotFound))

	err = s.store.Save(ctx, "missing", nil)
	s.True(domain.IsErrorCode(err, domain.ErrCodeCartNotFound))

	exists, err := s.client.Exists(ctx, key("missing")).Result()
	s.Require().NoError(err)
	s.Zero(exists)
}

func (s *CartSessionStoreTestSuite) TestHealth() {
	s.NoError(s.client.Health(context.Background()))
}
