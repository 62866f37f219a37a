package memberrepo_test

import (
	"context"
	"testing"
	"time"

	"shop/internal/adapters/out/postgres/memberrepo"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// MemberRepositoryIntegrationTestSuite provides integration tests for
// MemberRepository using PostgreSQL containers, including the storage-level
// name uniqueness constraint.
type MemberRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *memberrepo.GormMemberRepository
	tracker    *MockAggregateTracker
}

func (suite *MemberRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&memberrepo.MemberDTO{}))
}

func (suite *MemberRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE members").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = memberrepo.NewGormMemberRepository(suite.db, suite.tracker)
}

func (suite *MemberRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *MemberRepositoryIntegrationTestSuite) createTestMember(name string) *member.Member {
	address, err := kernel.NewAddress("1 Main St", "Springfield", "12345")
	suite.Require().NoError(err)

	m, err := member.NewMember(kernel.NewUUID(), name, address)
	suite.Require().NoError(err)
	return m
}

func (suite *MemberRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	alice := suite.createTestMember("Alice")

	suite.tracker.On("TrackAggregate", alice.ID(), alice).Once()
	suite.Require().NoError(suite.repository.Add(ctx, alice))

	restored, err := suite.repository.Get(ctx, alice.ID())
	suite.Require().NoError(err)

	suite.Equal(alice.ID(), restored.ID())
	suite.Equal("Alice", restored.Name())
	suite.True(alice.Address().IsEqual(restored.Address()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *MemberRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *MemberRepositoryIntegrationTestSuite) TestGetByName() {
	ctx := context.Background()
	alice := suite.createTestMember("Alice")
	bob := suite.createTestMember("Bob")

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, alice))
	suite.Require().NoError(suite.repository.Add(ctx, bob))

	found, err := suite.repository.GetByName(ctx, "Alice")
	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	suite.Equal(alice.ID(), found[0].ID())

	none, err := suite.repository.GetByName(ctx, "Carol")
	suite.Require().NoError(err)
	suite.Empty(none)
}

// The unique index must reject a second member with the same name even when
// the registration-time duplicate check was raced past.
func (suite *MemberRepositoryIntegrationTestSuite) TestAdd_DuplicateName_RejectedByUniqueIndex() {
	ctx := context.Background()
	first := suite.createTestMember("Alice")
	second := suite.createTestMember("Alice")

	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)

	found, err := suite.repository.GetByName(ctx, "Alice")
	suite.Require().NoError(err)
	suite.Len(found, 1, "exactly one member with the name must exist")
}

func (suite *MemberRepositoryIntegrationTestSuite) TestUpdate_Rename() {
	ctx := context.Background()
	alice := suite.createTestMember("Alice")

	suite.tracker.On("TrackAggregate", alice.ID(), alice).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, alice))

	suite.Require().NoError(alice.Rename("Alice B."))
	suite.Require().NoError(suite.repository.Update(ctx, alice))

	restored, err := suite.repository.Get(ctx, alice.ID())
	suite.Require().NoError(err)
	suite.Equal("Alice B.", restored.Name())
}

func TestMemberRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(MemberRepositoryIntegrationTestSuite))
}
