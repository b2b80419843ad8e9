package uow

import (
	"context"
	"errors"
	c "finschool/internal/core/domain/common"
	"finschool/internal/core/domain/user"
	"finschool/internal/db"
	dbuser "finschool/internal/db/user"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const SESSION_TOKEN = user.SessionToken("test-session-token")

var NOW time.Time = time.Date(2020, 6, 6, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	uow  *PgxUnitOfWork
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.uow = NewPgxUnitOfWork(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUnitOfWork(t *testing.T) {
	if !db.TestPoolAvailable() {
		t.Skip("TEST_POSTGRESQL_URL is not set.")
	}
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestCommitPersistsUserAndSession() {
	ctx := context.Background()
	uow, err := s.uow.Begin(ctx)
	s.Require().Nil(err)
	defer uow.Rollback(ctx)

	createdUser, err := uow.Users().Create(ctx, user.CreateUserInput{
		Name:         "John",
		Surname:      "Doe",
		Login:        user.Login("john.doe"),
		Email:        c.NewEmail("test@test.test"),
		PasswordHash: user.PasswordHash("test-hash"),
		RegisteredAt: NOW,
	})
	s.Require().Nil(err)

	err = uow.Sessions().Create(ctx, user.CreateSessionInput{
		UserID:    createdUser.ID,
		Token:     SESSION_TOKEN,
		CreatedAt: NOW,
	})
	s.Require().Nil(err)

	err = uow.Commit(ctx)
	s.Require().Nil(err)

	sessionRepository := dbuser.NewPgxSessionRepository(s.pool)
	sessionUser, err := sessionRepository.GetUserByToken(ctx, SESSION_TOKEN)
	s.Nil(err)
	s.Equal(createdUser.ID, sessionUser.ID)
}

func (s *testSuite) TestRollbackDiscardsChanges() {
	ctx := context.Background()
	uow, err := s.uow.Begin(ctx)
	s.Require().Nil(err)

	createdUser, err := uow.Users().Create(ctx, user.CreateUserInput{
		Name:         "John",
		Surname:      "Doe",
		Login:        user.Login("john.doe"),
		Email:        c.NewEmail("test@test.test"),
		PasswordHash: user.PasswordHash("test-hash"),
		RegisteredAt: NOW,
	})
	s.Require().Nil(err)

	err = uow.Rollback(ctx)
	s.Require().Nil(err)

	userRepository := dbuser.NewPgxRepository(s.pool)
	_, err = userRepository.GetByID(ctx, createdUser.ID)
	s.True(errors.Is(err, user.ErrUserDoesNotExist))
}
