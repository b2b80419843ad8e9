package user

import (
	"context"
	"errors"
	c "finschool/internal/core/domain/common"
	"finschool/internal/core/domain/user"
	"finschool/internal/db"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const (
	LOGIN         = "john.doe"
	EMAIL         = "test@test.test"
	PASSWORD_HASH = "test-password-hash"
)

var NOW time.Time = time.Date(2020, 6, 6, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxUserRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.repo = NewPgxRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUserRepository(t *testing.T) {
	if !db.TestPoolAvailable() {
		t.Skip("TEST_POSTGRESQL_URL is not set.")
	}
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestCreateSuccess() {
	input := user.CreateUserInput{
		Name:         "John",
		Surname:      "Doe",
		Login:        user.Login(LOGIN),
		Email:        c.Email(EMAIL),
		PasswordHash: user.PasswordHash(PASSWORD_HASH),
		RegisteredAt: NOW,
	}

	u, err := suite.repo.Create(context.Background(), input)

	assert := suite.Require()
	assert.Nil(err)
	assert.NotEqual(user.ID(0), u.ID)
	assert.Equal(input.Name, u.Name)
	assert.Equal(input.Surname, u.Surname)
	assert.Equal(input.Login, u.Login)
	assert.Equal(input.Email, u.Email)
	assert.Equal(input.PasswordHash, u.PasswordHash)
	assert.False(u.IsAdmin)
	assert.True(input.RegisteredAt.Equal(u.RegisteredAt))
}

func (suite *testSuite) TestCreateAdmin() {
	u := suite.createUser(LOGIN, EMAIL, true)
	suite.True(u.IsAdmin)
}

func (suite *testSuite) TestLoginAlreadyExistsError() {
	suite.createUser(LOGIN, EMAIL, false)

	_, err := suite.repo.Create(context.Background(), user.CreateUserInput{
		Login:        user.Login(LOGIN),
		Email:        c.Email("other@test.test"),
		PasswordHash: user.PasswordHash(PASSWORD_HASH),
		RegisteredAt: NOW,
	})
	suite.Require().ErrorIs(err, user.ErrLoginAlreadyExists)
}

func (suite *testSuite) TestEmailAlreadyExistsError() {
	suite.createUser(LOGIN, EMAIL, false)

	_, err := suite.repo.Create(context.Background(), user.CreateUserInput{
		Login:        user.Login("other.login"),
		Email:        c.Email(EMAIL),
		PasswordHash: user.PasswordHash(PASSWORD_HASH),
		RegisteredAt: NOW,
	})
	suite.Require().ErrorIs(err, user.ErrEmailAlreadyExists)
}

func (s *testSuite) TestGetByID() {
	created := s.createUser(LOGIN, EMAIL, false)

	u, err := s.repo.GetByID(context.Background(), created.ID)
	s.Nil(err)
	s.Equal(created.ID, u.ID)

	_, err = s.repo.GetByID(context.Background(), user.ID(111222333))
	s.True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (s *testSuite) TestGetByLogin() {
	created := s.createUser(LOGIN, EMAIL, false)

	u, err := s.repo.GetByLogin(context.Background(), user.Login(LOGIN))
	s.Nil(err)
	s.Equal(created.ID, u.ID)

	_, err = s.repo.GetByLogin(context.Background(), user.Login("unknown"))
	s.True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (s *testSuite) TestGetByEmail() {
	created := s.createUser(LOGIN, EMAIL, false)

	u, err := s.repo.GetByEmail(context.Background(), c.Email(EMAIL))
	s.Nil(err)
	s.Equal(created.ID, u.ID)

	_, err = s.repo.GetByEmail(context.Background(), c.Email("unknown@test.test"))
	s.True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (s *testSuite) TestList() {
	first := s.createUser("login-1", "test-1@test.test", false)
	second := s.createUser("login-2", "test-2@test.test", true)

	users, err := s.repo.List(context.Background())
	s.Nil(err)
	s.Equal(2, len(users))
	s.Equal(first.ID, users[0].ID)
	s.Equal(second.ID, users[1].ID)
	s.True(users[1].IsAdmin)
}

func (s *testSuite) TestSetPassword() {
	u := s.createUser(LOGIN, EMAIL, false)
	s.Equal(user.PasswordHash(PASSWORD_HASH), u.PasswordHash)

	newPassword := user.PasswordHash("new-password-hash")
	err := s.repo.SetPassword(context.Background(), u.ID, newPassword)
	s.Nil(err)
	userAfterUpdate := s.getUserByID(u.ID)
	s.Equal(newPassword, userAfterUpdate.PasswordHash)
}

func (s *testSuite) TestSetPasswordReturnsErrorIfUserDoesNotExist() {
	u := s.createUser(LOGIN, EMAIL, false)

	newPassword := user.PasswordHash("new-password-hash")
	err := s.repo.SetPassword(context.Background(), user.ID(111222333), newPassword)
	s.True(errors.Is(err, user.ErrUserDoesNotExist))

	userAfterUpdate := s.getUserByID(u.ID)
	s.Equal(u, userAfterUpdate)
}

func (s *testSuite) TestDelete() {
	u := s.createUser(LOGIN, EMAIL, false)

	err := s.repo.Delete(context.Background(), u.ID)
	s.Nil(err)

	_, err = s.repo.GetByID(context.Background(), u.ID)
	s.True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (s *testSuite) TestDeleteReturnsErrorIfUserDoesNotExist() {
	err := s.repo.Delete(context.Background(), user.ID(111222333))
	s.True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (s *testSuite) createUser(login string, email string, isAdmin bool) user.User {
	s.T().Helper()
	u, err := s.repo.Create(
		context.Background(),
		user.CreateUserInput{
			Name:         "John",
			Surname:      "Doe",
			Login:        user.Login(login),
			Email:        c.NewEmail(email),
			PasswordHash: user.PasswordHash(PASSWORD_HASH),
			IsAdmin:      isAdmin,
			RegisteredAt: NOW,
		},
	)
	if err != nil {
		s.FailNowf("could not create user", "err: %v", err)
	}
	return u
}

func (s *testSuite) getUserByID(id user.ID) user.User {
	s.T().Helper()
	u, err := s.repo.GetByID(context.Background(), id)
	if err != nil {
		s.FailNowf("could not get user by ID", "id: %v, err: %v", id, err)
	}
	return u
}
