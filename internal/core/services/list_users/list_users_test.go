package listusers

import (
	"context"
	c "finschool/internal/core/domain/common"
	"finschool/internal/core/domain/logging"
	"finschool/internal/core/domain/user"
	"finschool/internal/core/services"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	UserRepository *user.FakeUserRepository
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.Service = New(suite.Logger, suite.UserRepository)
}

func TestListUsersService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestEmpty() {
	result, err := suite.Service.Run(context.Background(), Input{})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(0, len(result.Users))
}

func (suite *testSuite) TestReturnsAllUsers() {
	ctx := context.Background()
	for ix := 1; ix <= 3; ix++ {
		_, err := suite.UserRepository.Create(ctx, user.CreateUserInput{
			Login:        user.Login(fmt.Sprintf("login-%d", ix)),
			Email:        c.Email(fmt.Sprintf("test-%d@test.test", ix)),
			PasswordHash: user.PasswordHash("test-hash"),
			RegisteredAt: NOW,
		})
		suite.Require().Nil(err)
	}

	result, err := suite.Service.Run(ctx, Input{})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(3, len(result.Users))
}

func (suite *testSuite) TestRepositoryError() {
	suite.UserRepository.ReturnError = true

	_, err := suite.Service.Run(context.Background(), Input{})

	suite.Require().NotNil(err)
}
