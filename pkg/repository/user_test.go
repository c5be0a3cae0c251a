package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"droscher.com/Foodgram/pkg/model"
)

type UserTestSuite struct {
	RepositorySuite
}

func TestUserTestSuite(t *testing.T) {
	suite.Run(t, new(UserTestSuite))
}

func (suite *UserTestSuite) TestGetUserFromEmail() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1 AND "users"."deleted_at" IS NULL ORDER BY "users"."id" LIMIT $2`)).
		WithArgs("chef@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}).AddRow(3, "chef", "chef@example.com"))

	user, err := suite.repository.GetUserFromEmail(context.Background(), "chef@example.com")

	suite.Require().NoError(err)
	suite.Equal(uint(3), user.ID)
	suite.Equal("chef", user.Username)
}

func (suite *UserTestSuite) TestGetUserFromEmail_NotFound() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := suite.repository.GetUserFromEmail(context.Background(), "ghost@example.com")

	suite.Nil(user)
	suite.Require().ErrorIs(err, model.ErrNotFound)
	suite.EqualError(err, "not found: user with email ghost@example.com")
}

func (suite *UserTestSuite) TestGetUserByUUID() {
	userUUID := uuid.New()

	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE uuid = $1`)).
		WithArgs(userUUID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "uuid", "username"}).AddRow(3, userUUID.String(), "chef"))

	user, err := suite.repository.GetUserByUUID(context.Background(), userUUID)

	suite.Require().NoError(err)
	suite.Equal(userUUID, user.UUID)
}

func (suite *UserTestSuite) TestGetUserByID_NotFound() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1`)).
		WithArgs(40, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := suite.repository.GetUserByID(context.Background(), 40)

	suite.Nil(user)
	suite.Require().ErrorIs(err, model.ErrNotFound)
}

func (suite *UserTestSuite) TestAddUser() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	suite.mock.ExpectCommit()

	user, err := suite.repository.AddUser(context.Background(), model.User{Username: "chef", Email: "chef@example.com"})

	suite.Require().NoError(err)
	suite.Equal(uint(5), user.ID)
	suite.NotEqual(uuid.Nil, user.UUID)
}

func (suite *UserTestSuite) TestAddUser_DuplicateIsConflict() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^INSERT INTO "users"`).
		WillReturnError(duplicateKey())
	suite.mock.ExpectRollback()

	user, err := suite.repository.AddUser(context.Background(), model.User{Username: "chef", Email: "chef@example.com"})

	suite.Nil(user)
	suite.Require().ErrorIs(err, model.ErrConflict)
	suite.EqualError(err, "conflict: user chef already exists")
}

func (suite *UserTestSuite) TestGetFollowedAuthors() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "users" INNER JOIN follows f ON f.author_id = users.id WHERE f.user_id = $1`)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	suite.mock.ExpectQuery(regexp.QuoteMeta(`INNER JOIN follows f ON f.author_id = users.id WHERE f.user_id = $1 AND "users"."deleted_at" IS NULL ORDER BY f.id DESC LIMIT $2 OFFSET $3`)).
		WithArgs(2, 6, 6).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(9, "baker"))

	authors, total, err := suite.repository.GetFollowedAuthors(context.Background(), 2, 6, 6)

	suite.Require().NoError(err)
	suite.Equal(int64(7), total)
	suite.Require().Len(authors, 1)
	suite.Equal("baker", authors[0].Username)
}

func (suite *UserTestSuite) TestGetFollowedAuthorIDs() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT "author_id" FROM "follows" WHERE user_id = $1 AND author_id IN ($2,$3)`)).
		WithArgs(2, 3, 9).
		WillReturnRows(sqlmock.NewRows([]string{"author_id"}).AddRow(9))

	followed, err := suite.repository.GetFollowedAuthorIDs(context.Background(), 2, []uint{3, 9})

	suite.Require().NoError(err)
	suite.Equal(map[uint]bool{9: true}, followed)
}
