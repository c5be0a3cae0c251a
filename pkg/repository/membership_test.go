package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"

	"droscher.com/Foodgram/pkg/model"
)

type MembershipTestSuite struct {
	RepositorySuite
}

func TestMembershipTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipTestSuite))
}

func duplicateKey() error {
	return &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
}

func foreignKeyViolation() error {
	return &pgconn.PgError{Code: "23503", Message: "insert or update violates foreign key constraint"}
}

func (suite *MembershipTestSuite) TestAddMembership_Tables() {
	tests := map[model.MembershipKind]string{
		model.KindFavorite: `^INSERT INTO "favorites" \("user_id","recipe_id","created_at"\)`,
		model.KindCart:     `^INSERT INTO "shopping_cart_items" \("user_id","recipe_id","created_at"\)`,
		model.KindFollow:   `^INSERT INTO "follows" \("user_id","author_id","created_at"\)`,
	}

	for kind, query := range tests {
		suite.Run(kind.String(), func() {
			suite.SetupTest()
			defer suite.TearDownTest()

			suite.mock.ExpectBegin()
			suite.mock.ExpectQuery(query).
				WithArgs(2, 5, sqlmock.AnyArg()).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
			suite.mock.ExpectCommit()

			suite.Require().NoError(suite.repository.AddMembership(context.Background(), kind, 2, 5))
		})
	}
}

func (suite *MembershipTestSuite) TestAddMembership_DuplicateIsConflict() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^INSERT INTO "favorites"`).
		WillReturnError(duplicateKey())
	suite.mock.ExpectRollback()

	err := suite.repository.AddMembership(context.Background(), model.KindFavorite, 2, 5)

	suite.Require().ErrorIs(err, model.ErrConflict)
	suite.EqualError(err, "conflict: favorite 5 already exists for user 2")
	suite.Equal(1, suite.observedLogs.FilterMessage("membership not added").Len())
}

func (suite *MembershipTestSuite) TestAddMembership_MissingTargetIsNotFound() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^INSERT INTO "follows"`).
		WillReturnError(foreignKeyViolation())
	suite.mock.ExpectRollback()

	err := suite.repository.AddMembership(context.Background(), model.KindFollow, 2, 50)

	suite.Require().ErrorIs(err, model.ErrNotFound)
	suite.EqualError(err, "not found: subscription target 50 does not exist")
}

func (suite *MembershipTestSuite) TestAddMembership_UnknownKind() {
	err := suite.repository.AddMembership(context.Background(), model.MembershipKind(42), 2, 5)

	suite.Require().ErrorIs(err, model.ErrValidation)
}

func (suite *MembershipTestSuite) TestRemoveMembership() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "shopping_cart_items" WHERE user_id = $1 AND recipe_id = $2`)).
		WithArgs(2, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	err := suite.repository.RemoveMembership(context.Background(), model.KindCart, 2, 5)

	suite.Require().NoError(err)
}

func (suite *MembershipTestSuite) TestRemoveMembership_MissingIsNotFound() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "follows" WHERE user_id = $1 AND author_id = $2`)).
		WithArgs(2, 9).
		WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectCommit()

	err := suite.repository.RemoveMembership(context.Background(), model.KindFollow, 2, 9)

	suite.Require().ErrorIs(err, model.ErrNotFound)
	suite.EqualError(err, "not found: subscription 9 does not exist for user 2")
}
