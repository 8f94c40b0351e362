package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phrazzld/shop-api/internal/domain"
	"github.com/phrazzld/shop-api/internal/mocks"
	"github.com/phrazzld/shop-api/internal/platform/logger"
	"github.com/phrazzld/shop-api/internal/service"
	"github.com/phrazzld/shop-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register(t *testing.T) {
	const password = "correct-horse-battery"

	t.Run("hashes password and stores user", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		log, buf := logger.NewTestLogger()
		userStore := &mocks.MockUserStore{}
		hasher := &mocks.MockPasswordHasher{}

		userStore.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Password == "" && u.HashedPassword != "" && u.HashedPassword != password
		})).Return(nil)
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		svc := service.NewUserService(userStore, hasher, db, log)
		user, err := svc.Register(context.Background(), service.RegisterInput{
			Email:    "  Alice@Example.COM ",
			Password: password,
			FullName: "Alice Liddell",
		})

		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Empty(t, user.Password)
		assert.NotEqual(t, password, user.HashedPassword)
		assert.Equal(t, []string{domain.DefaultRole}, user.Roles)
		assert.True(t, user.IsActive)
		assert.Equal(t, []string{password}, hasher.Calls)
		assert.NotContains(t, buf.String(), password)

		userStore.AssertExpectations(t)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		userStore := &mocks.MockUserStore{}
		dup := &store.DuplicateError{
			Constraint: store.UsersEmailConstraint,
			Detail:     "Key (email)=(alice@example.com) already exists.",
		}
		userStore.On("Create", mock.Anything, mock.Anything).Return(dup)
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		svc := service.NewUserService(userStore, &mocks.MockPasswordHasher{}, db, nil)
		user, err := svc.Register(context.Background(), service.RegisterInput{
			Email:    "alice@example.com",
			Password: password,
			FullName: "Alice Liddell",
		})

		assert.Nil(t, user)
		assert.ErrorIs(t, err, service.ErrDuplicateEntry)
		assert.Equal(t, "Key (email)=(alice@example.com) already exists.", err.Error())
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid input never reaches hasher or store", func(t *testing.T) {
		userStore := &mocks.MockUserStore{}
		hasher := &mocks.MockPasswordHasher{}

		svc := service.NewUserService(userStore, hasher, nil, nil)
		_, err := svc.Register(context.Background(), service.RegisterInput{
			Email:    "not-an-email",
			Password: password,
			FullName: "Alice",
		})

		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.ErrorIs(t, err, domain.ErrInvalidEmail)
		assert.Empty(t, hasher.Calls)
		userStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("password longer than bcrypt limit", func(t *testing.T) {
		svc := service.NewUserService(&mocks.MockUserStore{}, &mocks.MockPasswordHasher{}, nil, nil)
		_, err := svc.Register(context.Background(), service.RegisterInput{
			Email:    "alice@example.com",
			Password: strings.Repeat("a", 73),
			FullName: "Alice",
		})
		assert.ErrorIs(t, err, domain.ErrPasswordTooLong)
	})

	t.Run("hasher failure is opaque", func(t *testing.T) {
		hasher := &mocks.MockPasswordHasher{
			HashFn: func(string) (string, error) { return "", errors.New("entropy exhausted") },
		}
		svc := service.NewUserService(&mocks.MockUserStore{}, hasher, nil, nil)
		_, err := svc.Register(context.Background(), service.RegisterInput{
			Email:    "alice@example.com",
			Password: password,
			FullName: "Alice",
		})

		assert.ErrorIs(t, err, service.ErrUnexpected)
		assert.Equal(t, service.ErrUnexpected.Error(), err.Error())
	})

	t.Run("other store failure is opaque", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		log, buf := logger.NewTestLogger()
		userStore := &mocks.MockUserStore{}
		userStore.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection reset"))
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		svc := service.NewUserService(userStore, &mocks.MockPasswordHasher{}, db, log)
		_, err = svc.Register(context.Background(), service.RegisterInput{
			Email:    "alice@example.com",
			Password: password,
			FullName: "Alice",
		})

		assert.ErrorIs(t, err, service.ErrUnexpected)
		assert.NotContains(t, err.Error(), "connection reset")
		assert.Contains(t, buf.String(), "connection reset")
		assert.NotContains(t, buf.String(), password)
	})
}
