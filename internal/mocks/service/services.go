// Package service provides testify-based test doubles for the domain
// service interfaces.
package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"depot/internal/domain/entity"
	"depot/internal/domain/service"
)

// MockPasswordHasher is a mock implementation of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a new mock bound to the test's lifecycle.
func NewMockPasswordHasher(t *testing.T) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// MockTokenService is a mock implementation of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a new mock bound to the test's lifecycle.
func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) IssueAccess(user *entity.User) (string, error) {
	args := m.Called(user)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) IssueRefresh(user *entity.User) (string, error) {
	args := m.Called(user)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Decode(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if claims, ok := args.Get(0).(*service.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTokenService) RefreshTTL() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}

// MockObjectStore is a mock implementation of service.ObjectStore.
type MockObjectStore struct {
	mock.Mock
}

// NewMockObjectStore creates a new mock bound to the test's lifecycle.
func NewMockObjectStore(t *testing.T) *MockObjectStore {
	m := &MockObjectStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockObjectStore) CreateBucket(ctx context.Context, bucket string) error {
	args := m.Called(ctx, bucket)

	return args.Error(0)
}

func (m *MockObjectStore) DeleteBucket(ctx context.Context, bucket string) error {
	args := m.Called(ctx, bucket)

	return args.Error(0)
}

func (m *MockObjectStore) ListBuckets(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if buckets, ok := args.Get(0).([]string); ok {
		return buckets, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockObjectStore) PutObject(ctx context.Context, bucket, key, contentType string, body io.Reader) error {
	args := m.Called(ctx, bucket, key, contentType, body)

	return args.Error(0)
}

func (m *MockObjectStore) GetObject(ctx context.Context, bucket, key string) (*service.Object, error) {
	args := m.Called(ctx, bucket, key)
	if object, ok := args.Get(0).(*service.Object); ok {
		return object, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockObjectStore) DeleteObject(ctx context.Context, bucket, key string) error {
	args := m.Called(ctx, bucket, key)

	return args.Error(0)
}
