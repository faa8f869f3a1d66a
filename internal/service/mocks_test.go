package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	models "github.com/adrianjuliusaluoch/Airline-Booking-System/internal"
)

type MockSearchCache struct {
	mock.Mock
}

func (m *MockSearchCache) Get(ctx context.Context, req *models.SearchRequest) (*models.SearchResults, bool) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*models.SearchResults), args.Bool(1)
}

func (m *MockSearchCache) Set(ctx context.Context, req *models.SearchRequest, results *models.SearchResults) error {
	args := m.Called(ctx, req, results)
	return args.Error(0)
}

func (m *MockSearchCache) Close() error {
	args := m.Called()
	return args.Error(0)
}

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Get(ctx context.Context, id string) (*models.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionStore) Put(ctx context.Context, sess *models.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

func (m *MockSessionStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
