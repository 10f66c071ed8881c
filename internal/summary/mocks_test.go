package summary

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/usersummary/internal/domain"
)

// MockFetcher implements UserFetcher for testing
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) FetchUsers(ctx context.Context, url string) ([]domain.User, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockFetcher) FetchJSON(ctx context.Context, url string) (interface{}, error) {
	args := m.Called(ctx, url)
	return args.Get(0), args.Error(1)
}

// MockReporter implements Reporter and keeps call order in Calls
type MockReporter struct {
	mock.Mock
}

func (m *MockReporter) Notice(msg string) {
	m.Called(msg)
}

func (m *MockReporter) Summary(s domain.Summary) {
	m.Called(s)
}

func (m *MockReporter) Failure(label string, err error) {
	m.Called(label, err)
}

func (m *MockReporter) methodOrder() []string {
	order := make([]string, 0, len(m.Calls))
	for _, c := range m.Calls {
		order = append(order, c.Method)
	}
	return order
}

func user(id int, name, city, company string) domain.User {
	return domain.User{
		ID:      id,
		Name:    name,
		Address: domain.Address{City: city},
		Company: domain.Company{Name: company},
	}
}
