package mocks

import (
	"github.com/stretchr/testify/mock"
)

// PasswordHasher is a testify mock for model.PasswordHasher.
type PasswordHasher struct {
	mock.Mock
}

func NewPasswordHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *PasswordHasher {
	m := &PasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Verify(password, hash string) error {
	args := m.Called(password, hash)
	return args.Error(0)
}
