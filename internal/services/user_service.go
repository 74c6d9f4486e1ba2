package services

import (
	"database/sql"
	"errors"

	"finanzas/internal/domain"
	"finanzas/internal/repos"
	"finanzas/internal/validate"

	"github.com/shopspring/decimal"
)

type UserService struct {
	Users *repos.UserRepo
	Txns  *repos.TransactionRepo
}

func NewUserService(users *repos.UserRepo, txns *repos.TransactionRepo) *UserService {
	return &UserService{Users: users, Txns: txns}
}

// List returns all users field-projected (never the password hash), name
// ascending.
func (s *UserService) List() ([]domain.UserProjection, error) {
	return s.Users.List()
}

// Update applies an admin edit of a user's name and role. Identical repeated
// calls converge on the same stored projection.
func (s *UserService) Update(id, name, role string) (*domain.UserProjection, error) {
	id, ok := validate.ID(id)
	if !ok {
		return nil, ValidationError("id must be a valid identifier")
	}
	name, ok = validate.Name(name)
	if !ok {
		return nil, ValidationError("name must be 2-100 characters")
	}
	role, ok = validate.Role(role)
	if !ok {
		return nil, ValidationError("role must be admin or user")
	}
	p, err := s.Users.UpdateNameRole(id, name, role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

// Profile returns the user's projection plus derived statistics: count and
// exact decimal sum of their transactions.
func (s *UserService) Profile(userID string) (*domain.Profile, error) {
	p, err := s.Users.Projection(userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	montos, err := s.Txns.MontosByUser(userID)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, m := range montos {
		total = total.Add(m)
	}
	return &domain.Profile{
		UserProjection: *p,
		Statistics: domain.ProfileStats{
			TransactionCount: len(montos),
			TotalAmount:      total,
		},
	}, nil
}

// UpdateProfile applies a self-service edit of the caller's name and email.
func (s *UserService) UpdateProfile(userID, name, email string) (*domain.UserProjection, error) {
	name, ok := validate.Name(name)
	if !ok {
		return nil, ValidationError("name must be 2-100 characters")
	}
	email, ok = validate.Email(email)
	if !ok {
		return nil, ValidationError("email must be a valid address")
	}
	p, err := s.Users.UpdateNameEmail(userID, name, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}
