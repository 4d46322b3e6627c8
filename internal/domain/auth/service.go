package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	jwtsvc "tripmarket/internal/pkg/jwt"
)

type Service struct {
	repo *Repository
	jwt  *jwtsvc.Service
}

func NewService(repo *Repository, jwt *jwtsvc.Service) *Service {
	return &Service{repo: repo, jwt: jwt}
}

// Register creates an agent account. Elevated roles are assigned afterwards
// by an admin through UpdateRole.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	existing, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         RoleAgent,
		Name:         req.Name,
		Phone:        req.Phone,
		AgencyName:   req.AgencyName,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateToken(u.ID, string(u.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: u}, nil
}

func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrUserInactive
	}

	_ = s.repo.TouchLastLogin(ctx, u.ID)

	token, err := s.jwt.GenerateToken(u.ID, string(u.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: u}, nil
}

func (s *Service) GetUser(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListUsers(ctx context.Context, role string) ([]User, error) {
	if role != "" && !ValidRole(role) {
		return nil, ErrInvalidRole
	}
	return s.repo.List(ctx, role)
}

func (s *Service) UpdateRole(ctx context.Context, id int64, role string) (*User, error) {
	if !ValidRole(role) {
		return nil, ErrInvalidRole
	}
	if err := s.repo.UpdateRole(ctx, id, UserRole(role)); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}
