package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"portfolio-backend/internal/domains/auth"
	"portfolio-backend/pkg/jwt"
)

// bcrypt cost = 10: balance giữa security và latency cho single-admin login
const bcryptCost = 10

// authService implement auth.Service interface
type authService struct {
	repo       auth.Repository
	jwtManager *jwt.Manager
}

// NewAuthService tạo service instance
// Inject repository + jwt manager qua constructor (Dependency Injection)
func NewAuthService(repo auth.Repository, jwtManager *jwt.Manager) auth.Service {
	return &authService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

// Setup tạo admin account đầu tiên
func (s *authService) Setup(ctx context.Context, req auth.SetupRequest) error {
	// 1. VALIDATE INPUT
	if err := req.Validate(); err != nil {
		return err
	}

	// 2. BUSINESS RULE: chỉ setup được khi chưa có credential row
	exists, err := s.repo.Exists(ctx)
	if err != nil {
		return fmt.Errorf("check admin exists: %w", err)
	}
	if exists {
		return auth.ErrAlreadyConfigured
	}

	// 3. HASH PASSWORD - salted, irreversible
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	// 4. PERSIST
	if err := s.repo.Create(ctx, req.Username, string(passwordHash)); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	return nil
}

// Login xác thực admin và trả về bearer token
func (s *authService) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	// 1. VALIDATE INPUT
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. FIND ADMIN BY USERNAME
	a, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, auth.ErrNotConfigured) {
			// Không expose "user not found" - cùng error với wrong password
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	// 3. VERIFY PASSWORD
	// bcrypt.CompareHashAndPassword is constant-time comparison
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	// 4. ISSUE TOKEN (7-day expiry, claims: id + username)
	token, err := s.jwtManager.GenerateToken(a.ID, a.Username)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &auth.LoginResponse{
		Token:    token,
		Username: a.Username,
	}, nil
}

// ChangePassword re-verify current password rồi overwrite hash
func (s *authService) ChangePassword(ctx context.Context, adminID int64, req auth.ChangePasswordRequest) error {
	// 1. VALIDATE INPUT
	if err := req.Validate(); err != nil {
		return err
	}

	// 2. LOAD CREDENTIAL ROW
	a, err := s.repo.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, auth.ErrNotConfigured) {
			return auth.ErrInvalidCredentials
		}
		return err
	}

	// 3. RE-VERIFY CURRENT PASSWORD
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return auth.ErrInvalidCredentials
	}

	// 4. HASH & ROTATE
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, a.ID, string(passwordHash)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	return nil
}

// Reset overwrite credential vô điều kiện
// Recovery escape hatch: không cần prior auth, deliberate trust decision
// (deployment nên restrict endpoint này by network hoặc one-time token)
func (s *authService) Reset(ctx context.Context, req auth.ResetRequest) error {
	// 1. VALIDATE INPUT
	if err := req.Validate(); err != nil {
		return err
	}

	// 2. HASH PASSWORD
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	// 3. UPSERT
	if err := s.repo.Upsert(ctx, req.Username, string(passwordHash)); err != nil {
		return fmt.Errorf("reset admin: %w", err)
	}

	return nil
}

// Configured cho biết admin account đã tồn tại chưa
func (s *authService) Configured(ctx context.Context) (bool, error) {
	return s.repo.Exists(ctx)
}
