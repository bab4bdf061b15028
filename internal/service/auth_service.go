package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"Association_Portal/internal/model"
	"Association_Portal/internal/pkg"
	"Association_Portal/internal/repository/database"
)

const MinPasswordLength = 6

type AuthService struct {
	repo   *database.AdminRepository
	tokens *pkg.TokenManager
	log    *slog.Logger
	now    func() time.Time
}

func NewAuthService(repo *database.AdminRepository, tokens *pkg.TokenManager, log *slog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, log: log, now: time.Now}
}

type AdminInput struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
	Name     string `json:"name" form:"name"`
	Role     string `json:"role" form:"role"`
}

// Login checks the credentials and mints a bearer token. Unknown usernames
// and wrong passwords fail with the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *model.Admin, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return "", nil, invalid("Username and password are required")
	}
	admin, err := s.repo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find admin: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(PrincipalOf(admin))
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	now := s.now().UTC()
	if err := s.repo.TouchLastLogin(ctx, admin.ID, now); err != nil {
		s.log.WarnContext(ctx, "record last login", "admin_id", admin.ID, "err", err)
	} else {
		admin.LastLogin = &now
	}
	return token, admin, nil
}

// Verify resolves a verified principal back to its admin account.
func (s *AuthService) Verify(ctx context.Context, p pkg.Principal) (*model.Admin, error) {
	admin, err := s.repo.FindByID(ctx, p.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	return admin, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, p pkg.Principal, current, next string) error {
	if current == "" || next == "" {
		return invalid("Current password and new password are required")
	}
	if len(next) < MinPasswordLength {
		return invalid(fmt.Sprintf("New password must be at least %d characters", MinPasswordLength))
	}
	admin, err := s.repo.FindByID(ctx, p.ID)
	if err != nil {
		return notFound("Admin", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(current)) != nil {
		return invalid("Current password is incorrect")
	}
	hash, err := hashPassword(next)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, admin.ID, hash)
}

// Seed creates the first admin account when none exists. It reports whether
// an account was created.
func (s *AuthService) Seed(ctx context.Context, username, password, name string) (bool, error) {
	if username == "" || password == "" {
		return false, nil
	}
	n, err := s.repo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count admins: %w", err)
	}
	if n > 0 {
		return false, nil
	}
	if _, err := s.CreateAdmin(ctx, AdminInput{Username: username, Password: password, Name: name, Role: model.RoleAdmin}); err != nil {
		return false, err
	}
	return true, nil
}

func (s *AuthService) ListAdmins(ctx context.Context) ([]model.Admin, error) {
	return s.repo.ListAll(ctx)
}

func (s *AuthService) CreateAdmin(ctx context.Context, in AdminInput) (*model.Admin, error) {
	in.Username = strings.TrimSpace(in.Username)
	if len(in.Password) < MinPasswordLength {
		return nil, invalid(fmt.Sprintf("Password must be at least %d characters", MinPasswordLength))
	}
	if in.Role == "" {
		in.Role = model.RoleEditor
	}
	if _, err := s.repo.FindByUsername(ctx, in.Username); err == nil {
		return nil, invalid("Username already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find admin: %w", err)
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	admin := &model.Admin{
		Username: in.Username,
		Password: hash,
		Role:     in.Role,
		Name:     strings.TrimSpace(in.Name),
	}
	if admin.Name == "" {
		admin.Name = admin.Username
	}
	if err := check(admin); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return admin, nil
}

// PrincipalOf is the identity an admin account carries in tokens and
// responses.
func PrincipalOf(a *model.Admin) pkg.Principal {
	return pkg.Principal{ID: a.ID, Username: a.Username, Role: a.Role, Name: a.Name}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
