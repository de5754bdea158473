package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/rentaldeploy/app/models"
	"github.com/shashiranjanraj/rentaldeploy/app/repositories"
	"github.com/shashiranjanraj/rentaldeploy/pkg/auth"
	"github.com/shashiranjanraj/rentaldeploy/pkg/logger"
)

const (
	adminStatus         = "active"
	adminNotes          = "created automatically during deployment"
	generatedPasswordLn = 16
)

// AdminParams describes the administrator account to ensure.
// An empty Password makes EnsureAdmin generate one.
type AdminParams struct {
	Email    string `validate:"required,email"`
	Password string `validate:"omitempty,min=8"`
	FullName string `validate:"required"`
	Phone    string
}

// AdminOutcome tells whether EnsureAdmin created the account.
type AdminOutcome string

const (
	AdminCreated       AdminOutcome = "created"
	AdminAlreadyExists AdminOutcome = "already_exists"
)

// AdminResult is returned by EnsureAdmin. GeneratedPassword is set only when
// the account was created with a generated password.
type AdminResult struct {
	Outcome           AdminOutcome
	Account           *models.Account
	GeneratedPassword string
}

// AdminService bootstraps the administrator account.
type AdminService struct {
	db     *gorm.DB
	hasher auth.Hasher
}

func NewAdminService(db *gorm.DB, hasher auth.Hasher) *AdminService {
	return &AdminService{db: db, hasher: hasher}
}

// EnsureAdmin makes sure an account with p.Email exists. An existing account
// is left untouched, whatever its role or password. Lookup and insert share
// one transaction; on failure nothing is written.
func (s *AdminService) EnsureAdmin(ctx context.Context, p AdminParams) (AdminResult, error) {
	p.Email = strings.TrimSpace(p.Email)
	if err := validate.Struct(p); err != nil {
		return AdminResult{}, fmt.Errorf("admin: invalid parameters: %w", err)
	}

	log := logger.WithCtx(ctx).With("email", p.Email)
	var res AdminResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewAccountRepository(tx)

		existing, err := repo.FindByEmail(ctx, p.Email)
		if err == nil {
			res = AdminResult{Outcome: AdminAlreadyExists, Account: existing}
			return nil
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}

		password := p.Password
		if password == "" {
			if password, err = auth.GeneratePassword(generatedPasswordLn); err != nil {
				return err
			}
			res.GeneratedPassword = password
		}
		hash, err := s.hasher.Hash(password)
		if err != nil {
			return err
		}

		acc := &models.Account{
			FullName:              p.FullName,
			Email:                 p.Email,
			PasswordHash:          hash,
			Phone:                 p.Phone,
			Role:                  models.RoleAdmin,
			IsActive:              true,
			Status:                adminStatus,
			Balance:               0,
			Notes:                 adminNotes,
			PrivacyPolicyAccepted: true,
			TermsAccepted:         true,
			EmailVerified:         true,
		}
		created, err := repo.Create(ctx, acc)
		if err != nil {
			return err
		}
		if !created {
			// Lost a race with a concurrent bootstrap.
			res = AdminResult{Outcome: AdminAlreadyExists}
			return nil
		}
		res.Outcome = AdminCreated
		res.Account = acc
		return nil
	})
	if err != nil {
		log.Error("admin: bootstrap failed", "error", err)
		return AdminResult{}, fmt.Errorf("admin: ensure %s: %w", p.Email, err)
	}

	if res.Outcome == AdminCreated {
		log.Info("admin: account created", "id", res.Account.ID)
	} else {
		log.Info("admin: account already exists")
	}
	return res, nil
}
