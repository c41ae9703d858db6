package seller

import (
	"context"
	"fmt"
	"time"

	"sellerpulse/models"
	"sellerpulse/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 72 * time.Hour

// Register creates a new seller account. Emails are unique; the first
// account may be promoted to admin out of band.
func (s *DefaultSellerService) Register(reg models.Seller, password string) (*AuthResponse, error) {
	logger := utils.GetLogger()

	if err := verifyPasswordComplexity(password); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByEmail(reg.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	reg.ID = uuid.NewString()
	reg.PasswordHash = string(hash)
	if reg.Role == "" {
		reg.Role = models.RoleSeller
	}
	if reg.Username == "" {
		reg.Username = reg.Email
	}

	if err := s.Repo.Create(&reg); err != nil {
		logger.Error("Failed to create seller", zap.String("email", reg.Email), zap.Error(err))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return s.issueToken(&reg)
}

// Authenticate verifies the credentials and issues a fresh token.
func (s *DefaultSellerService) Authenticate(email, password string) (*AuthResponse, error) {
	logger := utils.GetLogger()

	acct, err := s.Repo.GetByEmail(email)
	if err != nil {
		logger.Error("Failed to fetch account for login", zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}
	if acct == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(acct)
}

// issueToken mints a JWT, stores its hash on the account and caches it for
// the auth middleware.
func (s *DefaultSellerService) issueToken(acct *models.Seller) (*AuthResponse, error) {
	token, err := utils.GenerateToken(acct.ID, acct.Role, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateSetDocument(acct.ID, map[string]any{
		"token_hash": tokenHash,
		"updatedAt":  time.Now(),
	}); err != nil {
		return nil, fmt.Errorf("failed to store token hash: %w", err)
	}

	authCache := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + acct.ID
	if err := authCache.Set(context.Background(), cacheKey, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("Failed to cache auth token", zap.Error(err))
	}

	return &AuthResponse{
		ID:       acct.ID,
		Token:    token,
		Name:     acct.Name,
		Username: acct.Username,
		Email:    acct.Email,
		Role:     acct.Role,
	}, nil
}

// RevokeToken logs the account out everywhere by clearing the stored hash.
func (s *DefaultSellerService) RevokeToken(sellerID string) error {
	if err := s.Repo.UpdateSetDocument(sellerID, map[string]any{
		"token_hash": "",
		"updatedAt":  time.Now(),
	}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	cacheKey := utils.AuthCachePrefix + sellerID
	if err := utils.GetAuthCacheClient().Del(context.Background(), cacheKey).Err(); err != nil {
		utils.GetLogger().Warn("Failed to clear auth cache on logout", zap.Error(err))
	}
	return nil
}

// UpdatePassword changes the password after verifying the current one, and
// revokes the outstanding token.
func (s *DefaultSellerService) UpdatePassword(sellerID, currentPassword, newPassword string) error {
	acct, err := s.Repo.GetByID(sellerID)
	if err != nil {
		return fmt.Errorf("account not found: %w", err)
	}

	if len(acct.PasswordHash) > 0 {
		if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(currentPassword)); err != nil {
			return fmt.Errorf("current password is incorrect")
		}
	}

	if err := verifyPasswordComplexity(newPassword); err != nil {
		return err
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.Repo.UpdateSetDocument(sellerID, map[string]any{
		"password_hash": string(newHash),
		"token_hash":    "",
		"updatedAt":     time.Now(),
	}); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	cacheKey := utils.AuthCachePrefix + sellerID
	_ = utils.GetAuthCacheClient().Del(context.Background(), cacheKey).Err()
	return nil
}

// ResetPassword overwrites the password without checking the old one. The
// caller is responsible for authorization; only admins reach this path.
func (s *DefaultSellerService) ResetPassword(sellerID, newPassword string) error {
	if err := verifyPasswordComplexity(newPassword); err != nil {
		return err
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.Repo.UpdateSetDocument(sellerID, map[string]any{
		"password_hash": string(newHash),
		"token_hash":    "",
		"updatedAt":     time.Now(),
	}); err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}

	cacheKey := utils.AuthCachePrefix + sellerID
	_ = utils.GetAuthCacheClient().Del(context.Background(), cacheKey).Err()
	return nil
}

func verifyPasswordComplexity(password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
	}
	return nil
}
