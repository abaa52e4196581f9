package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stocktake/core/journal"
	"stocktake/core/retail"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// LoginResult is the outcome of a login attempt. Failed credentials are a
// normal outcome, not an error: Success is false and Message explains.
type LoginResult struct {
	Success bool   `json:"success"`
	Role    string `json:"role,omitempty"`
	UserID  string `json:"user_id,omitempty"`
	StoreID string `json:"store_id,omitempty"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}

// Service validates credentials against the employee directory and issues
// session tokens.
type Service struct {
	source   retail.Source
	journal  *journal.Journal
	logger   *zap.Logger
	secret   []byte
	tokenTTL time.Duration
}

// NewService creates a new auth service.
func NewService(src retail.Source, j *journal.Journal, logger *zap.Logger, secret string, tokenTTL time.Duration) *Service {
	return &Service{
		source:   src,
		journal:  j,
		logger:   logger,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// Login validates a username/PIN pair against the employee directory and
// issues a signed session token on success.
func (s *Service) Login(ctx context.Context, username, pin string) (*LoginResult, error) {
	emp, err := s.source.AuthenticateEmployee(ctx, username, pin)
	if errors.Is(err, retail.ErrNotFound) {
		s.journal.Record("login", fmt.Sprintf("Failed login for %s", username), username)
		return &LoginResult{Success: false, Message: "Invalid username or PIN"}, nil
	}
	if err != nil {
		return nil, err
	}

	token, err := s.issueToken(emp)
	if err != nil {
		return nil, err
	}

	s.journal.Record("login", fmt.Sprintf("%s logged in (%s)", emp.Code, emp.Role), emp.Code)
	s.logger.Info("Login", zap.String("user", emp.Code), zap.String("role", emp.Role))

	return &LoginResult{
		Success: true,
		Role:    emp.Role,
		UserID:  emp.Code,
		StoreID: emp.HomeStore,
		Token:   token,
		Message: fmt.Sprintf("Welcome, %s", emp.FirstName),
	}, nil
}

func (s *Service) issueToken(emp *retail.Employee) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   emp.Code,
		"role":  emp.Role,
		"store": emp.HomeStore,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
