package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/surveybasket/api/internal/core/domain"
	"github.com/surveybasket/api/internal/core/ports"
)

// AuthService drives the session lifecycle: login issues an access/refresh
// pair, refresh rotates the pair atomically, revoke ends the session. All
// outcomes travel as Result values; only startup misconfiguration is fatal.
type AuthService struct {
	userRepo   ports.UserRepository
	ledger     ports.RefreshTokenLedger
	signer     ports.TokenSigner
	log        *slog.Logger
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(userRepo ports.UserRepository, ledger ports.RefreshTokenLedger, signer ports.TokenSigner, log *slog.Logger, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		ledger:     ledger,
		signer:     signer,
		log:        log,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) domain.Result[ports.TokenPair] {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		s.log.Error("failed to look up user", slog.String("err", err.Error()))
		return domain.Failure[ports.TokenPair](domain.ErrInternal)
	}
	if user == nil || !CheckPassword(user.PasswordHash, password) {
		// Absent user and wrong password look identical to the caller.
		return domain.Failure[ports.TokenPair](domain.ErrInvalidCredentials)
	}

	return s.issuePair(ctx, user)
}

func (s *AuthService) Refresh(ctx context.Context, accessToken, refreshToken string) domain.Result[ports.TokenPair] {
	// The access token is usually expired at this point; it only has to
	// carry a verifiable signature and identify the subject.
	claims, err := s.signer.Validate(accessToken, true)
	if err != nil {
		return domain.Failure[ports.TokenPair](domain.ErrInvalidToken)
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID.String())
	if err != nil {
		s.log.Error("failed to look up user", slog.String("err", err.Error()))
		return domain.Failure[ports.TokenPair](domain.ErrInternal)
	}
	if user == nil {
		return domain.Failure[ports.TokenPair](domain.ErrUserNotFound)
	}

	record, err := s.ledger.FindByValue(ctx, refreshToken)
	if err != nil {
		s.log.Error("failed to look up refresh token", slog.String("err", err.Error()))
		return domain.Failure[ports.TokenPair](domain.ErrInternal)
	}
	if record == nil || record.UserID != user.ID {
		return domain.Failure[ports.TokenPair](domain.ErrRefreshTokenNotFound)
	}

	now := time.Now().UTC()
	if !record.IsActiveAt(now) {
		return domain.Failure[ports.TokenPair](domain.ErrRefreshTokenInvalid)
	}

	// Rotation: the compare-and-revoke decides the race. Of concurrent
	// refreshes presenting the same value, exactly one revokes the record
	// and mints the replacement pair; losers see an inactive token.
	revoked, err := s.ledger.RevokeIfActive(ctx, refreshToken, now)
	if err != nil {
		s.log.Error("failed to revoke refresh token", slog.String("err", err.Error()))
		return domain.Failure[ports.TokenPair](domain.ErrInternal)
	}
	if !revoked {
		return domain.Failure[ports.TokenPair](domain.ErrRefreshTokenInvalid)
	}

	return s.issuePair(ctx, user)
}

func (s *AuthService) Revoke(ctx context.Context, refreshToken string) domain.Result[domain.Unit] {
	record, err := s.ledger.FindByValue(ctx, refreshToken)
	if err != nil {
		s.log.Error("failed to look up refresh token", slog.String("err", err.Error()))
		return domain.Failure[domain.Unit](domain.ErrInternal)
	}
	if record == nil {
		return domain.Failure[domain.Unit](domain.ErrRefreshTokenNotFound)
	}

	// Revoking an already revoked token stays a no-op success.
	if err := s.ledger.Revoke(ctx, refreshToken); err != nil {
		s.log.Error("failed to revoke refresh token", slog.String("err", err.Error()))
		return domain.Failure[domain.Unit](domain.ErrInternal)
	}

	return domain.Success(domain.Unit{})
}

func (s *AuthService) issuePair(ctx context.Context, user *domain.User) domain.Result[ports.TokenPair] {
	accessToken, err := s.signer.Issue(user, s.accessTTL)
	if err != nil {
		s.log.Error("failed to issue access token", slog.String("err", err.Error()))
		return domain.Failure[ports.TokenPair](domain.ErrInternal)
	}

	refreshRecord, err := s.ledger.IssueFor(ctx, user.ID, s.refreshTTL)
	if err != nil {
		s.log.Error("failed to issue refresh token", slog.String("err", err.Error()))
		return domain.Failure[ports.TokenPair](domain.ErrInternal)
	}

	return domain.Success(ports.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshRecord.Token,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	})
}

var _ ports.AuthService = (*AuthService)(nil)
