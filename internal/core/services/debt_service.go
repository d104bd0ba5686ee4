package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/moneymap/moneymap_backend/internal/apperrors"
	"github.com/moneymap/moneymap_backend/internal/core/domain"
	portsrepo "github.com/moneymap/moneymap_backend/internal/core/ports/repositories"
	portssvc "github.com/moneymap/moneymap_backend/internal/core/ports/services"
	"github.com/moneymap/moneymap_backend/internal/dto"
)

// debtService tracks informal IOUs. Debts never touch account balances.
type debtService struct {
	BaseService
	debtRepo portsrepo.DebtRepository
}

// NewDebtService creates a debt service.
func NewDebtService(debtRepo portsrepo.DebtRepository) portssvc.DebtSvcFacade {
	return &debtService{debtRepo: debtRepo}
}

var _ portssvc.DebtSvcFacade = (*debtService)(nil)

func (s *debtService) CreateDebt(ctx context.Context, req dto.CreateDebtRequest, userID string) (*domain.Debt, error) {
	personName := strings.TrimSpace(req.PersonName)
	if personName == "" {
		return nil, fmt.Errorf("%w: personName is required", apperrors.ErrValidation)
	}
	if req.Amount == nil || req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	if !domain.ValidDebtType(req.Type) {
		return nil, fmt.Errorf("%w: unknown debt type %q", apperrors.ErrValidation, req.Type)
	}

	notes := ""
	if req.Notes != nil {
		notes = strings.TrimSpace(*req.Notes)
	}

	now := time.Now().UTC()
	debt := domain.Debt{
		DebtID:     uuid.NewString(),
		UserID:     userID,
		PersonName: personName,
		Amount:     *req.Amount,
		Type:       req.Type,
		DueDate:    req.DueDate,
		Notes:      notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.debtRepo.SaveDebt(ctx, debt); err != nil {
		s.LogError(ctx, err, "Failed to save debt", slog.String("person_name", personName))
		return nil, fmt.Errorf("failed to save debt: %w", err)
	}

	s.LogInfo(ctx, "Debt created", slog.String("debt_id", debt.DebtID))
	return &debt, nil
}

func (s *debtService) GetDebtByID(ctx context.Context, userID, debtID string) (*domain.Debt, error) {
	debt, err := s.debtRepo.FindDebtByID(ctx, userID, debtID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find debt", slog.String("debt_id", debtID))
		}
		return nil, err
	}
	return debt, nil
}

func (s *debtService) ListDebts(ctx context.Context, userID string) ([]domain.Debt, error) {
	debts, err := s.debtRepo.ListDebts(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list debts")
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	return debts, nil
}

func (s *debtService) UpdateDebt(ctx context.Context, userID, debtID string, req dto.UpdateDebtRequest) (*domain.Debt, error) {
	debt, err := s.debtRepo.FindDebtByID(ctx, userID, debtID)
	if err != nil {
		return nil, err
	}

	if req.PersonName != nil {
		personName := strings.TrimSpace(*req.PersonName)
		if personName == "" {
			return nil, fmt.Errorf("%w: personName must not be empty", apperrors.ErrValidation)
		}
		debt.PersonName = personName
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
		}
		debt.Amount = *req.Amount
	}
	if req.Type != nil {
		if !domain.ValidDebtType(*req.Type) {
			return nil, fmt.Errorf("%w: unknown debt type %q", apperrors.ErrValidation, *req.Type)
		}
		debt.Type = *req.Type
	}
	if req.DueDate != nil {
		debt.DueDate = req.DueDate
	}
	if req.Notes != nil {
		debt.Notes = strings.TrimSpace(*req.Notes)
	}
	debt.LastUpdatedAt = time.Now().UTC()

	if err := s.debtRepo.UpdateDebt(ctx, *debt); err != nil {
		s.LogError(ctx, err, "Failed to update debt", slog.String("debt_id", debtID))
		return nil, fmt.Errorf("failed to update debt: %w", err)
	}
	return debt, nil
}

func (s *debtService) DeleteDebt(ctx context.Context, userID, debtID string) error {
	if _, err := s.debtRepo.FindDebtByID(ctx, userID, debtID); err != nil {
		return err
	}
	if err := s.debtRepo.DeleteDebt(ctx, userID, debtID); err != nil {
		s.LogError(ctx, err, "Failed to delete debt", slog.String("debt_id", debtID))
		return fmt.Errorf("failed to delete debt: %w", err)
	}
	s.LogInfo(ctx, "Debt deleted", slog.String("debt_id", debtID))
	return nil
}
