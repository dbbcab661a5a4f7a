package pot

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sohhamm/personal-finance-app/internal/domain/entity"
	coreport "github.com/sohhamm/personal-finance-app/internal/domain/port/core"
	"github.com/sohhamm/personal-finance-app/internal/domain/port/persistence"
	"github.com/sohhamm/personal-finance-app/internal/domain/port/usecase"
)

// PotUseCase implements savings pot business logic
type PotUseCase struct {
	potRepo      persistence.PotRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewPotUseCase creates a new pot use case instance
func NewPotUseCase(
	potRepo persistence.PotRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.PotUseCase {
	return &PotUseCase{
		potRepo:      potRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreatePot creates a pot with a zero total
func (u *PotUseCase) CreatePot(ctx context.Context, userID uuid.UUID, req usecase.CreatePotRequest) (*entity.Pot, error) {
	pot, err := entity.NewPot(userID, req.Name, req.Target, req.Theme, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.potRepo.Create(ctx, pot); err != nil {
		u.logger.Error("Failed to create pot", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Pot created", map[string]any{
		"user_id": userID,
		"pot_id":  pot.ID,
		"name":    pot.Name,
	})

	return pot, nil
}

// GetPot retrieves one pot owned by the user
func (u *PotUseCase) GetPot(ctx context.Context, userID, potID uuid.UUID) (*entity.Pot, error) {
	return u.potRepo.GetByID(ctx, userID, potID)
}

// GetPots returns the user's pots, newest first
func (u *PotUseCase) GetPots(ctx context.Context, userID uuid.UUID) ([]*entity.Pot, error) {
	return u.potRepo.List(ctx, userID)
}

// UpdatePot applies the non-nil fields of the request
func (u *PotUseCase) UpdatePot(ctx context.Context, userID, potID uuid.UUID, req usecase.UpdatePotRequest) (*entity.Pot, error) {
	pot, err := u.potRepo.GetByID(ctx, userID, potID)
	if err != nil {
		return nil, err
	}

	changed := false

	if req.Name != nil && *req.Name != "" {
		pot.Name = *req.Name
		changed = true
	}
	if req.Target != nil {
		target, err := entity.ParsePositiveAmount(*req.Target)
		if err != nil {
			return nil, err
		}
		pot.Target = target
		changed = true
	}
	if req.Theme != nil {
		pot.Theme = *req.Theme
		changed = true
	}

	if !changed {
		return pot, nil
	}

	pot.UpdatedAt = u.timeProvider.Now()

	if err := u.potRepo.Update(ctx, pot); err != nil {
		u.logger.Error("Failed to update pot", map[string]any{
			"user_id": userID,
			"pot_id":  potID,
			"error":   err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Pot updated", map[string]any{
		"user_id": userID,
		"pot_id":  potID,
	})

	return pot, nil
}

// DeletePot removes a pot and returns the total it held
func (u *PotUseCase) DeletePot(ctx context.Context, userID, potID uuid.UUID) (decimal.Decimal, error) {
	pot, err := u.potRepo.GetByID(ctx, userID, potID)
	if err != nil {
		return decimal.Zero, err
	}

	if err := u.potRepo.Delete(ctx, userID, potID); err != nil {
		return decimal.Zero, err
	}

	u.logger.Info("Pot deleted", map[string]any{
		"user_id":         userID,
		"pot_id":          potID,
		"returned_amount": entity.FormatAmount(pot.Total),
	})

	return pot.Total, nil
}

// AddMoney increases the pot total by a positive amount
func (u *PotUseCase) AddMoney(ctx context.Context, userID, potID uuid.UUID, amount string) (*entity.Pot, error) {
	parsed, err := entity.ParsePositiveAmount(amount)
	if err != nil {
		return nil, err
	}

	pot, err := u.potRepo.GetByID(ctx, userID, potID)
	if err != nil {
		return nil, err
	}

	if err := pot.AddMoney(parsed, u.timeProvider); err != nil {
		return nil, err
	}

	if err := u.potRepo.Update(ctx, pot); err != nil {
		u.logger.Error("Failed to save pot deposit", map[string]any{
			"user_id": userID,
			"pot_id":  potID,
			"error":   err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Money added to pot", map[string]any{
		"user_id":   userID,
		"pot_id":    potID,
		"amount":    entity.FormatAmount(parsed),
		"new_total": entity.FormatAmount(pot.Total),
	})

	return pot, nil
}

// WithdrawMoney decreases the pot total; withdrawing more than the total
// fails and leaves the pot unchanged
func (u *PotUseCase) WithdrawMoney(ctx context.Context, userID, potID uuid.UUID, amount string) (*entity.Pot, error) {
	parsed, err := entity.ParsePositiveAmount(amount)
	if err != nil {
		return nil, err
	}

	pot, err := u.potRepo.GetByID(ctx, userID, potID)
	if err != nil {
		return nil, err
	}

	if err := pot.Withdraw(parsed, u.timeProvider); err != nil {
		u.logger.Warn("Pot withdrawal rejected", map[string]any{
			"user_id": userID,
			"pot_id":  potID,
			"amount":  entity.FormatAmount(parsed),
			"total":   entity.FormatAmount(pot.Total),
		})
		return nil, err
	}

	if err := u.potRepo.Update(ctx, pot); err != nil {
		u.logger.Error("Failed to save pot withdrawal", map[string]any{
			"user_id": userID,
			"pot_id":  potID,
			"error":   err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Money withdrawn from pot", map[string]any{
		"user_id":   userID,
		"pot_id":    potID,
		"amount":    entity.FormatAmount(parsed),
		"new_total": entity.FormatAmount(pot.Total),
	})

	return pot, nil
}

// GetPotProgress computes the saved percentage and remaining amount
func (u *PotUseCase) GetPotProgress(ctx context.Context, userID, potID uuid.UUID) (*usecase.PotProgress, error) {
	pot, err := u.potRepo.GetByID(ctx, userID, potID)
	if err != nil {
		return nil, err
	}

	progress, remaining := pot.Progress()
	return &usecase.PotProgress{
		Pot:       pot,
		Progress:  progress,
		Remaining: remaining,
	}, nil
}
