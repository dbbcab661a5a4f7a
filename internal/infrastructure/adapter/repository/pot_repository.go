package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sohhamm/personal-finance-app/internal/domain/entity"
	errs "github.com/sohhamm/personal-finance-app/internal/domain/error"
	coreport "github.com/sohhamm/personal-finance-app/internal/domain/port/core"
	"github.com/sohhamm/personal-finance-app/internal/infrastructure/adapter/model"
)

// PotRepository implements PotRepository interface using GORM
type PotRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewPotRepository creates a new PotRepository instance
func NewPotRepository(db *gorm.DB, logger coreport.Logger) *PotRepository {
	return &PotRepository{
		db:     db,
		logger: logger,
	}
}

// entityToModel converts a pot entity to a database model
func (r *PotRepository) entityToModel(pot *entity.Pot) model.Pot {
	return model.Pot{
		ID:        pot.ID,
		UserID:    pot.UserID,
		Name:      pot.Name,
		Target:    pot.Target,
		Total:     pot.Total,
		Theme:     pot.Theme,
		CreatedAt: pot.CreatedAt,
		UpdatedAt: pot.UpdatedAt,
	}
}

// modelToEntity converts a database model to a pot entity
func (r *PotRepository) modelToEntity(potModel *model.Pot) *entity.Pot {
	return &entity.Pot{
		ID:        potModel.ID,
		UserID:    potModel.UserID,
		Name:      potModel.Name,
		Target:    potModel.Target,
		Total:     potModel.Total,
		Theme:     potModel.Theme,
		CreatedAt: potModel.CreatedAt,
		UpdatedAt: potModel.UpdatedAt,
	}
}

// Create saves a new pot
func (r *PotRepository) Create(ctx context.Context, pot *entity.Pot) error {
	r.logger.Debug("Creating pot", map[string]any{
		"pot_id":  pot.ID.String(),
		"user_id": pot.UserID.String(),
	})

	potModel := r.entityToModel(pot)

	result := r.db.WithContext(ctx).Create(&potModel)
	if result.Error != nil {
		r.logger.Error("Failed to create pot", map[string]any{
			"pot_id": pot.ID.String(),
			"error":  result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return nil
}

// GetByID retrieves a pot owned by the user
func (r *PotRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Pot, error) {
	var potModel model.Pot

	result := r.db.WithContext(ctx).
		First(&potModel, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrPotNotFound
		}
		r.logger.Error("Failed to get pot", map[string]any{
			"pot_id": id.String(),
			"error":  result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&potModel), nil
}

// List returns the user's pots ordered by creation time, newest first
func (r *PotRepository) List(ctx context.Context, userID uuid.UUID) ([]*entity.Pot, error) {
	var potModels []model.Pot

	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&potModels)
	if result.Error != nil {
		r.logger.Error("Failed to list pots", map[string]any{
			"user_id": userID.String(),
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	pots := make([]*entity.Pot, 0, len(potModels))
	for i := range potModels {
		pots = append(pots, r.modelToEntity(&potModels[i]))
	}

	return pots, nil
}

// Update persists changes to an existing pot
func (r *PotRepository) Update(ctx context.Context, pot *entity.Pot) error {
	potModel := r.entityToModel(pot)

	result := r.db.WithContext(ctx).Model(&model.Pot{}).
		Where("id = ? AND user_id = ?", pot.ID, pot.UserID).
		Updates(map[string]interface{}{
			"name":       potModel.Name,
			"target":     potModel.Target,
			"total":      potModel.Total,
			"theme":      potModel.Theme,
			"updated_at": potModel.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Error("Failed to update pot", map[string]any{
			"pot_id": pot.ID.String(),
			"error":  result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrPotNotFound
	}

	return nil
}

// Delete removes a pot owned by the user
func (r *PotRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Pot{})
	if result.Error != nil {
		r.logger.Error("Failed to delete pot", map[string]any{
			"pot_id": id.String(),
			"error":  result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrPotNotFound
	}

	return nil
}
