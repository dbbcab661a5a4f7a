package dto

import (
	"time"

	"github.com/sohhamm/personal-finance-app/internal/domain/entity"
	"github.com/sohhamm/personal-finance-app/internal/domain/port/usecase"
)

// CreatePotRequest represents the API request for creating a pot
type CreatePotRequest struct {
	Name   string `json:"name" binding:"required,min=1,max=255"`
	Target string `json:"target" binding:"required"`
	Theme  string `json:"theme" binding:"required,max=50"`
}

// UpdatePotRequest represents the API request for a partial pot update
type UpdatePotRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=1,max=255"`
	Target *string `json:"target"`
	Theme  *string `json:"theme" binding:"omitempty,max=50"`
}

// PotMoneyRequest represents the API request for moving money in or out of a pot
type PotMoneyRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// PotResponse represents a pot in API responses
type PotResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Target    string    `json:"target"`
	Total     string    `json:"total"`
	Theme     string    `json:"theme"`
	CreatedAt time.Time `json:"createdAt"`
}

// PotProgressResponse is a pot's saved-versus-target breakdown
type PotProgressResponse struct {
	Pot       PotResponse `json:"pot"`
	Progress  string      `json:"progress"`
	Remaining string      `json:"remaining"`
}

// DeletedPotResponse reports the total returned when a pot is deleted
type DeletedPotResponse struct {
	ReturnedTotal string `json:"returnedTotal"`
}

// NewPotResponse maps a pot entity to its API representation
func NewPotResponse(pot *entity.Pot) PotResponse {
	return PotResponse{
		ID:        pot.ID.String(),
		Name:      pot.Name,
		Target:    entity.FormatAmount(pot.Target),
		Total:     entity.FormatAmount(pot.Total),
		Theme:     pot.Theme,
		CreatedAt: pot.CreatedAt,
	}
}

// NewPotResponses maps a slice of pot entities
func NewPotResponses(pots []*entity.Pot) []PotResponse {
	responses := make([]PotResponse, 0, len(pots))
	for _, pot := range pots {
		responses = append(responses, NewPotResponse(pot))
	}
	return responses
}

// NewPotProgressResponse maps a pot progress breakdown to its API representation
func NewPotProgressResponse(progress *usecase.PotProgress) PotProgressResponse {
	return PotProgressResponse{
		Pot:       NewPotResponse(progress.Pot),
		Progress:  progress.Progress.String(),
		Remaining: entity.FormatAmount(progress.Remaining),
	}
}
