package pricing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cron6502/plansmaisons-backend/pkg/db/models"
)

// ServiceDTO is the wire representation of one add-on service.
type ServiceDTO struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	IsDefault   bool            `json:"is_default"`
}

// QuoteRequest selects services for a quote. A nil Services field means "use
// the catalog defaults"; an explicit empty list means "base price only".
type QuoteRequest struct {
	Services *[]uuid.UUID `json:"services"`
}

// QuoteDTO is the computed price breakdown for one plan.
type QuoteDTO struct {
	PlanID    uuid.UUID       `json:"plan_id"`
	BasePrice decimal.Decimal `json:"base_price"`
	Services  []ServiceDTO    `json:"services"`
	Total     decimal.Decimal `json:"total"`
}

func toServiceDTO(svc models.AdditionalService) ServiceDTO {
	return ServiceDTO{
		ID:          svc.ID,
		Name:        svc.Name,
		Price:       svc.Price,
		Description: svc.Description,
		IsDefault:   svc.IsDefault,
	}
}

func toServiceDTOs(records []models.AdditionalService) []ServiceDTO {
	dtos := make([]ServiceDTO, 0, len(records))
	for _, record := range records {
		dtos = append(dtos, toServiceDTO(record))
	}
	return dtos
}
