package replenishment

import (
	"context"

	"github.com/jhoicas/smartstock-api/internal/application/dto"
	"github.com/jhoicas/smartstock-api/internal/domain"
	"github.com/jhoicas/smartstock-api/internal/domain/entity"
	"github.com/jhoicas/smartstock-api/internal/domain/repository"
)

// CadenceUseCase administra la frecuencia de reposición por (producto,
// tienda) y expone la próxima fecha esperada. La validación del rango [1,3]
// vive aquí, en el borde: nunca llega una frecuencia inválida a la DB.
type CadenceUseCase struct {
	cadenceRepo repository.CadenceRepository
	productRepo repository.ProductRepository
	storeRepo   repository.StoreRepository
}

// NewCadenceUseCase construye el caso de uso.
func NewCadenceUseCase(
	cadenceRepo repository.CadenceRepository,
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
) *CadenceUseCase {
	return &CadenceUseCase{cadenceRepo: cadenceRepo, productRepo: productRepo, storeRepo: storeRepo}
}

// Set crea o actualiza la cadencia del par. ErrInvalidCadence si la
// frecuencia está fuera de [1,3]; ErrNotFound si producto o tienda no
// existen. Sin escritura parcial en ninguno de los dos casos.
func (uc *CadenceUseCase) Set(ctx context.Context, in dto.CadenceRequest) (*dto.CadenceResponse, error) {
	if !entity.ValidFrequencyDays(in.FrequencyDays) {
		return nil, domain.ErrInvalidCadence
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	store, err := uc.storeRepo.GetByID(ctx, in.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}

	cadence, err := uc.cadenceRepo.Get(ctx, in.ProductID, in.StoreID)
	if err != nil {
		return nil, err
	}
	if cadence == nil {
		cadence = &entity.ReplenishmentCadence{ProductID: in.ProductID, StoreID: in.StoreID}
	}
	cadence.FrequencyDays = in.FrequencyDays
	if in.LastReplenishmentDate != nil {
		cadence.LastReplenishmentDate = in.LastReplenishmentDate
	}
	if err := uc.cadenceRepo.Upsert(ctx, cadence); err != nil {
		return nil, err
	}
	return toCadenceResponse(cadence), nil
}

// Get cadencia de un par. ErrNotFound si no está configurada.
func (uc *CadenceUseCase) Get(ctx context.Context, productID, storeID int) (*dto.CadenceResponse, error) {
	cadence, err := uc.cadenceRepo.Get(ctx, productID, storeID)
	if err != nil {
		return nil, err
	}
	if cadence == nil {
		return nil, domain.ErrNotFound
	}
	return toCadenceResponse(cadence), nil
}

// List cadencias filtradas por tienda y/o producto (cero = sin filtro).
func (uc *CadenceUseCase) List(ctx context.Context, storeID, productID int) ([]dto.CadenceResponse, error) {
	cadences, err := uc.cadenceRepo.List(ctx, storeID, productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CadenceResponse, 0, len(cadences))
	for _, c := range cadences {
		out = append(out, *toCadenceResponse(c))
	}
	return out, nil
}

// Delete elimina la cadencia del par.
func (uc *CadenceUseCase) Delete(ctx context.Context, productID, storeID int) error {
	return uc.cadenceRepo.Delete(ctx, productID, storeID)
}

func toCadenceResponse(c *entity.ReplenishmentCadence) *dto.CadenceResponse {
	resp := &dto.CadenceResponse{
		ProductID:             c.ProductID,
		StoreID:               c.StoreID,
		FrequencyDays:         c.FrequencyDays,
		LastReplenishmentDate: c.LastReplenishmentDate,
	}
	if next, immediate := c.NextDue(); immediate {
		resp.DueImmediately = true
	} else {
		resp.NextDue = &next
	}
	return resp
}
