package replenishment

import (
	"context"

	"github.com/jhoicas/smartstock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de DB, pasando
// repositorios atados a esa tx. Es el borde de atomicidad del commit de
// reposición: stock + log + cadencia se aplican juntos o no se aplica nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		logRepo repository.ReplenishmentLogRepository,
		cadenceRepo repository.CadenceRepository,
	) error) error
}
