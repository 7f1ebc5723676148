package repository

import "github.com/jhoicas/Recargas-api/internal/domain/entity"

// BalanceRepository define el puerto para consultar/actualizar el wallet.
// Usado dentro de transacciones para garantizar consistencia.
type BalanceRepository interface {
	// Get devuelve el balance; si no hay fila devuelve el balance en cero.
	Get(userID string) (*entity.Balance, error)
	Upsert(balance *entity.Balance) error
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(userID string) (*entity.Balance, error)
	List() ([]*entity.Balance, error)
}
