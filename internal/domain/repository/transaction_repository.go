package repository

import "github.com/jhoicas/Recargas-api/internal/domain/entity"

// TransactionRepository define el puerto de persistencia para movimientos de dinero.
// La referencia tiene constraint único: Create con referencia usada retorna domain.ErrDuplicate.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	GetByReference(reference string) (*entity.Transaction, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Transaction, error)
	List(limit, offset int) ([]*entity.Transaction, error)
}
