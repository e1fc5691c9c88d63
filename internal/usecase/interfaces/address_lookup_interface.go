package interfaces

import (
	"context"

	"rede_saude/internal/domain/entities"
)

// IAddressLookup resolves a CEP into a prefillable postal address. The
// checkout flow never depends on a lookup succeeding; it only consumes the
// returned fields when available.
type IAddressLookup interface {
	Lookup(ctx context.Context, cep string) (entities.Address, error)
}
