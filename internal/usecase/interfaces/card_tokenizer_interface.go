package interfaces

import (
	"context"

	"rede_saude/internal/domain/entities"
)

// ICardTokenizer exchanges raw card fields for a single-use gateway token plus
// masked display data. The CardDraft passed here is the only place raw card
// data ever leaves the orchestrator.
type ICardTokenizer interface {
	Tokenize(ctx context.Context, card entities.CardDraft) (entities.TokenizedCard, error)
}
