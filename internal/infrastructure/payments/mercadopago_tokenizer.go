package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"rede_saude/internal/domain/entities"
	"rede_saude/internal/domain/validation"
	"rede_saude/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/cardtoken"
	"github.com/mercadopago/sdk-go/pkg/config"
)

// MercadoPagoTokenizer exchanges raw card fields for a single-use token via
// the provider's card token endpoint. This is the only code path raw card
// data ever travels through, and none of it is logged.
type MercadoPagoTokenizer struct {
	tokens   cardtoken.Client
	mockMode bool
}

var _ interfaces.ICardTokenizer = (*MercadoPagoTokenizer)(nil)

func NewMercadoPagoTokenizer(accessToken string) (*MercadoPagoTokenizer, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][tokenizer] mock mode enabled")
		return &MercadoPagoTokenizer{mockMode: true}, nil
	}

	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &MercadoPagoTokenizer{tokens: cardtoken.NewClient(cfg)}, nil
}

func (t *MercadoPagoTokenizer) Tokenize(ctx context.Context, card entities.CardDraft) (entities.TokenizedCard, error) {
	number := validation.Digits(card.Number)
	brand := validation.CardBrand(number)
	lastFour := ""
	if len(number) >= 4 {
		lastFour = number[len(number)-4:]
	}

	if t.mockMode {
		log.Printf("[payment][tokenizer] mock token issued brand=%s last_four=%s", brand, lastFour)
		return entities.TokenizedCard{
			Token:    "mock-tok-" + lastFour,
			Brand:    brand,
			LastFour: lastFour,
		}, nil
	}
	if t.tokens == nil {
		return entities.TokenizedCard{}, ErrMercadoPagoGatewayNotConfigured
	}

	year := card.ExpiryYear
	if year < 100 {
		year += 2000
	}

	resp, err := t.tokens.Create(ctx, cardtoken.Request{
		CardNumber:      number,
		ExpirationMonth: fmt.Sprintf("%02d", card.ExpiryMonth),
		ExpirationYear:  strconv.Itoa(year),
		SecurityCode:    card.CVV,
		Cardholder: &cardtoken.CardholderRequest{
			Name: card.HolderName,
		},
	})
	if err != nil {
		log.Printf("[payment][tokenizer] token create failed err=%v", err)
		return entities.TokenizedCard{}, fmt.Errorf("card tokenization: %w", err)
	}
	if resp.ID == "" {
		return entities.TokenizedCard{}, errors.New("card tokenization: provider returned empty token")
	}

	if resp.LastFourDigits != "" {
		lastFour = resp.LastFourDigits
	}
	log.Printf("[payment][tokenizer] token issued brand=%s last_four=%s", brand, lastFour)

	return entities.TokenizedCard{
		Token:    resp.ID,
		Brand:    brand,
		LastFour: lastFour,
	}, nil
}
