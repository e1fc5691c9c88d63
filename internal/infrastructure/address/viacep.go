// Package address looks postal addresses up by CEP for form prefill. The
// checkout never depends on a lookup succeeding.
package address

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"rede_saude/internal/domain/entities"
	"rede_saude/internal/domain/validation"
	"rede_saude/internal/usecase/interfaces"
)

const defaultBaseURL = "https://viacep.com.br"

var ErrCEPNotFound = errors.New("cep not found")

type ViaCEPClient struct {
	baseURL string
	http    *http.Client
}

var _ interfaces.IAddressLookup = (*ViaCEPClient)(nil)

func NewViaCEPClient() *ViaCEPClient {
	return &ViaCEPClient{
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

// NewViaCEPClientWithBaseURL exists for tests pointing at a local server.
func NewViaCEPClientWithBaseURL(baseURL string) *ViaCEPClient {
	c := NewViaCEPClient()
	c.baseURL = baseURL
	return c
}

type viaCEPResponse struct {
	CEP      string    `json:"cep"`
	Street   string    `json:"logradouro"`
	District string    `json:"bairro"`
	City     string    `json:"localidade"`
	Region   string    `json:"uf"`
	NotFound looseBool `json:"erro"`
}

// looseBool accepts both encodings ViaCEP has used for the "erro" flag:
// the boolean true and the string "true".
type looseBool bool

func (b *looseBool) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	*b = looseBool(s == "true" || s == "1")
	return nil
}

// Lookup resolves a CEP into street/district/city/region.
func (c *ViaCEPClient) Lookup(ctx context.Context, cep string) (entities.Address, error) {
	if err := validation.PostalCode(cep); err != nil {
		return entities.Address{}, err
	}
	cep = validation.Digits(cep)

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, cep)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return entities.Address{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[address][viacep] lookup failed cep=%s err=%v", cep, err)
		return entities.Address{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entities.Address{}, fmt.Errorf("viacep returned status %d", resp.StatusCode)
	}

	var body viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entities.Address{}, err
	}
	if body.NotFound {
		return entities.Address{}, ErrCEPNotFound
	}

	return entities.Address{
		Street:     body.Street,
		District:   body.District,
		City:       body.City,
		Region:     body.Region,
		PostalCode: cep,
	}, nil
}
