package address

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"rede_saude/internal/domain/validation"
)

func TestViaCEPLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ws/01310100/json/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"cep":"01310-100","logradouro":"Avenida Paulista","bairro":"Bela Vista","localidade":"São Paulo","uf":"SP"}`))
	}))
	defer srv.Close()

	c := NewViaCEPClientWithBaseURL(srv.URL)
	addr, err := c.Lookup(context.Background(), "01310-100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addr.Street != "Avenida Paulista" || addr.City != "São Paulo" || addr.Region != "SP" {
		t.Fatalf("unexpected address: %+v", addr)
	}
	if addr.PostalCode != "01310100" {
		t.Fatalf("expected normalized cep, got %q", addr.PostalCode)
	}
}

func TestViaCEPLookupNotFound(t *testing.T) {
	// ViaCEP has answered both `"erro": true` and `"erro": "true"` for
	// unknown CEPs; both must map to the sentinel.
	for name, body := range map[string]string{
		"boolean flag": `{"erro":true}`,
		"string flag":  `{"erro":"true"}`,
	} {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			c := NewViaCEPClientWithBaseURL(srv.URL)
			if _, err := c.Lookup(context.Background(), "99999999"); !errors.Is(err, ErrCEPNotFound) {
				t.Fatalf("expected ErrCEPNotFound, got %v", err)
			}
		})
	}
}

func TestViaCEPLookupRejectsMalformedCEP(t *testing.T) {
	c := NewViaCEPClient()
	if _, err := c.Lookup(context.Background(), "12"); !errors.Is(err, validation.ErrInvalidPostalCode) {
		t.Fatalf("expected ErrInvalidPostalCode, got %v", err)
	}
}
