package handlers

import (
	"errors"
	"net/http"

	response "rede_saude/internal/adapter/http/dto/response"
	"rede_saude/internal/domain/validation"
	"rede_saude/internal/usecase/interfaces"
	"rede_saude/pkg"

	"github.com/gin-gonic/gin"
)

// AddressHandler prefills the customer form from a CEP lookup. Checkout
// works the same whether or not this endpoint is reachable.

type AddressHandler struct {
	lookup interfaces.IAddressLookup
}

func NewAddressHandler(lookup interfaces.IAddressLookup) *AddressHandler {
	return &AddressHandler{lookup: lookup}
}

func (h *AddressHandler) LookupAddress(c *gin.Context) {
	addr, err := h.lookup.Lookup(c.Request.Context(), c.Param("cep"))
	if err != nil {
		if errors.Is(err, validation.ErrInvalidPostalCode) {
			appErr := pkg.NewDomainErrorSimple("INVALID_CEP", "Postal code must have 8 digits", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		appErr := pkg.NewDomainErrorSimple("ADDRESS_NOT_FOUND", "Address not found for this postal code", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAddress(addr))
}
