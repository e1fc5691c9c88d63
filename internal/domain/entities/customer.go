package entities

// TaxIDKind distinguishes the two Brazilian tax-id formats a beneficiary may use.
type TaxIDKind string

const (
	TaxIDIndividual   TaxIDKind = "cpf"
	TaxIDOrganization TaxIDKind = "cnpj"
)

// Address is the beneficiary's postal address, prefillable from a CEP lookup.
type Address struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	District   string `json:"district"`
	City       string `json:"city"`
	Region     string `json:"region"`
	PostalCode string `json:"postal_code"`
}

// Customer is the beneficiary being onboarded by the checkout.
//
// TaxID is kept digits-only; the gateway layer applies any provider-specific
// normalization on top of that.
type Customer struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	TaxID     string    `json:"tax_id"`
	TaxIDKind TaxIDKind `json:"tax_id_kind"`
	Phone     string    `json:"phone"`
	Address   Address   `json:"address"`
}
