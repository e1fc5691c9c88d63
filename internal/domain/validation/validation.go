// Package validation holds the pure input checks used at checkout step
// boundaries: document check digits, contact data and card data. No I/O.
package validation

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidName       = errors.New("name must have at least 3 characters")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrInvalidCPF        = errors.New("invalid cpf")
	ErrInvalidCNPJ       = errors.New("invalid cnpj")
	ErrInvalidPhone      = errors.New("invalid phone")
	ErrInvalidPostalCode = errors.New("invalid postal code")
	ErrInvalidCardNumber = errors.New("invalid card number")
	ErrCardExpired       = errors.New("card expired")
	ErrInvalidCVV        = errors.New("invalid cvv")
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Digits strips everything but 0-9. Tax ids, phones and CEPs are compared in
// this normalized form.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func Name(name string) error {
	if len(strings.TrimSpace(name)) < 3 {
		return ErrInvalidName
	}
	return nil
}

func Email(email string) error {
	if !emailRe.MatchString(strings.TrimSpace(email)) {
		return ErrInvalidEmail
	}
	return nil
}

// CPF validates the 11-digit individual tax id, including both check digits.
func CPF(cpf string) error {
	d := Digits(cpf)
	if len(d) != 11 || allSame(d) {
		return ErrInvalidCPF
	}
	if checkDigit(d[:9], 10) != int(d[9]-'0') {
		return ErrInvalidCPF
	}
	if checkDigit(d[:10], 11) != int(d[10]-'0') {
		return ErrInvalidCPF
	}
	return nil
}

// CNPJ validates the 14-digit organization tax id, including both check digits.
func CNPJ(cnpj string) error {
	d := Digits(cnpj)
	if len(d) != 14 || allSame(d) {
		return ErrInvalidCNPJ
	}
	if cnpjDigit(d[:12]) != int(d[12]-'0') {
		return ErrInvalidCNPJ
	}
	if cnpjDigit(d[:13]) != int(d[13]-'0') {
		return ErrInvalidCNPJ
	}
	return nil
}

// Phone accepts Brazilian numbers: area code plus 8 or 9 digits.
func Phone(phone string) error {
	d := Digits(phone)
	if len(d) < 10 || len(d) > 11 {
		return ErrInvalidPhone
	}
	return nil
}

// PostalCode accepts an 8-digit CEP, with or without the hyphen.
func PostalCode(cep string) error {
	if len(Digits(cep)) != 8 {
		return ErrInvalidPostalCode
	}
	return nil
}

// CardNumber runs the Luhn check over a 13-19 digit PAN.
func CardNumber(number string) error {
	d := Digits(number)
	if len(d) < 13 || len(d) > 19 {
		return ErrInvalidCardNumber
	}
	sum := 0
	double := false
	for i := len(d) - 1; i >= 0; i-- {
		n := int(d[i] - '0')
		if double {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		sum += n
		double = !double
	}
	if sum%10 != 0 {
		return ErrInvalidCardNumber
	}
	return nil
}

// CardBrand infers the brand from the PAN prefix. Returns "" when unknown;
// an unknown brand is not a validation failure, only a display gap.
func CardBrand(number string) string {
	d := Digits(number)
	switch {
	// Elo shares leading digits with visa/mastercard, so it is matched first.
	case strings.HasPrefix(d, "4011") || strings.HasPrefix(d, "4312") || strings.HasPrefix(d, "5067") || strings.HasPrefix(d, "509"):
		return "elo"
	case strings.HasPrefix(d, "4"):
		return "visa"
	case hasPrefixInRange(d, 51, 55) || hasPrefixInRange(d, 2221, 2720):
		return "mastercard"
	case strings.HasPrefix(d, "34") || strings.HasPrefix(d, "37"):
		return "amex"
	case strings.HasPrefix(d, "6062"):
		return "hipercard"
	default:
		return ""
	}
}

// hasPrefixInRange reports whether the number formed by the first digits of d
// (as many as lo has) falls within [lo, hi].
func hasPrefixInRange(d string, lo, hi int) bool {
	width := len(strconv.Itoa(lo))
	if len(d) < width {
		return false
	}
	n, err := strconv.Atoi(d[:width])
	if err != nil {
		return false
	}
	return n >= lo && n <= hi
}

// CardExpiry rejects month/year combinations already in the past. now is
// injected so tests do not depend on the wall clock.
func CardExpiry(month, year int, now time.Time) error {
	if month < 1 || month > 12 {
		return ErrCardExpired
	}
	if year < 100 {
		year += 2000
	}
	if year < now.Year() || (year == now.Year() && month < int(now.Month())) {
		return ErrCardExpired
	}
	return nil
}

// CVV is 3 digits for every brand except amex, which uses 4.
func CVV(cvv, brand string) error {
	d := Digits(cvv)
	if len(d) != len(cvv) {
		return ErrInvalidCVV
	}
	want := 3
	if brand == "amex" {
		want = 4
	}
	if len(d) != want {
		return ErrInvalidCVV
	}
	return nil
}

func allSame(d string) bool {
	for i := 1; i < len(d); i++ {
		if d[i] != d[0] {
			return false
		}
	}
	return true
}

// checkDigit computes a CPF check digit: weights start at firstWeight and
// decrease to 2 over the given prefix.
func checkDigit(prefix string, firstWeight int) int {
	sum := 0
	for i, c := range prefix {
		sum += int(c-'0') * (firstWeight - i)
	}
	rest := (sum * 10) % 11
	if rest == 10 {
		return 0
	}
	return rest
}

var cnpjWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

func cnpjDigit(prefix string) int {
	weights := cnpjWeights[len(cnpjWeights)-len(prefix):]
	sum := 0
	for i, c := range prefix {
		sum += int(c-'0') * weights[i]
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}
