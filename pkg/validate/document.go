package validate

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var nonDigits = regexp.MustCompile(`\D`)

func digitsOnly(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// IsCPF validates a Brazilian CPF (11 digits, two modulo-11 check digits).
// Punctuation is ignored.
func IsCPF(s string) bool {
	cpf := digitsOnly(s)
	if len(cpf) != 11 || allSame(cpf) {
		return false
	}
	for _, n := range []int{9, 10} {
		sum := 0
		for i := 0; i < n; i++ {
			sum += int(cpf[i]-'0') * (n + 1 - i)
		}
		check := (sum * 10) % 11 % 10
		if check != int(cpf[n]-'0') {
			return false
		}
	}
	return true
}

// IsCNPJ validates a Brazilian CNPJ (14 digits, two modulo-11 check digits).
func IsCNPJ(s string) bool {
	cnpj := digitsOnly(s)
	if len(cnpj) != 14 || allSame(cnpj) {
		return false
	}
	weights := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	for _, n := range []int{12, 13} {
		sum := 0
		for i := 0; i < n; i++ {
			sum += int(cnpj[i]-'0') * weights[len(weights)-n+i]
		}
		check := sum % 11
		if check < 2 {
			check = 0
		} else {
			check = 11 - check
		}
		if check != int(cnpj[n]-'0') {
			return false
		}
	}
	return true
}

// IsCEP accepts 8-digit Brazilian postal codes, with or without the dash.
func IsCEP(s string) bool {
	return len(digitsOnly(s)) == 8
}

var (
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRe = regexp.MustCompile(`^\+?\d{10,13}$`)
)

// IsPixKey checks a PIX key against its declared type
// (cpf, cnpj, email, phone, random).
func IsPixKey(keyType, key string) bool {
	switch strings.ToLower(keyType) {
	case "cpf":
		return IsCPF(key)
	case "cnpj":
		return IsCNPJ(key)
	case "email":
		return emailRe.MatchString(key)
	case "phone":
		return phoneRe.MatchString(strings.TrimSpace(key))
	case "random":
		_, err := uuid.Parse(key)
		return err == nil
	default:
		return false
	}
}
