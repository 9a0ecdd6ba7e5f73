// Package taxid dígito de verificación del NIT colombiano (módulo 11).
package taxid

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrCheckDigit el dígito de verificación escrito no corresponde al NIT.
var ErrCheckDigit = errors.New("taxid: dígito de verificación inválido")

// pesos aplicados a los 9 dígitos base, de izquierda a derecha.
var nitWeights = [9]int{41, 37, 29, 23, 19, 17, 13, 7, 3}

// CheckDigit calcula el dígito de verificación de un NIT base de 9 dígitos
// (se ignoran puntos y espacios).
func CheckDigit(base string) (byte, error) {
	digits := extractDigits(base)
	if len(digits) != 9 {
		return 0, fmt.Errorf("taxid: se esperan 9 dígitos, se encontraron %d", len(digits))
	}
	var sum int
	for i, d := range digits {
		sum += int(d-'0') * nitWeights[i]
	}
	r := sum % 11
	if r == 0 || r == 1 {
		return byte('0' + r), nil
	}
	return byte('0' + (11 - r)), nil
}

// Validate revisa el dígito de verificación solo cuando viene escrito tras un guion
// ("900373115-3"). Cédulas y documentos sin guion se aceptan tal cual.
func Validate(taxID string) error {
	base, dv, ok := strings.Cut(strings.TrimSpace(taxID), "-")
	if !ok {
		return nil
	}
	if len(extractDigits(base)) != 9 {
		return nil
	}
	expected, err := CheckDigit(base)
	if err != nil {
		return err
	}
	dv = strings.TrimSpace(dv)
	if len(dv) != 1 || dv[0] != expected {
		return fmt.Errorf("%w: esperado %c", ErrCheckDigit, expected)
	}
	return nil
}

// WithCheckDigit completa un NIT de 9 dígitos sin guion con su dígito ("900373115" → "900373115-3").
// Cualquier otro valor se devuelve sin cambios.
func WithCheckDigit(taxID string) string {
	s := strings.TrimSpace(taxID)
	if strings.Contains(s, "-") {
		return s
	}
	digits := extractDigits(s)
	if len(digits) != 9 || len(digits) != len(strings.ReplaceAll(s, ".", "")) {
		return s
	}
	dv, err := CheckDigit(s)
	if err != nil {
		return s
	}
	return string(digits) + "-" + string(dv)
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
