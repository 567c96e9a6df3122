// Package matutils implements utility function for working with mat.Matrix
// structs
package matutils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Format formats a matrix for printing with two decimal places
func Format(X mat.Matrix) string {
	return FormatPrec(X, 2)
}

// FormatPrec formats a matrix for printing, with each value printed to
// prec decimal places
func FormatPrec(X mat.Matrix, prec int) string {
	fa := mat.Formatted(X, mat.Prefix(""), mat.Squeeze())
	return fmt.Sprintf("%.*f", prec, fa)
}
