package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validationMessage arma un mensaje legible a partir de los errores de tags.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "datos inválidos"
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s no cumple la regla '%s'", fe.Field(), fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}
