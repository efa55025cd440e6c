package product

import (
	"errors"

	"github.com/murkotick/product-catalog-graphql/internal/app/product/domain"
)

// Error is what resolvers hand back to the GraphQL engine. The message is
// always a fixed text; the kind travels as extensions.code.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Extensions is picked up by graphql-go and rendered under "extensions".
func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

// mapError translates application errors into GraphQL errors.
// Anything that is not a catalog error becomes INTERNAL.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var de *domain.Error
	if errors.As(err, &de) {
		return &Error{Code: de.Kind.String(), Message: de.Message}
	}
	return &Error{Code: domain.KindUnknown.String(), Message: "internal error"}
}
