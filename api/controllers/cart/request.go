package cart

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	cartsvc "github.com/angelmondragon/menucart/internal/cart"
	pkgerrors "github.com/angelmondragon/menucart/pkg/errors"
)

func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid "+name).
			WithDetails(map[string]string{name: "must be a valid uuid"})
	}
	return id, nil
}

// requireContact rejects contact fields that were nothing but markup or
// whitespace before sanitising.
func requireContact(info cartsvc.CustomerInfo) error {
	details := map[string]string{}
	if info.Address == "" {
		details["address"] = "is required"
	}
	if info.Phone == "" {
		details["phone"] = "is required"
	}
	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
	}
	return nil
}
