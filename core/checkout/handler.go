package checkout

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Hackeries/Mock-E-Com-Cart/api/web"
	"github.com/Hackeries/Mock-E-Com-Cart/api/weberr"
	"github.com/Hackeries/Mock-E-Com-Cart/lock"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

func HandleCheckout(log logrus.FieldLogger, db *sqlx.DB, locks *lock.Keyed, scope string) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var req Request
		if err := web.Decode(w, r, &req); err != nil {
			return weberr.BadRequest(fmt.Errorf("decoding checkout request: %w", err))
		}

		rc, err := Process(ctx, log, db, locks, scope, req)
		if err != nil {
			switch {
			case errors.Is(err, ErrEmptyCart):
				return weberr.NewError(err, err.Error(), http.StatusUnprocessableEntity)
			case errors.Is(err, ErrMissingCustomer), errors.Is(err, ErrInvalidEmail):
				return weberr.NewError(err, err.Error(), http.StatusBadRequest)
			}
			return fmt.Errorf("processing checkout: %w", err)
		}

		return web.Respond(ctx, w, rc, http.StatusOK)
	}
}

func HandleShowReceipt(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		rc, err := Fetch(ctx, db, web.Param(r, "id"))
		if err != nil {
			if errors.Is(err, ErrReceiptNotFound) {
				return weberr.NotFound(err)
			}
			return fmt.Errorf("fetching receipt: %w", err)
		}

		return web.Respond(ctx, w, rc, http.StatusOK)
	}
}
