package cart

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Hackeries/Mock-E-Com-Cart/api/web"
	"github.com/Hackeries/Mock-E-Com-Cart/api/weberr"
	"github.com/Hackeries/Mock-E-Com-Cart/core/product"
	"github.com/Hackeries/Mock-E-Com-Cart/lock"
	"github.com/Hackeries/Mock-E-Com-Cart/validate"
	"github.com/jmoiron/sqlx"
)

func HandleShow(db *sqlx.DB, scope string) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		c, err := Fetch(ctx, db, scope)
		if err != nil {
			return fmt.Errorf("fetching cart: %w", err)
		}

		return web.Respond(ctx, w, c, http.StatusOK)
	}
}

func HandleCreateItem(db *sqlx.DB, locks *lock.Keyed, scope string) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var in ItemNew
		if err := web.Decode(w, r, &in); err != nil {
			return weberr.BadRequest(fmt.Errorf("decoding cart item: %w", err))
		}

		if err := validate.Check(in); err != nil {
			return weberr.NewError(err, err.Error(), http.StatusBadRequest)
		}

		item, err := AddItem(ctx, db, locks, scope, in.ProductID, in.Quantity)
		if err != nil {
			switch {
			case errors.Is(err, product.ErrNotFound):
				return weberr.NotFound(err)
			case errors.Is(err, ErrQuantityRange):
				return weberr.NewError(err, err.Error(), http.StatusBadRequest)
			}
			return fmt.Errorf("adding product[%d] to cart: %w", in.ProductID, err)
		}

		return web.Respond(ctx, w, item, http.StatusCreated)
	}
}

func HandleUpdateItem(db *sqlx.DB, locks *lock.Keyed, scope string) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		itemID, err := strconv.ParseInt(web.Param(r, "id"), 10, 64)
		if err != nil {
			return weberr.BadRequest(fmt.Errorf("parsing item id: %w", err))
		}

		var in ItemUp
		if err := web.Decode(w, r, &in); err != nil {
			return weberr.BadRequest(fmt.Errorf("decoding cart item update: %w", err))
		}

		if err := validate.Check(in); err != nil {
			return weberr.NewError(err, err.Error(), http.StatusBadRequest)
		}

		if err := UpdateQuantity(ctx, db, locks, scope, itemID, in.Quantity); err != nil {
			switch {
			case errors.Is(err, ErrItemNotFound):
				return weberr.NotFound(err)
			case errors.Is(err, ErrQuantityRange):
				return weberr.NewError(err, err.Error(), http.StatusBadRequest)
			}
			return fmt.Errorf("updating cart item[%d]: %w", itemID, err)
		}

		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}

func HandleDeleteItem(db *sqlx.DB, locks *lock.Keyed, scope string) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		itemID, err := strconv.ParseInt(web.Param(r, "id"), 10, 64)
		if err != nil {
			return weberr.BadRequest(fmt.Errorf("parsing item id: %w", err))
		}

		if err := RemoveItem(ctx, db, locks, scope, itemID); err != nil {
			if errors.Is(err, ErrItemNotFound) {
				return weberr.NotFound(err)
			}
			return fmt.Errorf("removing cart item[%d]: %w", itemID, err)
		}

		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}

func HandleDelete(db *sqlx.DB, locks *lock.Keyed, scope string) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		if err := Clear(ctx, db, locks, scope); err != nil {
			return fmt.Errorf("clearing cart: %w", err)
		}

		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}
