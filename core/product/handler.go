package product

import (
	"context"
	"net/http"

	"github.com/Hackeries/Mock-E-Com-Cart/api/web"
	"github.com/jmoiron/sqlx"
)

func HandleList(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		products, err := List(ctx, db)
		if err != nil {
			return err
		}

		return web.Respond(ctx, w, products, http.StatusOK)
	}
}
