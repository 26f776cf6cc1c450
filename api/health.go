package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Hackeries/Mock-E-Com-Cart/api/web"
	"github.com/jmoiron/sqlx"
)

func handleHealth(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("pinging database: %w", err)
		}

		status := struct {
			Status string `json:"status"`
		}{
			Status: "ok",
		}
		return web.Respond(ctx, w, status, http.StatusOK)
	}
}
