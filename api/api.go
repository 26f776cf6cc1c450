package api

import (
	"context"
	"net/http"

	"github.com/Hackeries/Mock-E-Com-Cart/api/middleware"
	"github.com/Hackeries/Mock-E-Com-Cart/api/web"
	"github.com/Hackeries/Mock-E-Com-Cart/core/cart"
	"github.com/Hackeries/Mock-E-Com-Cart/core/checkout"
	"github.com/Hackeries/Mock-E-Com-Cart/core/product"
	"github.com/Hackeries/Mock-E-Com-Cart/lock"
	"github.com/Hackeries/Mock-E-Com-Cart/rate"
	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type APIConfig struct {
	CorsOrigin string
	Log        logrus.FieldLogger
	DB         *sqlx.DB
	Locks      *lock.Keyed
	Scope      string
	Limiter    *rate.Limiter
}

type api struct {
	*mux.Router
	mw  []web.Middleware
	log logrus.FieldLogger
}

func APIMux(cfg APIConfig) http.Handler {
	a := &api{
		Router: mux.NewRouter(),
		log:    cfg.Log,
	}

	a.mw = append(a.mw, middleware.RequestID())
	a.mw = append(a.mw, middleware.Logger(cfg.Log))
	a.mw = append(a.mw, middleware.Errors(cfg.Log))
	a.mw = append(a.mw, middleware.Panics())

	if cfg.Limiter != nil {
		a.mw = append(a.mw, middleware.RateLimit(cfg.Limiter))
	}

	if cfg.CorsOrigin != "" {
		a.mw = append(a.mw, middleware.Cors(cfg.CorsOrigin))

		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusNoContent)
			return nil
		}

		a.Handle(http.MethodOptions, "/{path:.*}", h)
	}

	a.Handle(http.MethodGet, "/health", handleHealth(cfg.DB))

	a.Handle(http.MethodGet, "/products", product.HandleList(cfg.DB))

	a.Handle(http.MethodGet, "/cart", cart.HandleShow(cfg.DB, cfg.Scope))
	a.Handle(http.MethodDelete, "/cart", cart.HandleDelete(cfg.DB, cfg.Locks, cfg.Scope))
	a.Handle(http.MethodPost, "/cart/items", cart.HandleCreateItem(cfg.DB, cfg.Locks, cfg.Scope))
	a.Handle(http.MethodPut, "/cart/items/{id}", cart.HandleUpdateItem(cfg.DB, cfg.Locks, cfg.Scope))
	a.Handle(http.MethodDelete, "/cart/items/{id}", cart.HandleDeleteItem(cfg.DB, cfg.Locks, cfg.Scope))

	a.Handle(http.MethodPost, "/checkout", checkout.HandleCheckout(cfg.Log, cfg.DB, cfg.Locks, cfg.Scope))
	a.Handle(http.MethodGet, "/receipts/{id}", checkout.HandleShowReceipt(cfg.DB))

	return a.Router
}

func (a *api) Handle(method string, path string, handler web.Handler, mw ...web.Middleware) {

	handler = web.WrapMiddleware(mw, handler)

	handler = web.WrapMiddleware(a.mw, handler)

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ctx := r.Context()

		if err := handler(ctx, w, r); err != nil {

			a.log.WithFields(logrus.Fields{
				"req_id":  middleware.ContextRequestID(ctx),
				"message": err,
			}).Error("ERROR")
		}
	})

	a.Router.Handle(path, h).Methods(method)
}
