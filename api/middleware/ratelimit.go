package middleware

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/Hackeries/Mock-E-Com-Cart/api/web"
	"github.com/Hackeries/Mock-E-Com-Cart/api/weberr"
	"github.com/Hackeries/Mock-E-Com-Cart/rate"
)

// RateLimit refuses requests from clients that exceed their token bucket.
func RateLimit(limiter *rate.Limiter) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}

			if !limiter.Check(host) {
				return weberr.TooManyRequests(errors.New("rate limit exceeded for " + host))
			}

			return handler(ctx, w, r)
		}
		return h
	}
	return m
}
