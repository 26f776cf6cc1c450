package config

import "time"

type Config struct {
	Web  Web
	Cors Cors
	DB   DB
	Cart Cart
	Rate Rate
}

type Web struct {
	Address         string        `conf:"default:0.0.0.0:5000"`
	ReadTimeout     time.Duration `conf:"default:5s"`
	WriteTimeout    time.Duration `conf:"default:10s"`
	IdleTimeout     time.Duration `conf:"default:120s"`
	ShutdownTimeout time.Duration `conf:"default:20s"`
}

type Cors struct {
	Origin string `conf:"default:http://localhost:3000"`
}

type DB struct {
	Path string `conf:"default:ecommerce.db"`
}

type Cart struct {
	// Scope identifies the active cart. A single scope is instantiated
	// today, but every store operation is keyed by it.
	Scope string `conf:"default:default"`
}

type Rate struct {
	RPS    float64 `conf:"default:50"`
	Burst  int     `conf:"default:100"`
	Expiry int     `conf:"default:5"`
}
