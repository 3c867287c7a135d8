// Package gateway holds the HTTP handlers that validate requests, forward
// them to the translation upstream and reshape the answers.
package gateway

import (
	"github.com/valpere/trangate/internal/translator"
	"github.com/valpere/trangate/internal/validator"
)

const (
	// APIPrefix is the path prefix shared by all translator routes.
	APIPrefix = "/api.v1.TextTranslator.com"
	// HealthPath serves Handler.Health.
	HealthPath = "/healthz"
)

type Options struct {
	// StrictErrors answers upstream failures with 502 and unsupported
	// operations with 501 instead of collapsing everything to 400.
	StrictErrors bool
	DocsPath     string
}

type Handler struct {
	Service   translator.Service
	Validator *validator.Validator
	Options   Options
}

func NewHandler(svc translator.Service, opts Options) *Handler {
	return &Handler{
		Service:   svc,
		Validator: validator.New(),
		Options:   opts,
	}
}
