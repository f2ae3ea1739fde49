package content

import (
	"github.com/go-logr/logr"
	"github.com/gorilla/mux"
)

type (
	// Service exposes the lock status side panel to a host admin application.
	Service struct {
		logr.Logger

		web *webHandlers
	}

	Options struct {
		logr.Logger

		Client Client
	}
)

func NewService(opts Options) *Service {
	return &Service{
		Logger: opts.Logger,
		web: &webHandlers{
			Logger: opts.Logger,
			client: opts.Client,
		},
	}
}

// AddHandlers registers the lock panel routes with the host router.
func (s *Service) AddHandlers(r *mux.Router) {
	s.web.addHandlers(r)
}
