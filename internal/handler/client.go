package handler

import (
	"context"
	"errors"

	"github.com/pkordes/trip-registry/internal/domain"
	"github.com/pkordes/trip-registry/internal/handler/gen"
)

// DeleteClient handles DELETE {base}/clients/{idClient}.
// A client with registrations is refused with 400, not 409.
func (s *Server) DeleteClient(ctx context.Context, req gen.DeleteClientRequestObject) (gen.DeleteClientResponseObject, error) {
	err := s.clients.Delete(ctx, req.IdClient)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteClient404JSONResponse(notFoundBody(err)), nil
		}
		if errors.Is(err, domain.ErrConflict) {
			return gen.DeleteClient400JSONResponse(conflictBody(err)), nil
		}
		return nil, err
	}

	return gen.DeleteClient204Response{}, nil
}
