package handler

import (
	"context"
	"errors"

	"github.com/pkordes/trip-registry/internal/domain"
	"github.com/pkordes/trip-registry/internal/handler/gen"
)

// AssignClientToTrip handles POST {base}/trips/{idTrip}/clients.
func (s *Server) AssignClientToTrip(ctx context.Context, req gen.AssignClientToTripRequestObject) (gen.AssignClientToTripResponseObject, error) {
	if req.Body == nil {
		return gen.AssignClientToTrip400JSONResponse(errorBody(CodeInvalidArgument, "request body is required")), nil
	}
	if resp := s.validateBody(req.Body); resp != nil {
		return gen.AssignClientToTrip400JSONResponse(*resp), nil
	}

	created, err := s.registrations.AssignClientToTrip(ctx, req.IdTrip, requestToClient(req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidArgument) {
			return gen.AssignClientToTrip400JSONResponse(invalidArgumentBody(err)), nil
		}
		return nil, err
	}

	return gen.AssignClientToTrip200JSONResponse(clientTripToResponse(created)), nil
}

// --- mapping helpers --------------------------------------------------------

func requestToClient(body *gen.Client) domain.Client {
	return domain.Client{
		IDClient:  body.IdClient,
		FirstName: derefString(body.FirstName),
		LastName:  derefString(body.LastName),
		Email:     derefString(body.Email),
		Telephone: derefString(body.Telephone),
		Pesel:     body.Pesel,
	}
}

func clientTripToResponse(ct domain.ClientTrip) gen.ClientTrip {
	return gen.ClientTrip{
		IdClient:     ct.IDClient,
		IdTrip:       ct.IDTrip,
		RegisteredAt: ct.RegisteredAt,
		PaymentDate:  ct.PaymentDate,
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
