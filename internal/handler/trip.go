package handler

import (
	"context"
	"errors"

	"github.com/pkordes/trip-registry/internal/domain"
	"github.com/pkordes/trip-registry/internal/handler/gen"
)

// ListTrips handles GET {base}/trips.
// Supports ?page= and ?pageSize= (defaults: page=1, pageSize=10, no maximum).
func (s *Server) ListTrips(ctx context.Context, req gen.ListTripsRequestObject) (gen.ListTripsResponseObject, error) {
	params, err := domain.NewPaginationParams(req.Params.Page, req.Params.PageSize)
	if err != nil {
		return gen.ListTrips400JSONResponse(invalidArgumentBody(err)), nil
	}

	trips, err := s.trips.ListPaged(ctx, params)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidArgument) {
			return gen.ListTrips400JSONResponse(invalidArgumentBody(err)), nil
		}
		return nil, err
	}

	data := make(gen.ListTrips200JSONResponse, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	return data, nil
}

// tripToResponse converts a domain.Trip into its wire form.
func tripToResponse(t domain.Trip) gen.Trip {
	return gen.Trip{
		IdTrip:      t.IDTrip,
		Name:        t.Name,
		Description: t.Description,
		DateFrom:    t.DateFrom,
		DateTo:      t.DateTo,
		MaxPeople:   t.MaxPeople,
	}
}
