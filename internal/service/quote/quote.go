package quote

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"campus-delivery/internal/apperr"
	"campus-delivery/internal/domain"
	"campus-delivery/internal/logx"
)

type geoResolver interface {
	Geocode(ctx context.Context, address string) (domain.Coordinate, error)
	Distance(ctx context.Context, origin, dest domain.Coordinate) (float64, error)
}

type feePricer interface {
	Compute(distanceKm float64) (decimal.Decimal, error)
}

// Service answers fee and geocoding quotes against the pickup point.
type Service struct {
	geo              geoResolver
	pricer           feePricer
	shop             domain.Coordinate
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates a quote Service.
func NewService(geo geoResolver, pricer feePricer, shop domain.Coordinate, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Service{
		geo:              geo,
		pricer:           pricer,
		shop:             shop,
		operationTimeout: timeout,
		logger:           logger,
	}
}

// Fee quotes the delivery fee for a drop-off coordinate.
func (s *Service) Fee(ctx context.Context, dropOff domain.Coordinate) (decimal.Decimal, float64, error) {
	if !dropOff.Valid() {
		return decimal.Decimal{}, 0, apperr.ErrInvalid
	}

	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	distance, err := s.geo.Distance(ctx, s.shop, dropOff)
	if err != nil {
		return decimal.Decimal{}, 0, err
	}

	fee, err := s.pricer.Compute(distance)
	if err != nil {
		return decimal.Decimal{}, 0, err
	}

	s.logger.Debug("fee quoted",
		logx.Float64("distance_km", distance),
		logx.String("fee", fee.StringFixed(2)),
	)
	return fee, distance, nil
}

// Resolve geocodes a free-form delivery address.
func (s *Service) Resolve(ctx context.Context, address string) (domain.Coordinate, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return domain.Coordinate{}, apperr.ErrInvalid
	}

	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	return s.geo.Geocode(ctx, address)
}
