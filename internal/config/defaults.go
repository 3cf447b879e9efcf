package config

import (
	"time"

	"campus-delivery/internal/domain"
)

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "campus_delivery",
}

// Shop origin and geocode bias default to the Kibabii campus pickup point.
var defaultRouting = Routing{
	BaseURL:  "https://api.openrouteservice.org",
	Timeout:  30 * time.Second,
	ShopLat:  0.6085,
	ShopLng:  34.5683,
	FocusLat: 0.61,
	FocusLng: 34.51,
}

var defaultMessaging = Messaging{
	BaseURL: "https://api.twilio.com",
}

var defaultKafka = Kafka{
	GroupID: "delivery-core",
	Topic:   "orders.events",
}

var defaultOrdersGateway = OrdersGateway{
	BaseURL:     "http://127.0.0.1:8000",
	MaxAttempts: 4,
	BaseDelay:   150 * time.Millisecond,
	MaxDelay:    200 * time.Millisecond,
}

var defaultDelivery = Delivery{
	BaseFee:       20.00,
	PerKmRate:     10.00,
	OfferTTL:      15 * time.Minute,
	SweepInterval: time.Minute,
	MaxLoad:       domain.DefaultMaxConcurrentLoad,
}

var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       50,
	Burst:      100,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

var defaultPprof = Pprof{
	Enabled: false,
	Port:    6060,
}

// DefaultPort returns the default port.
func DefaultPort() int { return defaultPort }

// DefaultDB returns the default database settings.
func DefaultDB() DB { return defaultDB }

// DefaultRouting returns the default routing provider settings.
func DefaultRouting() Routing { return defaultRouting }

// DefaultMessaging returns the default messaging provider settings.
func DefaultMessaging() Messaging { return defaultMessaging }

// DefaultKafka returns the default order event consumer settings.
func DefaultKafka() Kafka { return defaultKafka }

// DefaultOrdersGateway returns the default orders gateway settings.
func DefaultOrdersGateway() OrdersGateway { return defaultOrdersGateway }

// DefaultDelivery returns the default assignment core tunables.
func DefaultDelivery() Delivery { return defaultDelivery }

// DefaultRateLimit returns the default rate limit settings.
func DefaultRateLimit() RateLimit { return defaultRateLimit }

// DefaultPprof returns the default pprof gate settings.
func DefaultPprof() Pprof { return defaultPprof }
