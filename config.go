package gotodo

import "github.com/rs/zerolog"

// DefaultListLimit is the page size used when a caller lists todos without
// specifying a limit.
const DefaultListLimit uint32 = 10

// ServiceOption allows functional configuration of the service
type ServiceOption func(*Service)

// WithLogger sets a custom logger for the service
func WithLogger(logger zerolog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithIDGenerator sets a custom id derivation function
func WithIDGenerator(gen IDGenerator) ServiceOption {
	return func(s *Service) {
		s.ids = gen
	}
}

// WithRandomIDs switches id derivation from content hashing to random
// 32-bit ids. Create then retries on the rare key collision instead of
// overwriting an existing record.
func WithRandomIDs() ServiceOption {
	return func(s *Service) {
		s.ids = RandomID
		s.retryOnCollision = true
	}
}
