package kafka

import "time"

// Config holds Kafka connection parameters.
type Config struct {
	ClientID string

	// SASL configuration for authentication.
	SASLMechanism string // "PLAIN" or "SCRAM-SHA-256" or "SCRAM-SHA-512"
	SASLUsername  string
	SASLPassword  string

	Brokers []string

	// BatchTimeout bounds how long a partial batch waits before being sent.
	// Zero selects 10ms.
	BatchTimeout time.Duration

	// TLSCAFile optionally pins the CA used to verify brokers.
	TLSCAFile string

	// TLS enables TLS for Kafka connections.
	TLS         bool
	SASLEnabled bool
}
