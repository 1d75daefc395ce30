package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 1
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultMongoPoolSize  = 20
	defaultGCDiscardRatio = 0.5
	defaultRateLimitBurst = 10
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "5s",

		"log.level":  "info",
		"log.format": "json",

		"api.strict_not_found": false,

		"storage.driver":                  DriverMongo,
		"storage.mongo.uri":               "mongodb://localhost:27017",
		"storage.mongo.database":          "todos",
		"storage.mongo.collection":        "todos",
		"storage.mongo.connect_timeout":   "10s",
		"storage.mongo.max_pool_size":     defaultMongoPoolSize,
		"storage.badger.path":             "data/badger",
		"storage.badger.in_memory":        false,
		"storage.badger.gc_interval":      "5m",
		"storage.badger.gc_discard_ratio": defaultGCDiscardRatio,

		"client.base_url":                        "http://localhost:8080",
		"client.timeout":                         "10s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "2s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           defaultRateLimitBurst,

		"cache.backend":        CacheMemory,
		"cache.ttl":            "30s",
		"cache.redis.addr":     "localhost:6379",
		"cache.redis.password": "",
		"cache.redis.db":       0,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todo-service",
	}
}
