package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// UV
	UVProviders   UVProviderRegistry
	SnapshotCache SnapshotCache
	UVMetrics     UVMetrics

	// Location
	PositionSource PositionSource
	CityCatalog    CityCatalog

	// Cache
	CacheProvider CacheProvider

	// Infrastructure
	ConfigProvider   ConfigProvider
	Logger           Logger
	MetricsCollector MetricsCollector
}
