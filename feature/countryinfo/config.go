package countryinfo

const (
	// DriverBolt keeps the artifacts in a local bbolt file.
	DriverBolt = "bolt"
	// DriverS3 keeps the artifacts as two JSON objects in the storage bucket.
	DriverS3 = "s3"
)

// Config holds configuration for the artifact store.
type Config struct {
	// Driver selects the artifact store (bolt, s3).
	Driver string `mapstructure:"driver" default:"bolt"`
	// Path is the bbolt file used by the bolt driver.
	Path string `mapstructure:"path" default:"data/countryinfo.db"`
	// AutoBuild builds the artifacts on first query when they are absent.
	AutoBuild bool `mapstructure:"auto_build" default:"true"`
}

// IsValidDriver checks if the configured driver is supported.
func (c Config) IsValidDriver() bool {
	switch c.Driver {
	case DriverBolt, DriverS3:
		return true
	default:
		return false
	}
}
