package params

import "os"

// InfluxConfig is optional. Tour stops are exported only if
// URL, Token, Org and Bucket are all set.
type InfluxConfig struct {
	URL         string
	Token       string
	Org         string
	Bucket      string
	Measurement string
}

func DefaultInfluxConfig() *InfluxConfig {
	return &InfluxConfig{
		URL:         os.Getenv("INFLUXDB_URL"),
		Token:       os.Getenv("INFLUXDB_TOKEN"),
		Org:         os.Getenv("INFLUXDB_ORG"),
		Bucket:      os.Getenv("INFLUXDB_BUCKET"),
		Measurement: "tour_stop",
	}
}

func (c *InfluxConfig) Enabled() bool {
	return c != nil && c.URL != "" && c.Token != "" && c.Org != "" && c.Bucket != ""
}
