package params

import "os"

type WebDaemonConfig struct {
	ListenerConfig
	DataDir string

	// Token, when set, is required of write requests (POST /populate),
	// as a Bearer token or a "token" query param.
	Token string

	Tour   *TourConfig
	Influx *InfluxConfig
}

func DefaultWebListenerConfig() ListenerConfig {
	return ListenerConfig{
		Network: "tcp",
		Address: "localhost:3000",
	}
}

func DefaultWebDaemonConfig() *WebDaemonConfig {
	return &WebDaemonConfig{
		DataDir:        DefaultDatadirRoot,
		ListenerConfig: DefaultWebListenerConfig(),
		Token:          os.Getenv(EnvPrefix + "_TOKEN"),
		Tour:           DefaultTourConfig(),
		Influx:         DefaultInfluxConfig(),
	}
}

func DefaultTestWebDaemonConfig() *WebDaemonConfig {
	return &WebDaemonConfig{
		DataDir: "",
		ListenerConfig: ListenerConfig{
			Network: "tcp",
			Address: "localhost:3333",
		},
		Tour:   DefaultTourConfig(),
		Influx: nil,
	}
}
