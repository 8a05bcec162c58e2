package config

type MetricsConfig struct {
	Address  string `yaml:"address"`
	GRPCAddr string `yaml:"grpc-address"`
}

func (s *MetricsConfig) Addr() string {
	if s.Address == "" {
		return ":9090"
	}
	return s.Address
}

func (s *MetricsConfig) HealthAddr() string {
	if s.GRPCAddr == "" {
		return ":9091"
	}
	return s.GRPCAddr
}

type JaegerConfig struct {
	Service string `yaml:"service"`
	Agent   string `yaml:"agent"`
}

func (s *JaegerConfig) ServiceName() string {
	return s.Service
}

func (s *JaegerConfig) AgentHostPort() string {
	return s.Agent
}
