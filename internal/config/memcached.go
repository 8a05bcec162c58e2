package config

type MemcachedConfig struct {
	NodeHosts []string `yaml:"hosts"`
	TTL       int32    `yaml:"ttl-seconds"`
}

func (s *MemcachedConfig) Hosts() []string {
	return s.NodeHosts
}

func (s *MemcachedConfig) TTLSeconds() int32 {
	return s.TTL
}

func (s *MemcachedConfig) Enabled() bool {
	return len(s.NodeHosts) > 0
}
