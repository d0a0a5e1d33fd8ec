package config

import (
	"fmt"
	"strings"
	"time"
)

const defaultPProfReadHeaderTimeout = 5 * time.Second

// PProfConfig controls the net/http/pprof listener, which is kept off the public router.
type PProfConfig struct {
	Enabled           bool          `koanf:"enabled"`
	Addr              string        `koanf:"addr"              validate:"required_if=Enabled true,omitempty,hostname_port"`
	ReadHeaderTimeout time.Duration `koanf:"readheadertimeout" validate:"gte=0"`
}

// String returns a string representation of the pprof configuration.
func (c *PProfConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- PProf ---\n")
	b.WriteString(fmt.Sprintf("  enabled: %t\n", c.Enabled))
	b.WriteString(fmt.Sprintf("  address: %s\n", c.Addr))
	b.WriteString(fmt.Sprintf("  readheadertimeout: %s\n", c.ReadHeaderTimeout))
	return b.String()
}

// Validate checks the section and defaults ReadHeaderTimeout.
func (c *PProfConfig) Validate() error {
	if err := validateStruct("pprof", c); err != nil {
		return err
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = defaultPProfReadHeaderTimeout
	}
	return nil
}
