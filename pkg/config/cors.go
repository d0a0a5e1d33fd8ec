package config

import (
	"fmt"
	"strings"
)

type CORSConfig struct {
	Enabled        bool     `koanf:"enabled"`
	AllowedOrigins []string `koanf:"allowedorigins" validate:"dive,required"`
	AllowedHeaders []string `koanf:"allowedheaders" validate:"dive,required"`
	MaxAge         int      `koanf:"maxage"         validate:"gte=0"`
}

// String returns a string representation of the CORS configuration.
func (c *CORSConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- CORS ---\n")
	b.WriteString(fmt.Sprintf("  enabled: %t\n", c.Enabled))
	b.WriteString(fmt.Sprintf("  allowedorigins: %s\n", strings.Join(c.AllowedOrigins, ",")))
	b.WriteString(fmt.Sprintf("  allowedheaders: %s\n", strings.Join(c.AllowedHeaders, ",")))
	b.WriteString(fmt.Sprintf("  maxage: %d\n", c.MaxAge))
	return b.String()
}

func (c *CORSConfig) Validate() error {
	if err := validateStruct("cors", c); err != nil {
		return err
	}
	if c.Enabled && len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("cors is enabled but no allowed origins are configured")
	}
	return nil
}
