package config

import (
	"fmt"
	"strings"
	"time"
)

// ShutdownConfig bounds how long each server gets to drain on exit.
type ShutdownConfig struct {
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`
}

func (c *ShutdownConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Shutdown ---\n")
	b.WriteString(fmt.Sprintf("  timeout: %s\n", c.Timeout))
	return b.String()
}

func (c *ShutdownConfig) Validate() error {
	return validateStruct("shutdown", c)
}
