// Package paging fetches page-keyed remote data through single-use
// sources produced by an invalidating factory. It is framework
// agnostic: sources speak plain page numbers, and the host binds them
// to whatever paging orchestrator drives its lists.
package paging

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// JumpingDisabled is the jump threshold sentinel meaning the host's
// paging orchestrator must never jump.
const JumpingDisabled = math.MinInt

// defaultJumpMultiplier sizes the jump threshold relative to the page
// size when the caller does not supply a multiplier.
const defaultJumpMultiplier = 3

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config describes how a Factory builds its sources.
type Config struct {
	// PageSize is the number of items requested per page.
	PageSize int `validate:"required,gt=0"`

	// EnableJumping allows the paging orchestrator to skip intermediate
	// pages on large scroll distances.
	EnableJumping bool

	// JumpMultiplier scales PageSize into the jump threshold. Zero
	// means the default of 3. Ignored unless EnableJumping is set.
	JumpMultiplier float64 `validate:"gte=0"`
}

// Validate checks the config's structural constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid paging config: %w", err)
	}
	return nil
}

// JumpThreshold returns the item distance at which the orchestrator may
// jump, or JumpingDisabled when jumping is off.
func (c Config) JumpThreshold() int {
	if !c.EnableJumping {
		return JumpingDisabled
	}
	multiplier := c.JumpMultiplier
	if multiplier == 0 {
		multiplier = defaultJumpMultiplier
	}
	return int(math.Round(float64(c.PageSize) * multiplier))
}
