package cloud

import (
	"errors"
	"fmt"
	"strings"
)

// Strategy selects how candidate positions are generated around the center.
type Strategy uint8

const (
	// SectorRings fills concentric rings one quadrant at a time.
	SectorRings Strategy = iota
	// AngularSpiral walks an expanding spiral one degree per step.
	AngularSpiral
)

// ErrInvalidStrategy is returned for an unknown strategy value or name.
var ErrInvalidStrategy = errors.New("invalid layout strategy")

func (s Strategy) String() string {
	switch s {
	case SectorRings:
		return "sector"
	case AngularSpiral:
		return "spiral"
	}
	return fmt.Sprintf("Strategy(%d)", uint8(s))
}

// MarshalText encodes the strategy by name.
func (s Strategy) MarshalText() ([]byte, error) {
	if s != SectorRings && s != AngularSpiral {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStrategy, uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a strategy name.
func (s *Strategy) UnmarshalText(text []byte) error {
	v, err := ResolveStrategy(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ResolveStrategy maps a strategy name to its value. Names are case-insensitive.
func ResolveStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sector", "sectors", "rings":
		return SectorRings, nil
	case "spiral":
		return AngularSpiral, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStrategy, name)
}
