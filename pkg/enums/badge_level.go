package enums

import "fmt"

// BadgeLevel is the optional seller reputation tier.
type BadgeLevel string

const (
	BadgeLevelPro    BadgeLevel = "Pro"
	BadgeLevelElite  BadgeLevel = "Elite"
	BadgeLevelExpert BadgeLevel = "Expert"
)

var validBadgeLevels = []BadgeLevel{
	BadgeLevelPro,
	BadgeLevelElite,
	BadgeLevelExpert,
}

func (b BadgeLevel) IsValid() bool {
	for _, candidate := range validBadgeLevels {
		if candidate == b {
			return true
		}
	}
	return false
}

// ParseBadgeLevel converts raw strings into BadgeLevel.
func ParseBadgeLevel(value string) (BadgeLevel, error) {
	for _, candidate := range validBadgeLevels {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid badge level %q", value)
}
