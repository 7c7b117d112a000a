package enums

import "fmt"

// ProductStatus is the listing lifecycle state.
type ProductStatus string

const (
	ProductStatusPending    ProductStatus = "pending"
	ProductStatusProcessing ProductStatus = "processing"
	ProductStatusLive       ProductStatus = "live"
	ProductStatusSold       ProductStatus = "sold"
	ProductStatusInactive   ProductStatus = "inactive"
)

var validProductStatuses = []ProductStatus{
	ProductStatusPending,
	ProductStatusProcessing,
	ProductStatusLive,
	ProductStatusSold,
	ProductStatusInactive,
}

func (s ProductStatus) IsValid() bool {
	for _, candidate := range validProductStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseProductStatus converts raw strings into ProductStatus.
func ParseProductStatus(value string) (ProductStatus, error) {
	for _, candidate := range validProductStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product status %q", value)
}
