package sellersession

import "time"

// Local cache keys and display defaults.
const (
	CacheKeyPhone = "seller_phone"
	CacheKeyName  = "seller_name"

	UnknownSellerName = "Unknown Seller"
)

// Session links a device identifier to seller contact details.
type Session struct {
	DeviceID    string    `json:"device_id"`
	SellerPhone string    `json:"seller_phone"`
	SellerName  string    `json:"seller_name"`
	LastActive  time.Time `json:"last_active"`
}

// SaveResult reports the outcome of Save. Success is always true;
// Fallback marks that only the local cache was written.
type SaveResult struct {
	Success  bool   `json:"success"`
	Fallback bool   `json:"fallback"`
	DeviceID string `json:"device_id"`
}

// LoadResult is a resolved seller session. Fallback marks values that came
// from the local cache rather than the repository; LastActive is zero then.
type LoadResult struct {
	Session
	Fallback bool `json:"fallback"`
}

// Profile is a display-friendly view of the current seller.
type Profile struct {
	Phone    string `json:"phone"`
	Name     string `json:"name"`
	DeviceID string `json:"device_id"`
	Fallback bool   `json:"fallback"`
}
