// internal/domain/models/dashboardsettings.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DashboardSettings holds the operator-editable dashboard preferences.
// There is a single settings document.
type DashboardSettings struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	SiteName       string `bson:"site_name" json:"siteName"`             // shown in the navbar
	FiatCurrency   string `bson:"fiat_currency" json:"fiatCurrency"`     // ISO code balances are shown in
	RefreshSeconds int    `bson:"refresh_seconds" json:"refreshSeconds"` // polling interval for non-streamed panels
	Notice         string `bson:"notice,omitempty" json:"notice,omitempty"`

	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}

// Defaults used when no settings document exists.
const (
	DefaultSiteName       = "TradeDesk"
	DefaultFiatCurrency   = "USD"
	DefaultRefreshSeconds = 30
)

// DefaultDashboardSettings returns the settings used before the operator
// saves any.
func DefaultDashboardSettings() DashboardSettings {
	return DashboardSettings{
		SiteName:       DefaultSiteName,
		FiatCurrency:   DefaultFiatCurrency,
		RefreshSeconds: DefaultRefreshSeconds,
	}
}
