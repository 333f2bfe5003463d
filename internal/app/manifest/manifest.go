// Package manifest holds the dashboard's application bootstrap descriptor:
// the ordered list of feature modules the browser app is composed of, the
// notification widget defaults, the hash-prefix address mode and the
// fallback route.
//
// The descriptor is built once at startup (Default) and applied to a Host
// with Configure. It is never mutated afterwards; every accessor hands out
// copies.
package manifest

import (
	"errors"
	"fmt"
	"strings"
)

// AppName is the composite module identifier the SPA shell bootstraps.
const AppName = "myApp"

// DefaultHashPrefix gives addresses of the form #!/path.
const DefaultHashPrefix = "!"

// DefaultOtherwise is where any unmatched address is redirected.
const DefaultOtherwise = "/"

var (
	// ErrEmptyModuleName is returned when a manifest entry is blank.
	ErrEmptyModuleName = errors.New("manifest: empty module name")
	// ErrDuplicateModule is returned when a manifest lists a module twice.
	ErrDuplicateModule = errors.New("manifest: duplicate module")
	// ErrUnresolvedModule is returned when a manifest entry names a module
	// the registry does not know. Startup must abort on it.
	ErrUnresolvedModule = errors.New("manifest: unresolved module")
)

// Manifest is the ordered set of feature-module identifiers.
type Manifest []string

// defaultManifest is the module list of the dashboard, in load order.
var defaultManifest = Manifest{
	"ngRoute",
	"ui-notification",
	"zingchart-angularjs",
	"myApp.home",
	"myApp.wallets",
	"myApp.settings",
	"myApp.version",
	"myApp.buy",
	"myApp.sell",
	"myApp.enabledExchanges",
	"myApp.buyOrders",
	"myApp.sellOrders",
	"myApp.stringUtils",
	"myApp.webSocket",
	"myApp.charts.market-depth",
}

// Validate reports blank or repeated identifiers.
func (m Manifest) Validate() error {
	seen := make(map[string]struct{}, len(m))
	for i, name := range m {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w at position %d", ErrEmptyModuleName, i)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateModule, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// Clone returns an independent copy.
func (m Manifest) Clone() Manifest {
	out := make(Manifest, len(m))
	copy(out, m)
	return out
}

// Descriptor is the bootstrap description of the browser app.
type Descriptor struct {
	name         string
	requires     Manifest
	notification NotificationOptions
	hashPrefix   string
	otherwise    string
}

// Default returns the dashboard's descriptor.
func Default() Descriptor {
	return Descriptor{
		name:         AppName,
		requires:     defaultManifest.Clone(),
		notification: DefaultNotificationOptions(),
		hashPrefix:   DefaultHashPrefix,
		otherwise:    DefaultOtherwise,
	}
}

// New builds a descriptor from explicit parts. It is mostly useful in tests
// and for hosts that embed a different module set.
func New(name string, requires Manifest, n NotificationOptions, hashPrefix, otherwise string) Descriptor {
	return Descriptor{
		name:         name,
		requires:     requires.Clone(),
		notification: n,
		hashPrefix:   hashPrefix,
		otherwise:    otherwise,
	}
}

// Name returns the composite application identifier.
func (d Descriptor) Name() string { return d.name }

// Requires returns a copy of the module manifest.
func (d Descriptor) Requires() Manifest { return d.requires.Clone() }

// Notification returns the notification widget defaults.
func (d Descriptor) Notification() NotificationOptions { return d.notification }

// HashPrefix returns the address-mode prefix.
func (d Descriptor) HashPrefix() string { return d.hashPrefix }

// Otherwise returns the fallback redirect target.
func (d Descriptor) Otherwise() string { return d.otherwise }

// Validate checks the descriptor for configuration errors that would stop
// the app from starting.
func (d Descriptor) Validate() error {
	if d.name == "" {
		return errors.New("manifest: app name is required")
	}
	if err := d.requires.Validate(); err != nil {
		return err
	}
	if err := d.notification.Validate(); err != nil {
		return err
	}
	if !strings.HasPrefix(d.otherwise, "/") {
		return fmt.Errorf("manifest: fallback route %q must start with /", d.otherwise)
	}
	return nil
}
