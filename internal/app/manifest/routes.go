package manifest

import (
	"path"
	"sort"
	"strings"
)

// RouteTable is the client route table as the server sees it: the views
// declared by resolved modules plus one catch-all redirect.
type RouteTable struct {
	views      map[string]struct{}
	hashPrefix string
	otherwise  string
}

// NewRouteTable builds a table from declared view paths.
func NewRouteTable(views []string, hashPrefix, otherwise string) RouteTable {
	rt := RouteTable{
		views:      make(map[string]struct{}, len(views)),
		hashPrefix: hashPrefix,
		otherwise:  otherwise,
	}
	for _, v := range views {
		if v == "" {
			continue
		}
		rt.views[cleanPath(v)] = struct{}{}
	}
	return rt
}

// Otherwise returns the fallback redirect target.
func (rt RouteTable) Otherwise() string { return rt.otherwise }

// Views returns the declared view paths, sorted.
func (rt RouteTable) Views() []string {
	out := make([]string, 0, len(rt.views))
	for v := range rt.views {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Has reports whether p is a declared view.
func (rt RouteTable) Has(p string) bool {
	_, ok := rt.views[cleanPath(p)]
	return ok
}

// Resolve returns where a browser asking the server for p should go.
// A declared view maps onto its hash address under the app root; every
// other path maps onto the fallback route.
func (rt RouteTable) Resolve(p string) string {
	cp := cleanPath(p)
	if cp == "/" {
		return rt.otherwise
	}
	if rt.Has(cp) {
		return "/" + Href(rt.hashPrefix, cp)
	}
	return rt.otherwise
}

// Href builds the in-app address for p, e.g. Href("!", "/wallets") is
// "#!/wallets".
func Href(hashPrefix, p string) string {
	return "#" + hashPrefix + cleanPath(p)
}

func cleanPath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}
