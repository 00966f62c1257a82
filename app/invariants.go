package app

import (
	"fmt"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

type invariantRoute struct {
	module string
	route  string
	check  sdk.Invariant
}

// invariantRegistry collects module invariants for the host to assert
// before committing a call.
type invariantRegistry struct {
	routes []invariantRoute
}

var _ sdk.InvariantRegistry = (*invariantRegistry)(nil)

func (r *invariantRegistry) RegisterRoute(moduleName, route string, invar sdk.Invariant) {
	r.routes = append(r.routes, invariantRoute{module: moduleName, route: route, check: invar})
}

// Routes returns "<module>/<route>" for every registered invariant.
func (r *invariantRegistry) Routes() []string {
	names := make([]string, 0, len(r.routes))
	for _, rt := range r.routes {
		names = append(names, rt.module+"/"+rt.route)
	}
	return names
}

// assert runs every invariant and reports all broken ones together.
func (r *invariantRegistry) assert(ctx sdk.Context) error {
	var broken []string
	for _, rt := range r.routes {
		if msg, isBroken := rt.check(ctx); isBroken {
			broken = append(broken, msg)
		}
	}
	if len(broken) > 0 {
		return fmt.Errorf("invariant broken:\n%s", strings.Join(broken, "\n"))
	}
	return nil
}
