package cli

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	AssumptionKind    = "assumption"
	SimulationKind    = "simulation"
	SimulationLogKind = "log"
)

var (
	pluralKinds = map[string]string{
		AssumptionKind:    "assumptions",
		SimulationKind:    "simulations",
		SimulationLogKind: "logs",
	}
)

func parseAndValidateKindId(arg string) (string, string, error) {
	kind, id, _ := strings.Cut(arg, "/")
	kind = singular(kind)
	if _, ok := pluralKinds[kind]; !ok {
		return "", "", fmt.Errorf("invalid resource kind: %s", kind)
	}
	return kind, id, nil
}

func singular(kind string) string {
	for singular, plural := range pluralKinds {
		if kind == plural {
			return singular
		}
	}
	return kind
}

func plural(kind string) string {
	return pluralKinds[kind]
}

func parseID(kind, id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid %s id %q: must be a positive integer", kind, id)
	}
	return n, nil
}
