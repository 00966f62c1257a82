package utils

import "strings"

// EnvPrefix is prepended to every environment override the node reads.
const EnvPrefix = "DAIC"

// EnvKey maps a config key such as "query-port" to DAIC_QUERY_PORT.
func EnvKey(key string) string {
	key = strings.ToUpper(strings.NewReplacer("-", "_", ".", "_").Replace(key))
	return EnvPrefix + "_" + key
}
