package config

const (
	LISTEN_ADDR         = "LISTEN_ADDR"
	METRICS_ADDR        = "METRICS_ADDR"
	IS_DEV              = "IS_DEV"
	FETCH_TIMEOUT_SEC   = "FETCH_TIMEOUT_SEC"
	PROBE_TIMEOUT_SEC   = "PROBE_TIMEOUT_SEC"
	LINK_WORKERS        = "LINK_WORKERS"
	IMAGE_WORKERS       = "IMAGE_WORKERS"
	PROBE_CACHE_TTL_MIN = "PROBE_CACHE_TTL_MIN"
	USER_AGENT          = "USER_AGENT"
)
