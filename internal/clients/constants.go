package clients

import "time"

const (
	MAX_RETRIES     = 3
	INITIAL_BACKOFF = 500 * time.Millisecond
	USER_AGENT      = "reviewlens-client/1.0 (+https://github.com/spacesedan/reviewlens)"

	LLM_REQUEST_TIMEOUT   = 30 * time.Second
	FETCH_REQUEST_TIMEOUT = 15 * time.Second
)
