// utils/http.go
package utils

import (
	"net/http"
	"time"
)

// HTTPClient is shared by all outbound calls to the text-generation API.
var HTTPClient = &http.Client{
	Timeout: 60 * time.Second,
}
