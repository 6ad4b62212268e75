package adapter

import (
	"fmt"
	"strings"
)

// RequestError carries a failed envelope back to the CLI: the HTTP status
// code and the server-side messages.
type RequestError struct {
	Code     int
	Messages []string
}

func (e *RequestError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("server responded with code %d", e.Code)
	}

	return fmt.Sprintf("server responded with code %d: %s", e.Code, strings.Join(e.Messages, "; "))
}
