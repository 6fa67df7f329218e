package notify

import (
	"fmt"
	"strings"
)

// FormatConnectionFailure creates the body sent when a feed gives up
// reconnecting.
func FormatConnectionFailure(room string, attempts int, err error) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Room: %s\n", room))
	sb.WriteString(fmt.Sprintf("Attempts: %d", attempts))
	if err != nil {
		sb.WriteString(fmt.Sprintf("\n\nLast error: %v", err))
	}

	return sb.String()
}
