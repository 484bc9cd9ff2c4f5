package sample

import (
	"fmt"
	"time"
)

// Run is linked and fetched at runtime by the code loader tests.
func Run() string {
	return fmt.Sprintf("sample run at %s", time.Now().Format(time.RFC3339))
}
