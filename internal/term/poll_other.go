//go:build !unix

package term

import (
	"os"
	"time"
)

// waitReadable always reports input as ready; reads block.
func waitReadable(*os.File, time.Duration) (bool, error) { return true, nil }
