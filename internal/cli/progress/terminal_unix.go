//go:build !windows

package progress

import "os"

func enableANSI(*os.File) bool {
	return true
}
