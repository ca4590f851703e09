/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package sizing

import (
	"fmt"

	"github.com/suparena/storemeter/errors"
)

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// CheckQuota returns a QuotaExceededError when used is above allowed.
// An allowed value of zero or less means no limit.
func CheckQuota(used, allowed int64) error {
	if allowed > 0 && used > allowed {
		return errors.NewQuotaExceededError(used, allowed)
	}
	return nil
}

// FormatSize renders a byte count with binary (1024) units, e.g. "1.50 MB".
// Without precise the value is rounded to a whole unit.
func FormatSize(bytes int64, precise bool) string {
	if bytes < 0 {
		bytes = 0
	}
	size := float64(bytes)
	unit := 0
	for size >= 1024 && unit < len(sizeUnits)-1 {
		size /= 1024
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%d %s", bytes, sizeUnits[0])
	}
	if precise {
		return fmt.Sprintf("%.2f %s", size, sizeUnits[unit])
	}
	return fmt.Sprintf("%.0f %s", size, sizeUnits[unit])
}
