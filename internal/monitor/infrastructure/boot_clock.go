package infrastructure

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"downtimed/internal/monitor/domain"
)

// ProcBootClock derives the boot time from /proc/uptime: boot = now minus
// seconds since boot. Works regardless of RTC presence, but inherits
// whatever the kernel clock currently believes.
type ProcBootClock struct {
	procPath string
}

// NewProcBootClock creates a boot clock reading the real /proc/uptime.
func NewProcBootClock() domain.BootClock {
	return &ProcBootClock{procPath: "/proc/uptime"}
}

// BootTime reads /proc/uptime and subtracts the uptime from the current
// wall-clock time.
func (c *ProcBootClock) BootTime(ctx context.Context) (time.Time, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, err
	}

	contents, err := os.ReadFile(c.procPath)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read %s: %w", c.procPath, err)
	}

	fields := strings.Fields(string(contents))
	if len(fields) == 0 {
		return time.Time{}, fmt.Errorf("invalid format in %s", c.procPath)
	}

	uptime, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse uptime: %w", err)
	}

	return time.Now().Add(-time.Duration(uptime * float64(time.Second))), nil
}
