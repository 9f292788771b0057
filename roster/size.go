package roster

import (
	"fmt"
	"github.com/dustin/go-humanize"
	"math"
	"strings"
)

const (
	bytesInKB	= 1024
	bytesInMB	= 1024 * 1024

	numberFormat	= "#,###.##"
)

// source of the maximum size of an uploaded file
type UploadLimitProvider interface {
	GetUploadMaxBytes() int64
}

// an upload limit configured as an ini style size string, like "8M"
type ConfigUploadLimit struct {
	// returns the configured value, read on every call
	Value	func() string
}

// resolve the configured value to bytes. A malformed value is logged and resolves to 0
func (c *ConfigUploadLimit) GetUploadMaxBytes() int64 {
	value := c.Value()
	maxBytes, err := ParseUploadLimit(value)
	if err != nil {
		logger.WithError(err).Warnf("invalid upload size limit \"%s\"", value)
		return 0
	}
	return maxBytes
}

// a fixed upload limit
type StaticUploadLimit int64

func (s StaticUploadLimit) GetUploadMaxBytes() int64 {
	return int64(s)
}

// parse an ini style size into bytes. Single letter K, M and G suffixes (any case) are multiples of 1024, plain
// numbers are bytes and any unit go-humanize understands ("10 MiB", "5MB") is accepted as well
func ParseUploadLimit(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty size")
	}
	switch value[len(value)-1] {
	case 'k', 'K', 'm', 'M', 'g', 'G':
		value += "iB"
	}
	size, err := humanize.ParseBytes(value)
	if err != nil {
		return 0, err
	}
	if size > math.MaxInt64 {
		return 0, fmt.Errorf("size \"%s\" is too large", value)
	}
	return int64(size), nil
}

// format the given byte count as "<MB> MB (<KB> KB)"
func FormatUploadLimit(maxBytes int64) string {
	return fmt.Sprintf("%s MB (%s KB)", formatUnits(maxBytes, bytesInMB), formatUnits(maxBytes, bytesInKB))
}

func formatUnits(bytes int64, unit float64) string {
	return humanize.FormatFloat(numberFormat, float64(bytes)/unit)
}
