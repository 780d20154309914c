// Package util holds small formatting helpers for log attributes.
package util

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"
)

// Checksum returns the hex SHA256 digest of data. Sync runs log it so two
// runs over the same spreadsheet can be told apart from an edited one.
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:])
}

var sizeSuffixes = []string{"KiB", "MiB", "GiB", "TiB"}

// ByteSize renders n with a binary suffix and one decimal, e.g. "1.5 KiB".
func ByteSize(n int64) string {
	if n < 1024 {
		return strconv.FormatInt(n, 10) + " B"
	}

	value := float64(n) / 1024
	suffix := 0
	for value >= 1024 && suffix < len(sizeSuffixes)-1 {
		value /= 1024
		suffix++
	}

	return strconv.FormatFloat(value, 'f', 1, 64) + " " + sizeSuffixes[suffix]
}

// Elapsed renders a run duration for humans: milliseconds below one second,
// tenths of a second below one minute, whole seconds above.
func Elapsed(d time.Duration) string {
	switch {
	case d < time.Second:
		return d.Round(time.Millisecond).String()
	case d < time.Minute:
		return d.Round(100 * time.Millisecond).String()
	default:
		return d.Round(time.Second).String()
	}
}
