// Package format provides display formatting helpers shared by the CLI
// renderers: human-readable file sizes and timestamps.
package format

import (
	"math"
	"strconv"
	"time"
)

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FileSize renders a byte count using 1024-based units with up to two
// decimal places, trimming trailing zeros: 0 -> "0 Bytes", 1024 -> "1 KB",
// 1500000 -> "1.43 MB".
func FileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}

	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i < 0 {
		i = 0
	}
	if i >= len(sizeUnits) {
		i = len(sizeUnits) - 1
	}

	value := float64(bytes) / math.Pow(1024, float64(i))
	value = math.Round(value*100) / 100

	return strconv.FormatFloat(value, 'f', -1, 64) + " " + sizeUnits[i]
}

// Timestamp renders a document timestamp in local time for list output.
func Timestamp(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}
