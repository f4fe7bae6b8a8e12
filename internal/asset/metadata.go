package asset

import (
	"fmt"
	"strings"
)

// Field is one labelled metadata value.
type Field struct {
	Key   string
	Value string
}

// Metadata lists the image properties shown by the metadata panel and the
// info command.
func (i *Image) Metadata() []Field {
	fields := []Field{
		{"File", i.Name()},
		{"Format", orUnknown(i.Format)},
		{"Dimensions", fmt.Sprintf("%dx%d", i.Width(), i.Height())},
		{"Color model", orUnknown(i.ColorModel)},
	}
	if i.FileSize > 0 {
		fields = append(fields, Field{"File size", HumanSize(i.FileSize)})
	}
	if !i.ModTime.IsZero() {
		fields = append(fields, Field{"Modified", i.ModTime.Format("2006-01-02 15:04:05")})
	}
	return fields
}

// HumanSize formats n bytes with a binary unit.
func HumanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "unknown"
	}
	return s
}
