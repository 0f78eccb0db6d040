// FILE: lixenwraith/logcore/compat/fields.go
package compat

import (
	"fmt"
	"sort"
	"strings"
)

// appendFields appends " key=value" pairs to msg in key order
func appendFields(msg string, fields map[string]any) string {
	if len(fields) == 0 {
		return msg
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(msg)
	for _, k := range keys {
		sb.WriteByte(' ')
		sb.WriteString(k)
		sb.WriteByte('=')
		str := fmt.Sprintf("%v", fields[k])
		if str == "" || strings.ContainsAny(str, " \t\"") {
			fmt.Fprintf(&sb, "%q", str)
		} else {
			sb.WriteString(str)
		}
	}
	return sb.String()
}
