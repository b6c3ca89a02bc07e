package oci

import "github.com/oracle/oci-go-sdk/v65/common"

// The SDK models use pointer fields throughout; these helpers collapse
// them to plain values for the JSON projections.

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func boolVal(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}

func dateStr(d *common.SDKDate) string {
	if d == nil {
		return ""
	}
	return d.Date.UTC().Format("2006-01-02")
}

func timeStr(t *common.SDKTime) string {
	if t == nil {
		return ""
	}
	return t.Time.UTC().Format("2006-01-02 15:04:05.000000-07:00")
}
