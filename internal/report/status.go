package report

// NormalizeStatus maps the upstream "private" status to "alpha". Every
// other value, including the empty string left by a null status, passes
// through unchanged.
func NormalizeStatus(status string) string {
	if status == "private" {
		return "alpha"
	}
	return status
}
