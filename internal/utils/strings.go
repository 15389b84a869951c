package utils

// TruncateString 文字列を指定した文字数に切り詰める
func TruncateString(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
