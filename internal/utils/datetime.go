package utils

import (
	"fmt"
	"strings"
	"time"
)

// iso8601Layout オフセット付きISO-8601。UTCは "Z" ではなく "+00:00" で
// 出力される（APIの互換性のため変更しないこと）
const iso8601Layout = "2006-01-02T15:04:05-07:00"

// 解析を試すレイアウト。オフセットなしはUTCとして扱う
var iso8601ParseLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999-0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseISO8601 ISO-8601文字列を解析してUTCに正規化
func ParseISO8601(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("空のタイムスタンプです")
	}

	for _, layout := range iso8601ParseLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("ISO-8601として解析できません: %q", value)
}

// FormatISO8601 タイムスタンプをUTCのISO-8601文字列に整形
func FormatISO8601(t time.Time) string {
	return t.UTC().Format(iso8601Layout)
}
