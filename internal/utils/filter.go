package utils

import "reflect"

// FilterMap 指定したキーのうち値が空のものをマップから取り除く
//
// 指定されなかったキーは値が null でも常に残る。
func FilterMap(m map[string]any, omitIfEmpty ...string) map[string]any {
	for _, key := range omitIfEmpty {
		if v, ok := m[key]; ok && isEmptyValue(v) {
			delete(m, key)
		}
	}
	return m
}

// isEmptyValue 空文字列・空スライス・空マップ・nil を空とみなす
func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
