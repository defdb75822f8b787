package domain

import "strconv"

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}

func itoaInt(v int) string {
	return strconv.Itoa(v)
}
