package segment

import "regexp"

var specialChars = regexp.MustCompile(`^[\p{P}\p{S}\p{Z}\s]+$`)

// IsSpecialChar 判断字符串是否全部为标点、符号或空白
func IsSpecialChar(s string) bool {
	if s == "" {
		return false
	}
	return specialChars.MatchString(s)
}
