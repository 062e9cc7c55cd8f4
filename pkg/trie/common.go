package trie

// Chars 按Unicode字符分割字符串
// 非法的UTF-8字节会被解码为utf8.RuneError
func Chars(s string) []rune {
	return []rune(s)
}

// Reverse 按字符反转字符串
func Reverse(s string) string {
	chars := Chars(s)
	for i, j := 0, len(chars)-1; i < j; i, j = i+1, j-1 {
		chars[i], chars[j] = chars[j], chars[i]
	}
	return string(chars)
}
