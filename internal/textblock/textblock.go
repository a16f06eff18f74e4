// internal/textblock/textblock.go
package textblock

import "strings"

// Separator — разделитель строк в блоке текста
const Separator = "\n"

// Split разбивает текст на строки по '\n'.
// Пустые строки сохраняются, как и пустой хвост после завершающего разделителя:
// "a\nb\n" → ["a", "b", ""]. Исходная строка не изменяется.
func Split(s string) []string {
	return strings.Split(s, Separator)
}

// TrimTrailing возвращает копию без одного пустого хвостового элемента, если он есть.
func TrimTrailing(lines []string) []string {
	n := len(lines)
	if n > 0 && lines[n-1] == "" {
		n--
	}
	out := make([]string, n)
	copy(out, lines[:n])
	return out
}

// Join собирает строки обратно, Join(Split(s)) == s
func Join(lines []string) string {
	return strings.Join(lines, Separator)
}
