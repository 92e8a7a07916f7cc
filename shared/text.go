package shared

import "strings"

//TrimPair removes enclosing begin/end bytes, the text is returned as is when the pair is incomplete
func TrimPair(text string, begin, end byte) string {
	text = strings.TrimSpace(text)
	if len(text) < 2 {
		return text
	}
	if text[0] == begin && text[len(text)-1] == end {
		return strings.TrimSpace(text[1 : len(text)-1])
	}
	return text
}

//IsPair returns true if text is enclosed with begin and end byte
func IsPair(text string, begin, end byte) bool {
	return len(text) >= 2 && text[0] == begin && text[len(text)-1] == end
}
