package classpath

import "strings"

const (
	hrefOpen        = "href='"
	htmlSuffix      = ".html"
	packageAnchor   = "/package.html#"
	memberCallParen = "()"
)

// MatchFilename reports whether a file's base name is a candidate for word:
// a word boundary, then word, then zero or more identifier characters, then
// one of exts. "Sprite.as", "SpriteHelper.as" and "UISprite.as" with word
// "UI" match; "MySprite.as" with word "Sprite" does not.
func MatchFilename(name, word string, exts []string) bool {
	if word == "" {
		return false
	}
	stem, ok := TrimExtension(name, exts)
	if !ok {
		return false
	}
	return matchToken(stem, word, anyChar)
}

// MatchDocLine extracts a dotted path from a documentation index line.
// Two link forms are recognized, checked per href in line order:
//
//	href='flash/display/Sprite.html'               -> flash.display.Sprite
//	href='flash/utils/package.html#getTimer()'     -> flash.utils.getTimer
//
// In the first form the link body is letters, digits and slashes with word
// starting at a word boundary and followed only by identifier characters.
// In the second form the anchor must begin with word, continue with
// identifier characters and end in "()".
func MatchDocLine(line, word string) (string, bool) {
	if word == "" {
		return "", false
	}

	var path string
	found := false
	eachLink(line, func(link string) bool {
		if p, ok := matchClassLink(link, word); ok {
			path, found = p, true
		} else if p, ok := matchMemberLink(link, word); ok {
			path, found = p, true
		}
		return !found
	})
	return path, found
}

// DocNames returns the leaf names (class or package member) of every
// recognized link on a documentation index line.
func DocNames(line string) []string {
	var names []string
	eachLink(line, func(link string) bool {
		if body, ok := strings.CutSuffix(link, htmlSuffix); ok && body != "" && allOf(body, isPathChar) {
			if name := body[strings.LastIndexByte(body, '/')+1:]; name != "" && name != "package" {
				names = append(names, name)
			}
			return true
		}
		if _, anchor, ok := strings.Cut(link, packageAnchor); ok {
			if member, ok := strings.CutSuffix(anchor, memberCallParen); ok && member != "" && allOf(member, isWordChar) {
				names = append(names, member)
			}
		}
		return true
	})
	return names
}

// eachLink calls fn with every quoted href value on line until fn returns false
func eachLink(line string, fn func(link string) bool) {
	rest := line
	for {
		start := strings.Index(rest, hrefOpen)
		if start < 0 {
			return
		}
		rest = rest[start+len(hrefOpen):]
		end := strings.IndexByte(rest, '\'')
		if end < 0 {
			return
		}
		if !fn(rest[:end]) {
			return
		}
		rest = rest[end+1:]
	}
}

func matchClassLink(link, word string) (string, bool) {
	body, ok := strings.CutSuffix(link, htmlSuffix)
	if !ok || !matchToken(body, word, isPathChar) {
		return "", false
	}
	return strings.ReplaceAll(body, "/", "."), true
}

// matchMemberLink matches package-level members such as
// "flash/utils/package.html#getTimer()". Relative prefixes like "../" are
// skipped: only the trailing run of path characters names the package.
func matchMemberLink(link, word string) (string, bool) {
	prefix, anchor, ok := strings.Cut(link, packageAnchor)
	if !ok {
		return "", false
	}
	member, ok := strings.CutSuffix(anchor, memberCallParen)
	if !ok || !strings.HasPrefix(member, word) || !allOf(member[len(word):], isWordChar) {
		return "", false
	}
	path := strings.ReplaceAll(pathTail(prefix)+"/"+member, "/", ".")
	return strings.TrimLeft(path, "."), true
}

// pathTail returns the longest suffix of s made of path characters
func pathTail(s string) string {
	i := len(s)
	for i > 0 && isPathChar(s[i-1]) {
		i--
	}
	return s[i:]
}

// matchToken looks for word in s starting on a word boundary, with every
// character before it accepted by lead and every character after it an
// identifier character.
func matchToken(s, word string, lead func(byte) bool) bool {
	for i := 0; i+len(word) <= len(s); i++ {
		if s[i:i+len(word)] != word || !atBoundary(s, i, word[0]) {
			continue
		}
		if allOf(s[:i], lead) && allOf(s[i+len(word):], isWordChar) {
			return true
		}
	}
	return false
}

// atBoundary reports whether a token starting with first at s[i] begins on
// a word boundary: the characters on either side differ in word-ness.
func atBoundary(s string, i int, first byte) bool {
	if i == 0 {
		return isWordChar(first)
	}
	return isWordChar(s[i-1]) != isWordChar(first)
}

func allOf(s string, pred func(byte) bool) bool {
	for i := 0; i < len(s); i++ {
		if !pred(s[i]) {
			return false
		}
	}
	return true
}

func anyChar(byte) bool { return true }

func isWordChar(c byte) bool {
	return c == '_' || isAlnum(c)
}

func isPathChar(c byte) bool {
	return c == '/' || isAlnum(c)
}

func isAlnum(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
