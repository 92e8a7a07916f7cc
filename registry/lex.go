package registry

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	whitespaceToken = iota
	identityToken
	dotToken
	groupToken
)

var whitespaceMatcher = parsly.NewToken(whitespaceToken, "Whitespace", matcher.NewWhiteSpace())
var identityMatcher = parsly.NewToken(identityToken, "Identity", newIdentity())
var dotMatcher = parsly.NewToken(dotToken, "Dot", matcher.NewByte('.'))
var groupMatcher = parsly.NewToken(groupToken, "( .... )", matcher.NewBlock('(', ')', '\\'))

type identity struct{}

func (i *identity) Match(cursor *parsly.Cursor) (matched int) {
	for pos := cursor.Pos; pos < cursor.InputSize; pos++ {
		if !isIdentityByte(cursor.Input[pos]) {
			break
		}
		matched++
	}
	return matched
}

func isIdentityByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '_', b == '$', b == '-':
		return true
	}
	return false
}

func newIdentity() parsly.Matcher {
	return &identity{}
}
