package registry

import (
	"github.com/pkg/errors"
	"github.com/viant/parsly"
	"github.com/viant/vpath/shared"
	"strings"
)

type segment struct {
	key     string
	dynamic bool
}

func (s *segment) String() string {
	if s.dynamic {
		return "(" + s.key + ")"
	}
	return s.key
}

//parsePath splits dotted path into segments, parenthesized segment is dynamic
func parsePath(path string) ([]*segment, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("path was empty")
	}
	cursor := parsly.NewCursor("", []byte(path), 0)
	var segments []*segment
	for {
		matched := cursor.MatchAfterOptional(whitespaceMatcher, identityMatcher, groupMatcher)
		switch matched.Code {
		case identityToken:
			segments = append(segments, &segment{key: matched.Text(cursor)})
		case groupToken:
			text := matched.Text(cursor)
			if !shared.IsPair(text, '(', ')') {
				return nil, errors.Errorf("unbalanced dynamic segment at %v", cursor.Pos)
			}
			expr := shared.TrimPair(text, '(', ')')
			if expr == "" {
				return nil, errors.Errorf("empty dynamic segment at %v", cursor.Pos)
			}
			segments = append(segments, &segment{key: expr, dynamic: true})
		case parsly.EOF:
			return nil, errors.Errorf("expected segment at %v", cursor.Pos)
		default:
			return nil, cursor.NewError(identityMatcher, groupMatcher)
		}

		matched = cursor.MatchAfterOptional(whitespaceMatcher, dotMatcher)
		switch matched.Code {
		case dotToken:
		case parsly.EOF:
			return segments, nil
		default:
			return nil, cursor.NewError(dotMatcher)
		}
	}
}

//canonical returns normalized dotted path
func canonical(segments []*segment) string {
	keys := make([]string, len(segments))
	for i, seg := range segments {
		keys[i] = seg.String()
	}
	return strings.Join(keys, ".")
}
