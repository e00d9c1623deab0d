package token

import "fmt"

type TokenType int

const (
	TPlain TokenType = iota
	TSingle
	TDouble
	TBlock
	TTag
	TAnchor
	TAlias
	TColon
	TComma
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TComment
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TPlain:   "TPlain",
		TSingle:  "TSingle",
		TDouble:  "TDouble",
		TBlock:   "TBlock",
		TTag:     "TTag",
		TAnchor:  "TAnchor",
		TAlias:   "TAlias",
		TColon:   "TColon",
		TComma:   "TComma",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TComment: "TComment",
	}[t]
}

// Token is an inline token. Text holds the decoded content: the scalar
// for TPlain/TSingle/TDouble, the name for TTag/TAnchor/TAlias (the tag
// including its '!' handle), the header for TBlock.
type Token struct {
	Type TokenType
	Pos  Pos
	Text string
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	return t.Text
}

// IsScalar reports whether the token carries scalar content.
func (t *Token) IsScalar() bool {
	switch t.Type {
	case TPlain, TSingle, TDouble:
		return true
	}
	return false
}

// IsProperty reports whether the token is a node property.
func (t *Token) IsProperty() bool {
	return t.Type == TTag || t.Type == TAnchor
}
