package node

import "sync"

type (
	//Evaluator evaluates value against root context without touching any per pass cache
	Evaluator interface {
		Direct(ctx interface{}) (interface{}, error)
	}

	//Parser compiles dynamic segment expression
	Parser func(expr string) (Evaluator, error)

	//Expression represents lazily compiled dynamic segment, compiled evaluator is immutable and shared across goroutines
	Expression struct {
		Text      string
		parser    Parser
		once      sync.Once
		evaluator Evaluator
		err       error
	}
)

//Evaluator returns compiled expression, compilation runs once even with concurrent first use
func (e *Expression) Evaluator() (Evaluator, error) {
	e.once.Do(func() {
		e.evaluator, e.err = e.parser(e.Text)
	})
	return e.evaluator, e.err
}

//NewExpression creates expression
func NewExpression(text string, parser Parser) *Expression {
	return &Expression{Text: text, parser: parser}
}
