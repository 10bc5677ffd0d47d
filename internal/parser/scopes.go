package parser

// scope tracks the local variables visible at the current parse point.
// Identifier resolution decides between LocalVariableReadNode and a
// receiverless CallNode, so the chain has to be maintained as targets
// are parsed, not afterwards.
//
// Blocks and lambdas link to their parent; def, class, module, and
// singleton-class bodies start a closed scope that cannot see outward.
type scope struct {
	parent *scope
	closed bool
	locals map[string]struct{}

	// Block-only bookkeeping for implicit parameters.
	isBlock     bool
	hasParams   bool
	numberedMax int
	usedIt      bool
}

func newScopeChain(seed [][]string) *scope {
	s := &scope{closed: true, locals: map[string]struct{}{}}
	for _, names := range seed {
		for _, name := range names {
			s.locals[name] = struct{}{}
		}
		next := &scope{parent: s, locals: map[string]struct{}{}}
		s = next
	}
	return s
}

func (p *Parser) pushClosedScope() {
	p.scope = &scope{parent: p.scope, closed: true, locals: map[string]struct{}{}}
}

func (p *Parser) pushBlockScope() {
	p.scope = &scope{parent: p.scope, isBlock: true, locals: map[string]struct{}{}}
}

func (p *Parser) popScope() *scope {
	s := p.scope
	p.scope = s.parent
	return s
}

// declare records name as a local in the current scope.
func (p *Parser) declare(name string) {
	p.scope.locals[name] = struct{}{}
}

// declared reports whether name resolves to a local variable here,
// walking open parents up to and including the first closed scope.
func (p *Parser) declared(name string) bool {
	for s := p.scope; s != nil; s = s.parent {
		if _, ok := s.locals[name]; ok {
			return true
		}
		if s.closed {
			return false
		}
	}
	return false
}

// blockScope returns the nearest block scope not separated by a closed
// boundary, or nil.
func (p *Parser) blockScope() *scope {
	for s := p.scope; s != nil; s = s.parent {
		if s.isBlock {
			return s
		}
		if s.closed {
			return nil
		}
	}
	return nil
}
