package ast

// Visitor dispatches on node kind through Node.Accept. The interface is
// exhaustive over the closed node set: adding a kind breaks every
// visitor at compile time, which is the point.
type Visitor interface {
	VisitProgram(n *ProgramNode)
	VisitStatements(n *StatementsNode)
	VisitMissing(n *MissingNode)
	VisitParentheses(n *ParenthesesNode)
	VisitBegin(n *BeginNode)
	VisitRescue(n *RescueNode)
	VisitElse(n *ElseNode)
	VisitEnsure(n *EnsureNode)
	VisitRescueModifier(n *RescueModifierNode)

	VisitInteger(n *IntegerNode)
	VisitFloat(n *FloatNode)
	VisitRational(n *RationalNode)
	VisitImaginary(n *ImaginaryNode)
	VisitString(n *StringNode)
	VisitInterpolatedString(n *InterpolatedStringNode)
	VisitXString(n *XStringNode)
	VisitInterpolatedXString(n *InterpolatedXStringNode)
	VisitSymbol(n *SymbolNode)
	VisitInterpolatedSymbol(n *InterpolatedSymbolNode)
	VisitRegularExpression(n *RegularExpressionNode)
	VisitInterpolatedRegularExpression(n *InterpolatedRegularExpressionNode)
	VisitEmbeddedStatements(n *EmbeddedStatementsNode)
	VisitEmbeddedVariable(n *EmbeddedVariableNode)
	VisitArray(n *ArrayNode)
	VisitHash(n *HashNode)
	VisitAssoc(n *AssocNode)
	VisitAssocSplat(n *AssocSplatNode)
	VisitRange(n *RangeNode)
	VisitNil(n *NilNode)
	VisitTrue(n *TrueNode)
	VisitFalse(n *FalseNode)
	VisitSelf(n *SelfNode)
	VisitSourceFile(n *SourceFileNode)
	VisitSourceLine(n *SourceLineNode)
	VisitSourceEncoding(n *SourceEncodingNode)

	VisitLocalVariableRead(n *LocalVariableReadNode)
	VisitLocalVariableWrite(n *LocalVariableWriteNode)
	VisitLocalVariableOperatorWrite(n *LocalVariableOperatorWriteNode)
	VisitLocalVariableOrWrite(n *LocalVariableOrWriteNode)
	VisitLocalVariableAndWrite(n *LocalVariableAndWriteNode)
	VisitLocalVariableTarget(n *LocalVariableTargetNode)
	VisitItLocalVariableRead(n *ItLocalVariableReadNode)
	VisitInstanceVariableRead(n *InstanceVariableReadNode)
	VisitInstanceVariableWrite(n *InstanceVariableWriteNode)
	VisitInstanceVariableOperatorWrite(n *InstanceVariableOperatorWriteNode)
	VisitInstanceVariableOrWrite(n *InstanceVariableOrWriteNode)
	VisitInstanceVariableAndWrite(n *InstanceVariableAndWriteNode)
	VisitInstanceVariableTarget(n *InstanceVariableTargetNode)
	VisitClassVariableRead(n *ClassVariableReadNode)
	VisitClassVariableWrite(n *ClassVariableWriteNode)
	VisitClassVariableOperatorWrite(n *ClassVariableOperatorWriteNode)
	VisitClassVariableOrWrite(n *ClassVariableOrWriteNode)
	VisitClassVariableAndWrite(n *ClassVariableAndWriteNode)
	VisitClassVariableTarget(n *ClassVariableTargetNode)
	VisitGlobalVariableRead(n *GlobalVariableReadNode)
	VisitGlobalVariableWrite(n *GlobalVariableWriteNode)
	VisitGlobalVariableOperatorWrite(n *GlobalVariableOperatorWriteNode)
	VisitGlobalVariableOrWrite(n *GlobalVariableOrWriteNode)
	VisitGlobalVariableAndWrite(n *GlobalVariableAndWriteNode)
	VisitGlobalVariableTarget(n *GlobalVariableTargetNode)
	VisitConstantRead(n *ConstantReadNode)
	VisitConstantWrite(n *ConstantWriteNode)
	VisitConstantOperatorWrite(n *ConstantOperatorWriteNode)
	VisitConstantOrWrite(n *ConstantOrWriteNode)
	VisitConstantAndWrite(n *ConstantAndWriteNode)
	VisitConstantTarget(n *ConstantTargetNode)
	VisitConstantPath(n *ConstantPathNode)
	VisitConstantPathWrite(n *ConstantPathWriteNode)
	VisitConstantPathTarget(n *ConstantPathTargetNode)
	VisitBackReferenceRead(n *BackReferenceReadNode)
	VisitNumberedReferenceRead(n *NumberedReferenceReadNode)

	VisitCall(n *CallNode)
	VisitCallOperatorWrite(n *CallOperatorWriteNode)
	VisitCallOrWrite(n *CallOrWriteNode)
	VisitCallAndWrite(n *CallAndWriteNode)
	VisitCallTarget(n *CallTargetNode)
	VisitIndexTarget(n *IndexTargetNode)
	VisitIndexOperatorWrite(n *IndexOperatorWriteNode)
	VisitIndexOrWrite(n *IndexOrWriteNode)
	VisitIndexAndWrite(n *IndexAndWriteNode)

	VisitArguments(n *ArgumentsNode)
	VisitKeywordHash(n *KeywordHashNode)
	VisitSplat(n *SplatNode)
	VisitBlockArgument(n *BlockArgumentNode)
	VisitForwardingArguments(n *ForwardingArgumentsNode)
	VisitBlock(n *BlockNode)
	VisitBlockParameters(n *BlockParametersNode)
	VisitNumberedParameters(n *NumberedParametersNode)
	VisitItParameters(n *ItParametersNode)
	VisitLambda(n *LambdaNode)
	VisitSuper(n *SuperNode)
	VisitForwardingSuper(n *ForwardingSuperNode)
	VisitYield(n *YieldNode)

	VisitAnd(n *AndNode)
	VisitOr(n *OrNode)
	VisitDefined(n *DefinedNode)
	VisitIf(n *IfNode)
	VisitUnless(n *UnlessNode)
	VisitWhile(n *WhileNode)
	VisitUntil(n *UntilNode)
	VisitFor(n *ForNode)
	VisitCase(n *CaseNode)
	VisitWhen(n *WhenNode)
	VisitCaseMatch(n *CaseMatchNode)
	VisitIn(n *InNode)
	VisitBreak(n *BreakNode)
	VisitNext(n *NextNode)
	VisitRedo(n *RedoNode)
	VisitRetry(n *RetryNode)
	VisitReturn(n *ReturnNode)

	VisitMultiWrite(n *MultiWriteNode)
	VisitMultiTarget(n *MultiTargetNode)
	VisitImplicitRest(n *ImplicitRestNode)

	VisitDef(n *DefNode)
	VisitParameters(n *ParametersNode)
	VisitRequiredParameter(n *RequiredParameterNode)
	VisitOptionalParameter(n *OptionalParameterNode)
	VisitRestParameter(n *RestParameterNode)
	VisitRequiredKeywordParameter(n *RequiredKeywordParameterNode)
	VisitOptionalKeywordParameter(n *OptionalKeywordParameterNode)
	VisitKeywordRestParameter(n *KeywordRestParameterNode)
	VisitNoKeywordsParameter(n *NoKeywordsParameterNode)
	VisitForwardingParameter(n *ForwardingParameterNode)
	VisitBlockParameter(n *BlockParameterNode)
	VisitClass(n *ClassNode)
	VisitSingletonClass(n *SingletonClassNode)
	VisitModule(n *ModuleNode)
	VisitAliasMethod(n *AliasMethodNode)
	VisitAliasGlobalVariable(n *AliasGlobalVariableNode)
	VisitUndef(n *UndefNode)

	VisitArrayPattern(n *ArrayPatternNode)
	VisitHashPattern(n *HashPatternNode)
	VisitFindPattern(n *FindPatternNode)
	VisitAlternationPattern(n *AlternationPatternNode)
	VisitCapturePattern(n *CapturePatternNode)
	VisitPinnedVariable(n *PinnedVariableNode)
	VisitPinnedExpression(n *PinnedExpressionNode)
	VisitMatchPredicate(n *MatchPredicateNode)
	VisitMatchRequired(n *MatchRequiredNode)

	VisitPreExecution(n *PreExecutionNode)
	VisitPostExecution(n *PostExecutionNode)
}

// WalkChildren dispatches v over the non-nil children of n in source
// order.
func WalkChildren(v Visitor, n Node) {
	for _, c := range n.ChildNodes() {
		if c != nil {
			c.Accept(v)
		}
	}
}

// Walker is an embeddable Visitor whose every method walks into the
// node's children. Embed it, set Self to the outer visitor, and
// override only the methods you care about; unhandled kinds keep
// descending through the overriding visitor.
type Walker struct {
	Self Visitor
}

var _ Visitor = (*Walker)(nil)

func (w *Walker) visitor() Visitor {
	if w.Self != nil {
		return w.Self
	}
	return w
}

func (w *Walker) VisitProgram(n *ProgramNode)               { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitStatements(n *StatementsNode)         { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitMissing(n *MissingNode)               { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitParentheses(n *ParenthesesNode)       { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitBegin(n *BeginNode)                   { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitRescue(n *RescueNode)                 { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitElse(n *ElseNode)                     { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitEnsure(n *EnsureNode)                 { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitRescueModifier(n *RescueModifierNode) { WalkChildren(w.visitor(), n) }

func (w *Walker) VisitInteger(n *IntegerNode)                       { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitFloat(n *FloatNode)                           { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitRational(n *RationalNode)                     { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitImaginary(n *ImaginaryNode)                   { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitString(n *StringNode)                         { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitInterpolatedString(n *InterpolatedStringNode) { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitXString(n *XStringNode)                       { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitInterpolatedXString(n *InterpolatedXStringNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitSymbol(n *SymbolNode)                         { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitInterpolatedSymbol(n *InterpolatedSymbolNode) { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitRegularExpression(n *RegularExpressionNode)   { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitInterpolatedRegularExpression(n *InterpolatedRegularExpressionNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitEmbeddedStatements(n *EmbeddedStatementsNode) { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitEmbeddedVariable(n *EmbeddedVariableNode)     { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitArray(n *ArrayNode)                           { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitHash(n *HashNode)                             { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitAssoc(n *AssocNode)                           { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitAssocSplat(n *AssocSplatNode)                 { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitRange(n *RangeNode)                           { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitNil(n *NilNode)                               { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitTrue(n *TrueNode)                             { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitFalse(n *FalseNode)                           { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitSelf(n *SelfNode)                             { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitSourceFile(n *SourceFileNode)                 { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitSourceLine(n *SourceLineNode)                 { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitSourceEncoding(n *SourceEncodingNode)         { WalkChildren(w.visitor(), n) }

func (w *Walker) VisitLocalVariableRead(n *LocalVariableReadNode)   { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitLocalVariableWrite(n *LocalVariableWriteNode) { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitLocalVariableOperatorWrite(n *LocalVariableOperatorWriteNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitLocalVariableOrWrite(n *LocalVariableOrWriteNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitLocalVariableAndWrite(n *LocalVariableAndWriteNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitLocalVariableTarget(n *LocalVariableTargetNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitItLocalVariableRead(n *ItLocalVariableReadNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitInstanceVariableRead(n *InstanceVariableReadNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitInstanceVariableWrite(n *InstanceVariableWriteNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitInstanceVariableOperatorWrite(n *InstanceVariableOperatorWriteNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitInstanceVariableOrWrite(n *InstanceVariableOrWriteNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitInstanceVariableAndWrite(n *InstanceVariableAndWriteNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitInstanceVariableTarget(n *InstanceVariableTargetNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitClassVariableRead(n *ClassVariableReadNode)   { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitClassVariableWrite(n *ClassVariableWriteNode) { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitClassVariableOperatorWrite(n *ClassVariableOperatorWriteNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitClassVariableOrWrite(n *ClassVariableOrWriteNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitClassVariableAndWrite(n *ClassVariableAndWriteNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitClassVariableTarget(n *ClassVariableTargetNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitGlobalVariableRead(n *GlobalVariableReadNode) { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitGlobalVariableWrite(n *GlobalVariableWriteNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitGlobalVariableOperatorWrite(n *GlobalVariableOperatorWriteNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitGlobalVariableOrWrite(n *GlobalVariableOrWriteNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitGlobalVariableAndWrite(n *GlobalVariableAndWriteNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitGlobalVariableTarget(n *GlobalVariableTargetNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitConstantRead(n *ConstantReadNode)   { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitConstantWrite(n *ConstantWriteNode) { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitConstantOperatorWrite(n *ConstantOperatorWriteNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitConstantOrWrite(n *ConstantOrWriteNode)     { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitConstantAndWrite(n *ConstantAndWriteNode)   { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitConstantTarget(n *ConstantTargetNode)       { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitConstantPath(n *ConstantPathNode)           { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitConstantPathWrite(n *ConstantPathWriteNode) { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitConstantPathTarget(n *ConstantPathTargetNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitBackReferenceRead(n *BackReferenceReadNode) { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitNumberedReferenceRead(n *NumberedReferenceReadNode) {
	WalkChildren(w.visitor(), n)
}

func (w *Walker) VisitCall(n *CallNode)                           { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitCallOperatorWrite(n *CallOperatorWriteNode) { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitCallOrWrite(n *CallOrWriteNode)             { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitCallAndWrite(n *CallAndWriteNode)           { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitCallTarget(n *CallTargetNode)               { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitIndexTarget(n *IndexTargetNode)             { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitIndexOperatorWrite(n *IndexOperatorWriteNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitIndexOrWrite(n *IndexOrWriteNode)   { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitIndexAndWrite(n *IndexAndWriteNode) { WalkChildren(w.visitor(), n) }

func (w *Walker) VisitArguments(n *ArgumentsNode)             { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitKeywordHash(n *KeywordHashNode)         { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitSplat(n *SplatNode)                     { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitBlockArgument(n *BlockArgumentNode)     { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitForwardingArguments(n *ForwardingArgumentsNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitBlock(n *BlockNode)                     { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitBlockParameters(n *BlockParametersNode) { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitNumberedParameters(n *NumberedParametersNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitItParameters(n *ItParametersNode)       { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitLambda(n *LambdaNode)                   { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitSuper(n *SuperNode)                     { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitForwardingSuper(n *ForwardingSuperNode) { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitYield(n *YieldNode)                     { WalkChildren(w.visitor(), n) }

func (w *Walker) VisitAnd(n *AndNode)             { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitOr(n *OrNode)               { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitDefined(n *DefinedNode)     { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitIf(n *IfNode)               { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitUnless(n *UnlessNode)       { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitWhile(n *WhileNode)         { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitUntil(n *UntilNode)         { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitFor(n *ForNode)             { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitCase(n *CaseNode)           { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitWhen(n *WhenNode)           { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitCaseMatch(n *CaseMatchNode) { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitIn(n *InNode)               { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitBreak(n *BreakNode)         { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitNext(n *NextNode)           { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitRedo(n *RedoNode)           { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitRetry(n *RetryNode)         { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitReturn(n *ReturnNode)       { WalkChildren(w.visitor(), n) }

func (w *Walker) VisitMultiWrite(n *MultiWriteNode)     { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitMultiTarget(n *MultiTargetNode)   { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitImplicitRest(n *ImplicitRestNode) { WalkChildren(w.visitor(), n) }

func (w *Walker) VisitDef(n *DefNode)               { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitParameters(n *ParametersNode) { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitRequiredParameter(n *RequiredParameterNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitOptionalParameter(n *OptionalParameterNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitRestParameter(n *RestParameterNode) { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitRequiredKeywordParameter(n *RequiredKeywordParameterNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitOptionalKeywordParameter(n *OptionalKeywordParameterNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitKeywordRestParameter(n *KeywordRestParameterNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitNoKeywordsParameter(n *NoKeywordsParameterNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitForwardingParameter(n *ForwardingParameterNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitBlockParameter(n *BlockParameterNode) { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitClass(n *ClassNode)                   { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitSingletonClass(n *SingletonClassNode) { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitModule(n *ModuleNode)                 { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitAliasMethod(n *AliasMethodNode)       { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitAliasGlobalVariable(n *AliasGlobalVariableNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitUndef(n *UndefNode) { WalkChildren(w.visitor(), n) }

func (w *Walker) VisitArrayPattern(n *ArrayPatternNode) { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitHashPattern(n *HashPatternNode)   { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitFindPattern(n *FindPatternNode)   { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitAlternationPattern(n *AlternationPatternNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitCapturePattern(n *CapturePatternNode) { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitPinnedVariable(n *PinnedVariableNode) { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitPinnedExpression(n *PinnedExpressionNode) {
	WalkChildren(w.visitor(), n)
}
func (w *Walker) VisitMatchPredicate(n *MatchPredicateNode) { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitMatchRequired(n *MatchRequiredNode)   { WalkChildren(w.visitor(), n) }

func (w *Walker) VisitPreExecution(n *PreExecutionNode)   { WalkChildren(w.visitor(), n) }
func (w *Walker) VisitPostExecution(n *PostExecutionNode) { WalkChildren(w.visitor(), n) }
