package ast

// NodeKind identifies one variant of the closed node set. Values are
// stable serialization tags: new kinds append, existing kinds never
// renumber.
type NodeKind uint16

const (
	KindInvalid NodeKind = iota

	KindProgram
	KindStatements
	KindMissing
	KindParentheses
	KindBegin
	KindRescue
	KindElse
	KindEnsure
	KindRescueModifier

	KindInteger
	KindFloat
	KindRational
	KindImaginary
	KindString
	KindInterpolatedString
	KindXString
	KindInterpolatedXString
	KindSymbol
	KindInterpolatedSymbol
	KindRegularExpression
	KindInterpolatedRegularExpression
	KindEmbeddedStatements
	KindEmbeddedVariable
	KindArray
	KindHash
	KindAssoc
	KindAssocSplat
	KindRange
	KindNil
	KindTrue
	KindFalse
	KindSelf
	KindSourceFile
	KindSourceLine
	KindSourceEncoding

	KindLocalVariableRead
	KindLocalVariableWrite
	KindLocalVariableOperatorWrite
	KindLocalVariableOrWrite
	KindLocalVariableAndWrite
	KindLocalVariableTarget
	KindItLocalVariableRead
	KindInstanceVariableRead
	KindInstanceVariableWrite
	KindInstanceVariableOperatorWrite
	KindInstanceVariableOrWrite
	KindInstanceVariableAndWrite
	KindInstanceVariableTarget
	KindClassVariableRead
	KindClassVariableWrite
	KindClassVariableOperatorWrite
	KindClassVariableOrWrite
	KindClassVariableAndWrite
	KindClassVariableTarget
	KindGlobalVariableRead
	KindGlobalVariableWrite
	KindGlobalVariableOperatorWrite
	KindGlobalVariableOrWrite
	KindGlobalVariableAndWrite
	KindGlobalVariableTarget
	KindConstantRead
	KindConstantWrite
	KindConstantOperatorWrite
	KindConstantOrWrite
	KindConstantAndWrite
	KindConstantTarget
	KindConstantPath
	KindConstantPathWrite
	KindConstantPathTarget
	KindBackReferenceRead
	KindNumberedReferenceRead

	KindCall
	KindCallOperatorWrite
	KindCallOrWrite
	KindCallAndWrite
	KindCallTarget
	KindIndexTarget
	KindIndexOperatorWrite
	KindIndexOrWrite
	KindIndexAndWrite

	KindArguments
	KindKeywordHash
	KindSplat
	KindBlockArgument
	KindBlock
	KindBlockParameters
	KindNumberedParameters
	KindItParameters
	KindLambda
	KindSuper
	KindForwardingSuper
	KindYield

	KindAnd
	KindOr
	KindDefined
	KindIf
	KindUnless
	KindWhile
	KindUntil
	KindFor
	KindCase
	KindWhen
	KindCaseMatch
	KindIn
	KindBreak
	KindNext
	KindRedo
	KindRetry
	KindReturn

	KindMultiWrite
	KindMultiTarget
	KindImplicitRest

	KindDef
	KindParameters
	KindRequiredParameter
	KindOptionalParameter
	KindRestParameter
	KindRequiredKeywordParameter
	KindOptionalKeywordParameter
	KindKeywordRestParameter
	KindNoKeywordsParameter
	KindBlockParameter
	KindClass
	KindSingletonClass
	KindModule
	KindAliasMethod
	KindAliasGlobalVariable
	KindUndef

	KindArrayPattern
	KindHashPattern
	KindFindPattern
	KindAlternationPattern
	KindCapturePattern
	KindPinnedVariable
	KindPinnedExpression
	KindMatchPredicate
	KindMatchRequired

	KindPreExecution
	KindPostExecution

	KindForwardingParameter
	KindForwardingArguments

	kindCount
)

var kindNames = [...]string{
	KindInvalid: "InvalidNode",

	KindProgram:        "ProgramNode",
	KindStatements:     "StatementsNode",
	KindMissing:        "MissingNode",
	KindParentheses:    "ParenthesesNode",
	KindBegin:          "BeginNode",
	KindRescue:         "RescueNode",
	KindElse:           "ElseNode",
	KindEnsure:         "EnsureNode",
	KindRescueModifier: "RescueModifierNode",

	KindInteger:                       "IntegerNode",
	KindFloat:                         "FloatNode",
	KindRational:                      "RationalNode",
	KindImaginary:                     "ImaginaryNode",
	KindString:                        "StringNode",
	KindInterpolatedString:            "InterpolatedStringNode",
	KindXString:                       "XStringNode",
	KindInterpolatedXString:           "InterpolatedXStringNode",
	KindSymbol:                        "SymbolNode",
	KindInterpolatedSymbol:            "InterpolatedSymbolNode",
	KindRegularExpression:             "RegularExpressionNode",
	KindInterpolatedRegularExpression: "InterpolatedRegularExpressionNode",
	KindEmbeddedStatements:            "EmbeddedStatementsNode",
	KindEmbeddedVariable:              "EmbeddedVariableNode",
	KindArray:                         "ArrayNode",
	KindHash:                          "HashNode",
	KindAssoc:                         "AssocNode",
	KindAssocSplat:                    "AssocSplatNode",
	KindRange:                         "RangeNode",
	KindNil:                           "NilNode",
	KindTrue:                          "TrueNode",
	KindFalse:                         "FalseNode",
	KindSelf:                          "SelfNode",
	KindSourceFile:                    "SourceFileNode",
	KindSourceLine:                    "SourceLineNode",
	KindSourceEncoding:                "SourceEncodingNode",

	KindLocalVariableRead:             "LocalVariableReadNode",
	KindLocalVariableWrite:            "LocalVariableWriteNode",
	KindLocalVariableOperatorWrite:    "LocalVariableOperatorWriteNode",
	KindLocalVariableOrWrite:          "LocalVariableOrWriteNode",
	KindLocalVariableAndWrite:         "LocalVariableAndWriteNode",
	KindLocalVariableTarget:           "LocalVariableTargetNode",
	KindItLocalVariableRead:           "ItLocalVariableReadNode",
	KindInstanceVariableRead:          "InstanceVariableReadNode",
	KindInstanceVariableWrite:         "InstanceVariableWriteNode",
	KindInstanceVariableOperatorWrite: "InstanceVariableOperatorWriteNode",
	KindInstanceVariableOrWrite:       "InstanceVariableOrWriteNode",
	KindInstanceVariableAndWrite:      "InstanceVariableAndWriteNode",
	KindInstanceVariableTarget:        "InstanceVariableTargetNode",
	KindClassVariableRead:             "ClassVariableReadNode",
	KindClassVariableWrite:            "ClassVariableWriteNode",
	KindClassVariableOperatorWrite:    "ClassVariableOperatorWriteNode",
	KindClassVariableOrWrite:          "ClassVariableOrWriteNode",
	KindClassVariableAndWrite:         "ClassVariableAndWriteNode",
	KindClassVariableTarget:           "ClassVariableTargetNode",
	KindGlobalVariableRead:            "GlobalVariableReadNode",
	KindGlobalVariableWrite:           "GlobalVariableWriteNode",
	KindGlobalVariableOperatorWrite:   "GlobalVariableOperatorWriteNode",
	KindGlobalVariableOrWrite:         "GlobalVariableOrWriteNode",
	KindGlobalVariableAndWrite:        "GlobalVariableAndWriteNode",
	KindGlobalVariableTarget:          "GlobalVariableTargetNode",
	KindConstantRead:                  "ConstantReadNode",
	KindConstantWrite:                 "ConstantWriteNode",
	KindConstantOperatorWrite:         "ConstantOperatorWriteNode",
	KindConstantOrWrite:               "ConstantOrWriteNode",
	KindConstantAndWrite:              "ConstantAndWriteNode",
	KindConstantTarget:                "ConstantTargetNode",
	KindConstantPath:                  "ConstantPathNode",
	KindConstantPathWrite:             "ConstantPathWriteNode",
	KindConstantPathTarget:            "ConstantPathTargetNode",
	KindBackReferenceRead:             "BackReferenceReadNode",
	KindNumberedReferenceRead:         "NumberedReferenceReadNode",

	KindCall:              "CallNode",
	KindCallOperatorWrite: "CallOperatorWriteNode",
	KindCallOrWrite:       "CallOrWriteNode",
	KindCallAndWrite:      "CallAndWriteNode",
	KindCallTarget:        "CallTargetNode",
	KindIndexTarget:       "IndexTargetNode",
	KindIndexOperatorWrite: "IndexOperatorWriteNode",
	KindIndexOrWrite:       "IndexOrWriteNode",
	KindIndexAndWrite:      "IndexAndWriteNode",

	KindArguments:          "ArgumentsNode",
	KindKeywordHash:        "KeywordHashNode",
	KindSplat:              "SplatNode",
	KindBlockArgument:      "BlockArgumentNode",
	KindBlock:              "BlockNode",
	KindBlockParameters:    "BlockParametersNode",
	KindNumberedParameters: "NumberedParametersNode",
	KindItParameters:       "ItParametersNode",
	KindLambda:             "LambdaNode",
	KindSuper:              "SuperNode",
	KindForwardingSuper:    "ForwardingSuperNode",
	KindYield:              "YieldNode",

	KindAnd:     "AndNode",
	KindOr:      "OrNode",
	KindDefined: "DefinedNode",
	KindIf:      "IfNode",
	KindUnless:  "UnlessNode",
	KindWhile:   "WhileNode",
	KindUntil:   "UntilNode",
	KindFor:     "ForNode",
	KindCase:    "CaseNode",
	KindWhen:    "WhenNode",
	KindCaseMatch: "CaseMatchNode",
	KindIn:      "InNode",
	KindBreak:   "BreakNode",
	KindNext:    "NextNode",
	KindRedo:    "RedoNode",
	KindRetry:   "RetryNode",
	KindReturn:  "ReturnNode",

	KindMultiWrite:   "MultiWriteNode",
	KindMultiTarget:  "MultiTargetNode",
	KindImplicitRest: "ImplicitRestNode",

	KindDef:                      "DefNode",
	KindParameters:               "ParametersNode",
	KindRequiredParameter:        "RequiredParameterNode",
	KindOptionalParameter:        "OptionalParameterNode",
	KindRestParameter:            "RestParameterNode",
	KindRequiredKeywordParameter: "RequiredKeywordParameterNode",
	KindOptionalKeywordParameter: "OptionalKeywordParameterNode",
	KindKeywordRestParameter:     "KeywordRestParameterNode",
	KindNoKeywordsParameter:      "NoKeywordsParameterNode",
	KindBlockParameter:           "BlockParameterNode",
	KindClass:                    "ClassNode",
	KindSingletonClass:           "SingletonClassNode",
	KindModule:                   "ModuleNode",
	KindAliasMethod:              "AliasMethodNode",
	KindAliasGlobalVariable:      "AliasGlobalVariableNode",
	KindUndef:                    "UndefNode",

	KindArrayPattern:       "ArrayPatternNode",
	KindHashPattern:        "HashPatternNode",
	KindFindPattern:        "FindPatternNode",
	KindAlternationPattern: "AlternationPatternNode",
	KindCapturePattern:     "CapturePatternNode",
	KindPinnedVariable:     "PinnedVariableNode",
	KindPinnedExpression:   "PinnedExpressionNode",
	KindMatchPredicate:     "MatchPredicateNode",
	KindMatchRequired:      "MatchRequiredNode",

	KindPreExecution:  "PreExecutionNode",
	KindPostExecution: "PostExecutionNode",

	KindForwardingParameter: "ForwardingParameterNode",
	KindForwardingArguments: "ForwardingArgumentsNode",
}

func (k NodeKind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "NodeKind(?)"
}

// Count returns the number of defined node kinds.
func Count() int {
	return int(kindCount)
}
