package vlist

// Glyphs used for frames, scroll bars and truncation.
// Using strings with \u escapes to keep the source ASCII-safe.
const (
	// General Punctuation U+2000-U+206F
	SemigraphicsHorizontalEllipsis = "\u2026" // …

	// Box Drawing U+2500-U+257F
	BoxDrawingsLightHorizontal      = "\u2500" // ─
	BoxDrawingsLightVertical        = "\u2502" // │
	BoxDrawingsLightDownAndRight    = "\u250c" // ┌
	BoxDrawingsLightDownAndLeft     = "\u2510" // ┐
	BoxDrawingsLightUpAndRight      = "\u2514" // └
	BoxDrawingsLightUpAndLeft       = "\u2518" // ┘
	BoxDrawingsLightArcDownAndRight = "\u256d" // ╭
	BoxDrawingsLightArcDownAndLeft  = "\u256e" // ╮
	BoxDrawingsLightArcUpAndLeft    = "\u256f" // ╯
	BoxDrawingsLightArcUpAndRight   = "\u2570" // ╰

	// Block Elements U+2580-U+259F
	BlockUpperHalfBlock          = "\u2580" // ▀
	BlockLowerOneEighthBlock     = "\u2581" // ▁
	BlockLowerOneQuarterBlock    = "\u2582" // ▂
	BlockLowerThreeEighthsBlock  = "\u2583" // ▃
	BlockLowerHalfBlock          = "\u2584" // ▄
	BlockLowerFiveEighthsBlock   = "\u2585" // ▅
	BlockLowerThreeQuartersBlock = "\u2586" // ▆
	BlockLowerSevenEighthsBlock  = "\u2587" // ▇
	BlockFullBlock               = "\u2588" // █
	BlockUpperOneEighthBlock     = "\u2594" // ▔
)
