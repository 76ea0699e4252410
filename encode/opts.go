package encode

type EncodeOption func(*EncState)

// Indent sets the string written once per nesting level. The default
// is a single tab.
func Indent(s string) EncodeOption {
	return func(es *EncState) { es.indent = s }
}

// EncodeWire selects compact output without any whitespace.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

// EncodeColors colors output for terminals. A nil c disables color.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// Depth sets the nesting level the output starts at, for embedding
// the output in indented text.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}
