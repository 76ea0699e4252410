package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/ir"
)

// Doc wraps a document so it formats as JSON text with %s or %v.
type Doc struct{ *ir.Document }

func (x Doc) String() string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(x.Document, buf); err != nil {
		return fmt.Sprintf("[raw *ir.Document] %v", x.Document)
	}
	return buf.String()
}

var out io.Writer = os.Stderr

// Logf writes a diagnostic message to stderr. Documents, values and
// decoded JSON arguments are rendered as JSON text.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Document:
			args[i] = Doc{x}.String()
		case ir.Value:
			buf := bytes.NewBuffer(nil)
			if err := encode.EncodeValue(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw ir.Value] %+v", x)
				continue
			}
			args[i] = buf.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}
