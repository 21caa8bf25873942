// internal/extract/processor.go
package extract

import (
	"bytes"

	"efdkeys/internal/decode"
	"efdkeys/internal/fields"
	"efdkeys/internal/keymatch"
)

// Processor turns one raw line into an Outcome: decode, split into fields,
// check for the sentinel, then match every field for keys.
//
// Not safe for concurrent use (the decoder carries per-file transform
// state); each file scan owns one. The Matcher is shared and immutable.
type Processor struct {
	dec     *decode.Decoder
	matcher *keymatch.Matcher
}

func NewProcessor(dec *decode.Decoder, m *keymatch.Matcher) *Processor {
	return &Processor{dec: dec, matcher: m}
}

// Process handles one raw line. lineNo is 1-based.
func (p *Processor) Process(raw []byte, lineNo int) Outcome {
	text, err := p.dec.Line(bytes.TrimSpace(raw), lineNo)
	if err != nil {
		return Outcome{Kind: KindFailed, Err: err}
	}

	fs := fields.Split(text)
	if len(fs) > 0 && fs[0] == Sentinel {
		return Outcome{Kind: KindStop}
	}
	if len(fs) < 2 {
		return Outcome{Kind: KindSkipped}
	}

	var keys []string
	for _, f := range fs {
		keys = append(keys, p.matcher.Find(f)...)
	}
	return Outcome{Kind: KindKeys, Keys: keys}
}
