package textshow

import (
	"bytes"
	"encoding/json"
)

// Field is one key/value pair of a State's diagnostic export.
type Field struct {
	Key   string
	Value any
}

// Fields returns the record as an ordered, stable key/value list
// covering every field except the font reference. Intended for debugging
// and golden-output comparison; the key set and order never change
// between records.
func (s *State) Fields() []Field {
	return []Field{
		{"txt", s.Txt},
		{"font_size", s.FontSize},
		{"char_spacing", s.CharSpacing},
		{"word_spacing", s.WordSpacing},
		{"horizontal_scaling", s.HorizontalScaling},
		{"leading", s.Leading},
		{"rise", s.Rise},
		{"transform", s.Transform},
		{"tx", s.Tx},
		{"ty", s.Ty},
		{"displaced_tx", s.DisplacedTx},
		{"space_tx", s.SpaceTx},
		{"font_height", s.FontHeight},
		{"flip_vertical", s.FlipVertical},
		{"rotated", s.Rotated},
	}
}

// MarshalJSON encodes the record as a JSON object with the same keys, in
// the same order, as Fields.
func (s *State) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range s.Fields() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
