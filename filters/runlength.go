package filters

import (
	"bytes"
	"fmt"
)

// RunLengthDecode decodes run-length encoded data. A length byte L is
// followed by either L+1 literal bytes (L < 128) or one byte repeated
// 257-L times (L > 128); L = 128 marks end of data.
func RunLengthDecode(data []byte) ([]byte, error) {
	var result bytes.Buffer

	i := 0
	for i < len(data) {
		length := int(data[i])
		i++

		if length == 128 {
			break
		}

		if length < 128 {
			count := length + 1
			if i+count > len(data) {
				return nil, fmt.Errorf("run-length data truncated: need %d literal bytes, have %d", count, len(data)-i)
			}
			result.Write(data[i : i+count])
			i += count
			continue
		}

		if i >= len(data) {
			return nil, fmt.Errorf("run-length data truncated: missing byte to repeat")
		}
		for j := 0; j < 257-length; j++ {
			result.WriteByte(data[i])
		}
		i++
	}

	return result.Bytes(), nil
}
