package filters

import (
	"bytes"
	"fmt"
)

// ASCIIHexDecode decodes ASCII hexadecimal encoded data. Each pair of
// hex digits represents one byte; whitespace is ignored and > marks end
// of data. An odd final digit is padded with a trailing zero.
func ASCIIHexDecode(data []byte) ([]byte, error) {
	var result bytes.Buffer

	i := 0
	for i < len(data) {
		if isWhitespace(data[i]) {
			i++
			continue
		}
		if data[i] == '>' {
			break
		}

		b1, err := hexDigitToByte(data[i])
		if err != nil {
			return nil, err
		}
		i++

		for i < len(data) && isWhitespace(data[i]) {
			i++
		}

		if i >= len(data) || data[i] == '>' {
			// Odd number of digits
			result.WriteByte(b1 << 4)
			break
		}

		b2, err := hexDigitToByte(data[i])
		if err != nil {
			return nil, err
		}
		i++

		result.WriteByte((b1 << 4) | b2)
	}

	return result.Bytes(), nil
}

// ASCII85Decode decodes ASCII base-85 encoded data. Each group of 5
// characters (! to u) represents 4 bytes; 'z' stands for four zero
// bytes and ~> marks end of data.
func ASCII85Decode(data []byte) ([]byte, error) {
	var result bytes.Buffer

	i := 0
	for i < len(data) {
		if isWhitespace(data[i]) {
			i++
			continue
		}
		if i+1 < len(data) && data[i] == '~' && data[i+1] == '>' {
			break
		}
		if data[i] == 'z' {
			result.Write([]byte{0, 0, 0, 0})
			i++
			continue
		}

		digits := make([]byte, 0, 5)
		for len(digits) < 5 && i < len(data) {
			if isWhitespace(data[i]) {
				i++
				continue
			}
			if i+1 < len(data) && data[i] == '~' && data[i+1] == '>' {
				break
			}
			if data[i] < '!' || data[i] > 'u' {
				return nil, fmt.Errorf("invalid ASCII85 character: %c", data[i])
			}
			digits = append(digits, data[i]-'!')
			i++
		}

		if len(digits) == 0 {
			break
		}
		if len(digits) == 1 {
			return nil, fmt.Errorf("ASCII85 final group must have at least 2 characters")
		}

		// A partial final group of n digits encodes n-1 bytes; pad with
		// 'u' (84) to complete the group before conversion.
		numBytes := len(digits) - 1
		if numBytes > 4 {
			numBytes = 4
		}
		for len(digits) < 5 {
			digits = append(digits, 84)
		}

		value := uint32(0)
		for _, d := range digits {
			value = value*85 + uint32(d)
		}

		for j := 0; j < numBytes; j++ {
			result.WriteByte(byte(value >> (24 - j*8)))
		}
	}

	return result.Bytes(), nil
}

// hexDigitToByte converts a hexadecimal character to its value (0-15).
func hexDigitToByte(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	default:
		return 0, fmt.Errorf("invalid hex digit: %c", c)
	}
}
