package filters

import (
	"bytes"
	"encoding/ascii85"
	"testing"
)

func TestASCIIHexDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"simple", "48656C6C6F>", "Hello", false},
		{"lowercase", "48656c6c6f>", "Hello", false},
		{"with whitespace", "48 65 6C\n6C 6F>", "Hello", false},
		{"odd digits pad with zero", "48656C6C6F7>", "Hello\x70", false},
		{"empty", ">", "", false},
		{"no terminator", "48656C6C6F", "Hello", false},
		{"invalid character", "48ZZ>", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ASCIIHexDecode([]byte(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ASCIIHexDecode failed: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// ascii85Encode produces stream data for the decoder tests.
func ascii85Encode(data []byte) []byte {
	var buf bytes.Buffer
	w := ascii85.NewEncoder(&buf)
	w.Write(data)
	w.Close()
	buf.WriteString("~>")
	return buf.Bytes()
}

func TestASCII85Decode(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"simple", []byte("Hello, World!")},
		{"exact group", []byte("abcd")},
		{"partial group", []byte("abcdef")},
		{"single byte", []byte("x")},
		{"binary", []byte{0x00, 0x01, 0xFF, 0xFE, 0x80}},
		{"longer text", []byte("Man is distinguished, not only by his reason, but by this singular passion")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ASCII85Decode(ascii85Encode(tt.data))
			if err != nil {
				t.Fatalf("ASCII85Decode failed: %v", err)
			}
			if !bytes.Equal(got, tt.data) {
				t.Errorf("got %v, want %v", got, tt.data)
			}
		})
	}
}

func TestASCII85DecodeZeroGroup(t *testing.T) {
	// "z" is shorthand for four zero bytes.
	got, err := ASCII85Decode([]byte("z~>"))
	if err != nil {
		t.Fatalf("ASCII85Decode failed: %v", err)
	}
	want := []byte{0, 0, 0, 0}
	if !bytes.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestASCII85DecodeWhitespace(t *testing.T) {
	original := []byte("Hello, World!")
	encoded := ascii85Encode(original)

	// Interleave whitespace, which the decoder must ignore.
	var spaced bytes.Buffer
	for i, b := range encoded {
		spaced.WriteByte(b)
		if i%3 == 0 && b != '~' {
			spaced.WriteByte('\n')
		}
	}

	got, err := ASCII85Decode(spaced.Bytes())
	if err != nil {
		t.Fatalf("ASCII85Decode failed: %v", err)
	}
	if !bytes.Equal(got, original) {
		t.Errorf("got %q, want %q", got, original)
	}
}

func TestASCII85DecodeEmpty(t *testing.T) {
	got, err := ASCII85Decode([]byte("~>"))
	if err != nil {
		t.Fatalf("ASCII85Decode failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestASCII85DecodeInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"character out of range", "\x7f~>"},
		{"single trailing character", "abcdea~>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ASCII85Decode([]byte(tt.input)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
