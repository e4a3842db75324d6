package catalog

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

type textEncoding int

const (
	encodingPlain textEncoding = iota
	encodingUTF8BOM
	encodingUTF16LE
	encodingUTF16BE
)

func detectTextEncoding(content []byte) textEncoding {
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return encodingUTF8BOM
	}
	if len(content) >= 2 {
		switch {
		case content[0] == 0xFF && content[1] == 0xFE:
			return encodingUTF16LE
		case content[0] == 0xFE && content[1] == 0xFF:
			return encodingUTF16BE
		}
	}
	return encodingPlain
}

// decodeText converts BOM-marked catalog files into UTF-8. Content without a
// BOM is returned as-is; invalid UTF-8 is dealt with per line by the caller.
func decodeText(content []byte) (string, error) {
	switch detectTextEncoding(content) {
	case encodingUTF8BOM:
		return string(content[3:]), nil
	case encodingUTF16LE:
		return decodeUTF16(content, unicode.LittleEndian)
	case encodingUTF16BE:
		return decodeUTF16(content, unicode.BigEndian)
	default:
		return string(content), nil
	}
}

func decodeUTF16(content []byte, endian unicode.Endianness) (string, error) {
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, err := decoder.Bytes(content)
	if err != nil {
		return "", fmt.Errorf("decode utf-16: %w", err)
	}
	return string(out), nil
}
