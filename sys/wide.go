package sys

import (
	"unicode/utf16"
	"unsafe"
)

// UTF16FromString returns s as a NUL-terminated UTF-16 sequence.
// It fails with ErrNullCharacter if s already contains a NUL.
func UTF16FromString(s string) ([]uint16, error) {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return nil, ErrNullCharacter
		}
	}
	return append(utf16.Encode([]rune(s)), 0), nil
}

// UTF16PtrFromString is UTF16FromString returning a pointer to the first
// element, ready to hand to the SDK.
func UTF16PtrFromString(s string) (*uint16, error) {
	a, err := UTF16FromString(s)
	if err != nil {
		return nil, err
	}
	return &a[0], nil
}

// UTF16PtrToString decodes a NUL-terminated UTF-16 string. A nil pointer
// yields "".
func UTF16PtrToString(p *uint16) string {
	if p == nil {
		return ""
	}
	n := 0
	for ptr := unsafe.Pointer(p); *(*uint16)(ptr) != 0; n++ {
		ptr = unsafe.Add(ptr, unsafe.Sizeof(*p))
	}
	return string(utf16.Decode(unsafe.Slice(p, n)))
}
