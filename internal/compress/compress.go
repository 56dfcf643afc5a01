package compress

// Codec encodes payloads before they leave the process, cached trees mostly,
// and decodes them on the way back.
type Codec interface {
	Encode(data []byte) ([]byte, error)
	Decode(data []byte) ([]byte, error)
}

type Nop struct {
}

func NewNop() Nop {
	return Nop{}
}

func (n Nop) Encode(data []byte) ([]byte, error) {
	return data, nil
}

func (n Nop) Decode(data []byte) ([]byte, error) {
	return data, nil
}

// ForName resolves a codec by its config name. Unknown names fall back to
// gzip rather than failing, a misspelled codec should not take the cache down.
func ForName(name string) Codec {
	switch name {
	case "none":
		return NewNop()
	case "brotli":
		return NewBrotli()
	case "lz4":
		return NewLZ4()
	default:
		return NewGZip()
	}
}
