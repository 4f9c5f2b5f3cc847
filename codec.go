package msdocs

// Codec is a reversible byte transform applied to content before storage.
// Implementations must satisfy Decompress(Compress(b)) == b for any input.
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}
