package mock

import "github.com/fwojciec/msdocs"

var _ msdocs.RecordParser = (*RecordParser)(nil)

// RecordParser is a mock implementation of msdocs.RecordParser.
type RecordParser struct {
	ParseFileFn func(path string) (*msdocs.Record, error)
}

func (p *RecordParser) ParseFile(path string) (*msdocs.Record, error) {
	return p.ParseFileFn(path)
}
