package ipstore

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Entry is an address with its label, the unit of bulk loading.
type Entry[V any] struct {
	Address string
	Label   V
}

// Load adds all entries in order and returns the number of new addresses.
// Entries with malformed addresses are skipped; their errors are combined
// and can be split again with multierr.Errors.
func (s *Store[V]) Load(entries []Entry[V]) (added int, err error) {
	for _, e := range entries {
		isNew, aerr := s.Add(e.Address, e.Label)
		if aerr != nil {
			err = multierr.Append(err, aerr)
			continue
		}
		if isNew {
			added++
		}
	}
	s.log.Debug("loaded entries",
		zap.Int("total", len(entries)),
		zap.Int("added", added),
		zap.Int("rejected", len(multierr.Errors(err))),
	)
	return
}
