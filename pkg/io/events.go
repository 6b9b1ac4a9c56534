package io

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"

	"github.com/matzehuels/exhibitboard/pkg/board"
	"github.com/matzehuels/exhibitboard/pkg/errors"
)

// ReadEvents decodes an event log: a JSON array of events, or one JSON
// object per line. Blank lines are skipped. Every event is validated.
func ReadEvents(r io.Reader) ([]board.Event, error) {
	br := bufio.NewReader(r)
	first, err := peekNonSpace(br)
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "read events")
	}

	var events []board.Event
	dec := json.NewDecoder(br)
	if first == '[' {
		if err := dec.Decode(&events); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode events")
		}
	} else {
		for {
			var e board.Event
			err := dec.Decode(&e)
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode event %d", len(events)+1)
			}
			events = append(events, e)
		}
	}

	for i, e := range events {
		if err := e.Validate(); err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "event %d", i+1)
		}
	}
	return events, nil
}

// WriteEvents writes one JSON event per line.
func WriteEvents(events []board.Event, w io.Writer) error {
	enc := json.NewEncoder(w)
	for i, e := range events {
		if err := enc.Encode(e); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode event %d", i+1)
		}
	}
	return nil
}

// ImportEvents reads an event log from a file.
func ImportEvents(path string) ([]board.Event, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadEvents(f)
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.Peek(1)
		if err != nil {
			return 0, err
		}
		if len(bytes.TrimSpace(b)) > 0 {
			return b[0], nil
		}
		if _, err := br.ReadByte(); err != nil {
			return 0, err
		}
	}
}
