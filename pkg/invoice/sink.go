package invoice

import (
	"errors"
	"io"

	"golang.org/x/sync/errgroup"
)

// WriteAll fans the document out to every sink concurrently. Each sink gets
// the full byte slice from its own goroutine, so a slow or failing sink (a
// disconnected client, a full disk) cannot truncate or corrupt what another
// sink receives. Sinks that implement io.Closer are closed after their write;
// flushable sinks are flushed. All sink errors are collected and joined.
func WriteAll(doc *Document, sinks ...io.Writer) error {
	g := new(errgroup.Group)
	errs := make([]error, len(sinks))

	for i, sink := range sinks {
		g.Go(func() error {
			errs[i] = writeOne(doc.Bytes, sink)
			return nil
		})
	}
	g.Wait()

	return errors.Join(errs...)
}

func writeOne(data []byte, sink io.Writer) error {
	_, writeErr := sink.Write(data)

	if f, ok := sink.(interface{ Flush() }); ok {
		f.Flush()
	}
	if c, ok := sink.(io.Closer); ok {
		if closeErr := c.Close(); writeErr == nil {
			return closeErr
		}
	}
	return writeErr
}
