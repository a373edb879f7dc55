package utils

import (
	"io"
	"reflect"
	"sync"
)

type flusher interface {
	Flush() error
}

// FlushingWriter serializes writes to one destination and flushes it after every
// write when the destination buffers.
type FlushingWriter struct {
	mutex       sync.Mutex
	destination io.Writer
	flusher     flusher
}

// NewFlushingWriter wraps destination. A nil destination stays nil and a
// FlushingWriter is returned unchanged.
func NewFlushingWriter(destination io.Writer) io.Writer {
	switch typedDestination := destination.(type) {
	case nil:
		return nil
	case *FlushingWriter:
		return typedDestination
	}
	wrappedWriter := &FlushingWriter{destination: destination}
	wrappedWriter.flusher, _ = destination.(flusher)
	return wrappedWriter
}

// NewFlushingWriterPair wraps an output and an error destination. When both are
// the same writer a single FlushingWriter is returned twice so goroutines writing
// to either stream share one lock.
func NewFlushingWriterPair(outputWriter io.Writer, errorWriter io.Writer) (io.Writer, io.Writer) {
	wrappedOutputWriter := NewFlushingWriter(outputWriter)
	if sameWriter(outputWriter, errorWriter) {
		return wrappedOutputWriter, wrappedOutputWriter
	}
	return wrappedOutputWriter, NewFlushingWriter(errorWriter)
}

// Write forwards data to the destination under the writer's lock.
func (writer *FlushingWriter) Write(data []byte) (int, error) {
	if writer == nil || writer.destination == nil {
		return 0, nil
	}

	writer.mutex.Lock()
	defer writer.mutex.Unlock()

	bytesWritten, writeError := writer.destination.Write(data)
	if writeError != nil || writer.flusher == nil {
		return bytesWritten, writeError
	}
	return bytesWritten, writer.flusher.Flush()
}

func sameWriter(firstWriter io.Writer, secondWriter io.Writer) bool {
	firstType := reflect.TypeOf(firstWriter)
	if firstType == nil || firstType != reflect.TypeOf(secondWriter) || !firstType.Comparable() {
		return false
	}
	return firstWriter == secondWriter
}
