package utils_test

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/gitopolis/internal/utils"
)

const testConcurrentLineCountConstant = 500

func TestFlushingWriterFlushesBufferedWriters(testInstance *testing.T) {
	destination := &bytes.Buffer{}
	bufferedWriter := bufio.NewWriterSize(destination, 4096)

	flushingWriter := utils.NewFlushingWriter(bufferedWriter)
	_, writeError := flushingWriter.Write([]byte("hello\n"))
	require.NoError(testInstance, writeError)
	require.Equal(testInstance, "hello\n", destination.String())

	require.Same(testInstance, flushingWriter, utils.NewFlushingWriter(flushingWriter))
	require.Nil(testInstance, utils.NewFlushingWriter(nil))
}

func TestNewFlushingWriterPair(testInstance *testing.T) {
	sharedBuffer := &bytes.Buffer{}
	sharedOutput, sharedError := utils.NewFlushingWriterPair(sharedBuffer, sharedBuffer)
	require.Same(testInstance, sharedOutput, sharedError)

	separateOutput, separateError := utils.NewFlushingWriterPair(&bytes.Buffer{}, &bytes.Buffer{})
	require.NotSame(testInstance, separateOutput, separateError)
}

func TestFlushingWriterPairSerializesSharedDestination(testInstance *testing.T) {
	var sharedBuffer bytes.Buffer
	outputWriter, errorWriter := utils.NewFlushingWriterPair(&sharedBuffer, &sharedBuffer)

	var writersGroup sync.WaitGroup
	for _, writerUnderTest := range []struct {
		prefix string
		writer io.Writer
	}{{prefix: "out", writer: outputWriter}, {prefix: "err", writer: errorWriter}} {
		writersGroup.Add(1)
		go func() {
			defer writersGroup.Done()
			for lineIndex := 0; lineIndex < testConcurrentLineCountConstant; lineIndex++ {
				_, _ = fmt.Fprintf(writerUnderTest.writer, "%s%d\n", writerUnderTest.prefix, lineIndex)
			}
		}()
	}
	writersGroup.Wait()

	writtenLines := strings.Split(strings.TrimSuffix(sharedBuffer.String(), "\n"), "\n")
	require.Len(testInstance, writtenLines, 2*testConcurrentLineCountConstant)
	for _, writtenLine := range writtenLines {
		require.True(testInstance, strings.HasPrefix(writtenLine, "out") || strings.HasPrefix(writtenLine, "err"), writtenLine)
	}
}
