package synthetic

import (
	"bytes"
	"io"
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mutinifni/caladan/pkg/util/merr"
)

type failingWriter struct {
	err error
}

func (w failingWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

func TestPayloadRoundTrip(t *testing.T) {
	cases := []Payload{
		{WorkIterations: 0, Index: 0},
		{WorkIterations: 1, Index: 0},
		{WorkIterations: 0, Index: 1},
		{WorkIterations: 1000, Index: 42},
		{WorkIterations: math.MaxUint64, Index: math.MaxUint64},
		{WorkIterations: math.MaxUint64, Index: 0},
		{WorkIterations: 0x0102030405060708, Index: 0x1112131415161718},
	}

	for _, want := range cases {
		var buf bytes.Buffer
		require.NoError(t, want.SerializeInto(&buf))
		require.Equal(t, PayloadSize, buf.Len())

		got, err := DeserializePayload(&buf)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		// 解码应恰好消费 16 字节。
		assert.Zero(t, buf.Len())
	}
}

func TestPayloadFixedLength(t *testing.T) {
	for _, p := range []Payload{
		{},
		{WorkIterations: math.MaxUint64, Index: math.MaxUint64},
	} {
		var buf bytes.Buffer
		require.NoError(t, p.SerializeInto(&buf))
		assert.Equal(t, PayloadSize, buf.Len())
	}
}

func TestPayloadByteOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Payload{WorkIterations: 1, Index: 0}.SerializeInto(&buf))

	want := []byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	assert.Equal(t, want, buf.Bytes())
}

func TestDeserializeShortRead(t *testing.T) {
	// 只给出 15 字节后关闭，必须报错而不是静默返回部分结果。
	_, err := DeserializePayload(bytes.NewReader(make([]byte, PayloadSize-1)))
	require.Error(t, err)
	assert.ErrorIs(t, err, merr.ErrShortRead)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	// 空输入同样是短读。
	_, err = DeserializePayload(bytes.NewReader(nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, merr.ErrShortRead)
}

func TestSerializeSinkError(t *testing.T) {
	err := Payload{WorkIterations: 1, Index: 2}.SerializeInto(failingWriter{err: os.ErrClosed})
	require.Error(t, err)
	assert.ErrorIs(t, err, merr.ErrSinkWrite)
	// 底层 I/O 错误必须保留在错误链中。
	assert.ErrorIs(t, err, os.ErrClosed)
}
