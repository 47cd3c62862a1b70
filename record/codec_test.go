package record

import (
	"testing"

	"github.com/arloliu/rpcwire/errs"
	"github.com/arloliu/rpcwire/wire"
	"github.com/stretchr/testify/require"
)

func TestEncode_AllOrNothing(t *testing.T) {
	sink := wire.NewBuffer(64)
	sink.MustWrite([]byte{0x42})

	bad := sample{Name: "\xc3\x28", Flags: []bool{}, Blob: []byte{}}
	n, err := Encode(sink, bad, writeSample)
	require.ErrorIs(t, err, errs.ErrInvalidFieldValue)
	require.Equal(t, 0, n)
	require.Equal(t, []byte{0x42}, sink.Bytes(), "a failed encode must not touch the sink")

	good := sample{Name: "ok", Flags: []bool{}, Blob: []byte{}}
	n, err = Encode(sink, good, writeSample)
	require.NoError(t, err)
	require.Equal(t, 1+n, sink.Len())
}

func TestEncode_Deterministic(t *testing.T) {
	s := sample{ID: 9, Name: "same", Flags: []bool{false}, Blob: []byte{1, 2}, Seq: 300, Level: 4}

	first, err := Marshal(s, writeSample)
	require.NoError(t, err)
	second, err := Marshal(s, writeSample)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestMarshalUnmarshal(t *testing.T) {
	s := sample{ID: 1, Name: "n", Flags: []bool{}, Blob: []byte{}, Seq: 0, Level: 0}

	data, err := Marshal(s, writeSample)
	require.NoError(t, err)

	decoded, err := Unmarshal(data, readSample)
	require.NoError(t, err)
	require.Equal(t, s, decoded)

	_, err = Unmarshal(append(data, 0x00), readSample)
	require.ErrorIs(t, err, errs.ErrTrailingData)

	_, err = Unmarshal(data[:len(data)-1], readSample)
	require.ErrorIs(t, err, errs.ErrBounds)

	_, err = Marshal(sample{Name: "\xff"}, writeSample)
	require.ErrorIs(t, err, errs.ErrInvalidFieldValue)
}
