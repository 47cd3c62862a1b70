package messages

import (
	"math"
	"testing"

	"github.com/arloliu/rpcwire/errs"
	"github.com/arloliu/rpcwire/record"
	"github.com/arloliu/rpcwire/wire"
	"github.com/stretchr/testify/require"
)

func TestEnableTopicsReply_Layout(t *testing.T) {
	reply := EnableTopicsReply{Inputs: []int8{1, 2, 3}}

	buf := wire.NewBuffer(16)
	n, err := reply.Encode(buf)
	require.NoError(t, err)
	require.Equal(t, 7, n)
	require.Equal(t, reply.Size(), n)
	require.Equal(t, []byte{0x03, 0x00, 0x00, 0x00, 0x01, 0x02, 0x03}, buf.Bytes())

	decoded, off, err := DecodeEnableTopicsReply(buf.Bytes(), 0)
	require.NoError(t, err)
	require.Equal(t, reply, decoded)
	require.Equal(t, 7, off)
}

func TestDisableTopicsReply_RoundTrip(t *testing.T) {
	reply := DisableTopicsReply{Inputs: []int8{-128, 0, 127}}

	data, err := record.Marshal(reply, record.Method[DisableTopicsReply])
	require.NoError(t, err)
	require.Equal(t, reply.Size(), len(data))
	require.Equal(t, []byte{0x03, 0x00, 0x00, 0x00, 0x80, 0x00, 0x7F}, data)

	decoded, err := record.Unmarshal(data, DecodeDisableTopicsReply)
	require.NoError(t, err)
	require.Equal(t, reply, decoded)
}

func TestTopicsReply_Empty(t *testing.T) {
	data, err := record.Marshal(EnableTopicsReply{}, record.Method[EnableTopicsReply])
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0, 0}, data)

	decoded, err := record.Unmarshal(data, DecodeEnableTopicsReply)
	require.NoError(t, err)
	require.NotNil(t, decoded.Inputs)
	require.Empty(t, decoded.Inputs)
}

func TestTopicsReply_Truncated(t *testing.T) {
	data := []byte{0x03, 0x00, 0x00, 0x00, 0x01}

	_, off, err := DecodeEnableTopicsReply(data, 0)
	require.ErrorIs(t, err, errs.ErrBounds)
	require.Equal(t, 0, off)

	_, _, err = DecodeDisableTopicsReply(data, 0)
	require.ErrorIs(t, err, errs.ErrBounds)
	require.Contains(t, err.Error(), "DisableTopicsReply")
}

func sampleMetadata() MetadataInfo {
	return MetadataInfo{
		Inputs: []string{"orders", "payments"},
		Name:   "enricher",
		Age:    42,
		IsCool: true,
		ID:     math.MaxUint64,
		Data:   []byte{0xCA, 0xFE},
	}
}

func TestMetadataInfo_RoundTrip(t *testing.T) {
	m := sampleMetadata()

	buf := wire.NewBuffer(64)
	n, err := m.Encode(buf)
	require.NoError(t, err)
	require.Equal(t, m.Size(), n)
	require.Equal(t, buf.Len(), n)

	decoded, off, err := DecodeMetadataInfo(buf.Bytes(), 0)
	require.NoError(t, err)
	require.Equal(t, m, decoded)
	require.Equal(t, n, off)
}

func TestMetadataInfo_Layout(t *testing.T) {
	m := MetadataInfo{
		Inputs: []string{"a"},
		Name:   "b",
		Age:    -1,
		IsCool: false,
		ID:     128,
		Data:   []byte{},
	}

	data, err := record.Marshal(m, record.Method[MetadataInfo])
	require.NoError(t, err)
	require.Equal(t, []byte{
		0x01, 0x00, 0x00, 0x00, // inputs count
		0x01, 0x00, 0x00, 0x00, 'a', // inputs[0]
		0x01, 0x00, 0x00, 0x00, 'b', // name
		0xFF,       // age
		0x00,       // isCool
		0x80, 0x01, // id
		0x00, 0x00, 0x00, 0x00, // data
	}, data)
}

func TestMetadataInfo_Empty(t *testing.T) {
	m := MetadataInfo{Inputs: []string{}, Data: []byte{}}

	data, err := record.Marshal(m, record.Method[MetadataInfo])
	require.NoError(t, err)
	require.Len(t, data, 4+4+1+1+1+4)

	decoded, err := record.Unmarshal(data, DecodeMetadataInfo)
	require.NoError(t, err)
	require.Equal(t, m, decoded)
}

func TestMetadataInfo_InvalidName(t *testing.T) {
	m := sampleMetadata()
	m.Name = "bad\xff"

	sink := wire.NewBuffer(64)
	_, err := record.Encode(sink, m, record.Method[MetadataInfo])
	require.ErrorIs(t, err, errs.ErrInvalidFieldValue)
	require.Equal(t, 0, sink.Len())
}

func TestMetadataInfo_EncodeLeavesSinkUntouchedOnError(t *testing.T) {
	m := sampleMetadata()
	m.Name = "bad\xff"
	require.NotEmpty(t, m.Inputs)

	sink := wire.NewBuffer(64)
	sink.MustWrite([]byte{0xAA})
	n, err := m.Encode(sink)
	require.ErrorIs(t, err, errs.ErrInvalidFieldValue)
	require.Equal(t, 0, n)
	require.Equal(t, 1, sink.Len())
}

func TestMetadataInfo_TruncatedEverywhere(t *testing.T) {
	data, err := record.Marshal(sampleMetadata(), record.Method[MetadataInfo])
	require.NoError(t, err)

	for cut := range len(data) {
		m, off, err := DecodeMetadataInfo(data[:cut], 0)
		require.Error(t, err, "cut at %d", cut)
		require.Equal(t, MetadataInfo{}, m)
		require.Equal(t, 0, off)
	}
}

func TestSchemas_MatchStaticEncoding(t *testing.T) {
	t.Run("MetadataInfo", func(t *testing.T) {
		m := sampleMetadata()
		static, err := record.Marshal(m, record.Method[MetadataInfo])
		require.NoError(t, err)

		dyn, err := MetadataInfoSchema.New(
			record.Array(record.String("orders"), record.String("payments")),
			record.String("enricher"),
			record.Int8(42),
			record.Bool(true),
			record.VarInt(math.MaxUint64),
			record.Buffer([]byte{0xCA, 0xFE}),
		)
		require.NoError(t, err)

		buf := wire.NewBuffer(64)
		_, err = dyn.Encode(buf)
		require.NoError(t, err)
		require.Equal(t, static, buf.Bytes())

		decoded, off, err := MetadataInfoSchema.Decode(static, 0)
		require.NoError(t, err)
		require.Equal(t, len(static), off)
		require.Equal(t, dyn, decoded)
	})

	t.Run("EnableTopicsReply", func(t *testing.T) {
		static, err := record.Marshal(EnableTopicsReply{Inputs: []int8{1, 2, 3}}, record.Method[EnableTopicsReply])
		require.NoError(t, err)

		dyn, err := EnableTopicsReplySchema.New(record.Array(record.Int8(1), record.Int8(2), record.Int8(3)))
		require.NoError(t, err)

		buf := wire.NewBuffer(16)
		_, err = dyn.Encode(buf)
		require.NoError(t, err)
		require.Equal(t, static, buf.Bytes())
	})

	t.Run("DisableTopicsReply", func(t *testing.T) {
		require.Equal(t, "DisableTopicsReply", DisableTopicsReplySchema.Name)
		require.NoError(t, DisableTopicsReplySchema.Validate())
	})
}
