package frame

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/rpcwire/errs"
	"github.com/arloliu/rpcwire/internal/pool"
	"github.com/arloliu/rpcwire/record"
	"github.com/arloliu/rpcwire/wire"
)

// Reader reads consecutive framed messages from a byte stream.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	r     io.Reader
	codec *Codec
	hdr   [HeaderSize]byte
}

// NewReader creates a Reader that verifies messages with codec.
func NewReader(r io.Reader, codec *Codec) *Reader {
	return &Reader{r: r, codec: codec}
}

// ReadMessage reads and verifies the next message and returns its header
// and decompressed payload. The payload is owned by the caller.
//
// It returns io.EOF only when the stream ends cleanly between messages; a
// stream that ends inside a message fails with errs.ErrBounds. The header is
// verified before the payload is read, so a corrupted size cannot trigger a
// large allocation.
func (r *Reader) ReadMessage() (Header, []byte, error) {
	h, payload, size, err := r.readMessage()
	if errors.Is(err, io.EOF) {
		return Header{}, nil, io.EOF
	}
	r.codec.metrics.observe(directionDecode, h, size, err)
	if err != nil {
		return Header{}, nil, err
	}

	return h, payload, nil
}

func (r *Reader) readMessage() (Header, []byte, int, error) {
	if _, err := io.ReadFull(r.r, r.hdr[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return Header{}, nil, 0, io.EOF
		}

		return Header{}, nil, 0, streamError("header", err)
	}

	h, err := r.codec.verifyHeader(r.hdr[:])
	if err != nil {
		return Header{}, nil, 0, err
	}

	rest := make([]byte, h.PayloadSize)
	if _, err := io.ReadFull(r.r, rest); err != nil {
		return Header{}, nil, 0, streamError("payload", err)
	}

	payload, err := r.codec.verifyPayload(h, rest)
	if err != nil {
		return Header{}, nil, 0, err
	}

	return h, payload, HeaderSize + len(rest), nil
}

// ReadRecord reads the next message from r and decodes its payload with fn.
func ReadRecord[T any](r *Reader, fn wire.ReadFunc[T]) (Header, T, error) {
	var zero T

	h, payload, err := r.ReadMessage()
	if err != nil {
		return Header{}, zero, err
	}

	v, err := decodePayload(payload, fn)
	if err != nil {
		return Header{}, zero, err
	}

	return h, v, nil
}

func streamError(part string, err error) error {
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: stream ended inside message %s", errs.ErrBounds, part)
	}

	return fmt.Errorf("read message %s: %w", part, err)
}

// Writer writes framed messages to a byte stream.
//
// A Writer owns its destination for the duration of each call and is not
// safe for concurrent use.
type Writer struct {
	w     io.Writer
	codec *Codec
}

// NewWriter creates a Writer that frames messages with codec.
func NewWriter(w io.Writer, codec *Codec) *Writer {
	return &Writer{w: w, codec: codec}
}

// WriteMessage frames payload under h and writes the whole message.
// It returns the number of bytes written.
func (w *Writer) WriteMessage(h Header, payload record.Encodable) (int, error) {
	out := pool.GetMessageBuffer()
	defer pool.PutMessageBuffer(out)

	if err := w.codec.appendMessage(out, h, payload); err != nil {
		return 0, err
	}

	n, err := out.WriteTo(w.w)
	if err != nil {
		return int(n), fmt.Errorf("write message: %w", err)
	}

	return int(n), nil
}
