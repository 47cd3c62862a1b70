package frame

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/arloliu/rpcwire/errs"
	"github.com/arloliu/rpcwire/internal/options"
)

const (
	directionEncode = "encode"
	directionDecode = "decode"
)

// Metrics counts framed messages, on-wire bytes and rejected messages.
//
// A Codec without metrics records nothing. One Metrics value may be shared
// by several codecs.
type Metrics struct {
	messagesTotal *prometheus.CounterVec
	bytesTotal    *prometheus.CounterVec
	failuresTotal *prometheus.CounterVec
}

// NewMetrics creates the frame counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		messagesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rpcwire_frame_messages_total",
				Help: "Total number of messages framed or unframed successfully",
			},
			[]string{"direction", "compression"},
		),
		bytesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rpcwire_frame_bytes_total",
				Help: "Total number of message bytes, header included, framed or unframed",
			},
			[]string{"direction", "compression"},
		),
		failuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rpcwire_frame_failures_total",
				Help: "Total number of messages that failed to frame or unframe",
			},
			[]string{"direction", "reason"},
		),
	}
}

// WithMetrics makes the Codec, and any Reader or Writer using it, record to m.
func WithMetrics(m *Metrics) CodecOption {
	return options.NoError(func(codec *Codec) {
		codec.metrics = m
	})
}

func (m *Metrics) observe(direction string, h Header, size int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.failuresTotal.WithLabelValues(direction, failureReason(err)).Inc()
		return
	}

	compression := h.Compression.String()
	m.messagesTotal.WithLabelValues(direction, compression).Inc()
	m.bytesTotal.WithLabelValues(direction, compression).Add(float64(size))
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, errs.ErrChecksumMismatch):
		return "checksum"
	case errors.Is(err, errs.ErrFramingMismatch):
		return "framing"
	case errors.Is(err, errs.ErrBounds):
		return "bounds"
	case errors.Is(err, errs.ErrLengthLimit):
		return "length_limit"
	case errors.Is(err, errs.ErrUnsupportedVersion):
		return "version"
	case errors.Is(err, errs.ErrUnsupportedCompression):
		return "compression"
	case errors.Is(err, errs.ErrInvalidFieldValue):
		return "invalid_value"
	default:
		return "other"
	}
}
