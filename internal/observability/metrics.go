package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Codec outcome labels.
const (
	OutcomeOK           = "ok"
	OutcomeUnderrun     = "underrun"
	OutcomeMalformed    = "malformed"
	OutcomeUnknownEnum  = "unknown_enum"
	OutcomeInvalidText  = "invalid_text"
	OutcomeUnregistered = "unregistered"
	OutcomeError        = "error"
)

var (
	registerOnce sync.Once

	decodeTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "structmsg",
			Subsystem: "codec",
			Name:      "decode_total",
			Help:      "Struct message decode attempts by message type and outcome.",
		},
		[]string{"emsg", "outcome"},
	)
	encodeTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "structmsg",
			Subsystem: "codec",
			Name:      "encode_total",
			Help:      "Struct message encode attempts by message type and outcome.",
		},
		[]string{"emsg", "outcome"},
	)
	bodyBytes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "structmsg",
			Subsystem: "codec",
			Name:      "body_bytes",
			Help:      "Size of message bodies passed through the codecs.",
			Buckets:   prometheus.ExponentialBuckets(4, 4, 8),
		},
		[]string{"direction"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(decodeTotal, encodeTotal, bodyBytes)
	})
}

func RecordDecode(emsg string, outcome string, size int) {
	RegisterMetrics()
	decodeTotal.WithLabelValues(emsg, outcome).Inc()
	bodyBytes.WithLabelValues("decode").Observe(float64(size))
}

func RecordEncode(emsg string, outcome string, size int) {
	RegisterMetrics()
	encodeTotal.WithLabelValues(emsg, outcome).Inc()
	if outcome == OutcomeOK {
		bodyBytes.WithLabelValues("encode").Observe(float64(size))
	}
}

// DecodeCounter returns the decode counter for one message type and outcome.
func DecodeCounter(emsg string, outcome string) prometheus.Counter {
	return decodeTotal.WithLabelValues(emsg, outcome)
}

// EncodeCounter returns the encode counter for one message type and outcome.
func EncodeCounter(emsg string, outcome string) prometheus.Counter {
	return encodeTotal.WithLabelValues(emsg, outcome)
}
