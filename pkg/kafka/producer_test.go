package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *recordingWriter) Close() error { w.closed = true; return nil }

func TestPublishBatchEncodesJSON(t *testing.T) {
	w := &recordingWriter{}
	p := NewProducerWithWriter(w, "deception.scores", "gzip")

	err := p.PublishBatch(context.Background(), []Message{
		{Key: []byte("Pete Fairbanks"), Value: map[string]float64{"deception_score": 0.7}},
		{Key: []byte("raw"), Value: []byte(`{"x":1}`)},
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 2)
	assert.Equal(t, "Pete Fairbanks", string(w.msgs[0].Key))

	var decoded map[string]float64
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &decoded))
	assert.Equal(t, 0.7, decoded["deception_score"])
	assert.Equal(t, `{"x":1}`, string(w.msgs[1].Value))

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestPublishWrapsWriterError(t *testing.T) {
	boom := errors.New("leader not available")
	p := NewProducerWithWriter(&recordingWriter{err: boom}, "deception.scores", "gzip")
	err := p.Publish(context.Background(), []byte("k"), "v")
	assert.ErrorIs(t, err, boom)
}

func TestNewProducerValidates(t *testing.T) {
	_, err := NewProducer(WithTopic("t"))
	assert.ErrorContains(t, err, "brokers")
	_, err = NewProducer(WithBrokers([]string{"localhost:9092"}))
	assert.ErrorContains(t, err, "topic")

	p, err := NewProducer(WithBrokers([]string{"localhost:9092"}), WithTopic("deception.scores"), WithCompression("zstd"))
	require.NoError(t, err)
	assert.Equal(t, "deception.scores", p.Topic())
	assert.NoError(t, p.Close())
}

func TestParseCompression(t *testing.T) {
	assert.Equal(t, kafka.Snappy, parseCompression("snappy"))
	assert.Equal(t, kafka.Gzip, parseCompression("unknown"))
}
