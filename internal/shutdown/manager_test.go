package shutdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"modeshell/internal/logger"
)

func TestShutdownReverseOrderOnce(t *testing.T) {
	m := NewManager(logger.Nop{})

	var order []string
	m.Register("dispatcher", Func(func() { order = append(order, "dispatcher") }))
	m.Register("host", Func(func() { order = append(order, "host") }))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"host", "dispatcher"}, order)
	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestShutdownTimeout(t *testing.T) {
	m := NewManager(logger.Nop{})
	m.SetTimeout(10 * time.Millisecond)

	block := make(chan struct{})
	defer close(block)
	var ran bool
	m.Register("first", Func(func() { ran = true }))
	m.Register("stuck", Func(func() { <-block }))

	start := time.Now()
	m.Shutdown()

	assert.True(t, ran)
	assert.Less(t, time.Since(start), time.Second)
}
