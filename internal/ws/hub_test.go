package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) (*Hub, context.CancelFunc) {
	t.Helper()
	h := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	go h.Run(ctx)
	t.Cleanup(cancel)
	return h, cancel
}

func registerClient(t *testing.T, h *Hub) *Client {
	t.Helper()
	c := NewClient(h, nil)
	want := h.ClientCount() + 1
	h.Register(c)
	require.Eventually(t, func() bool { return h.ClientCount() == want }, time.Second, 5*time.Millisecond)
	return c
}

func receive(t *testing.T, c *Client) []byte {
	t.Helper()
	select {
	case msg, ok := <-c.send:
		require.True(t, ok, "send channel closed")
		return msg
	case <-time.After(time.Second):
		t.Fatal("no message received")
		return nil
	}
}

func TestHub_BroadcastReachesEveryClient(t *testing.T) {
	h, _ := startHub(t)
	a := registerClient(t, h)
	b := registerClient(t, h)

	h.Broadcast([]byte("hello"))

	assert.Equal(t, []byte("hello"), receive(t, a))
	assert.Equal(t, []byte("hello"), receive(t, b))
}

func TestHub_Unregister(t *testing.T) {
	h, _ := startHub(t)
	c := registerClient(t, h)

	h.Unregister(c)
	require.Eventually(t, func() bool { return h.ClientCount() == 0 }, time.Second, 5*time.Millisecond)

	_, open := <-c.send
	assert.False(t, open)
}

func TestHub_DropsSlowClient(t *testing.T) {
	h, _ := startHub(t)
	registerClient(t, h)

	for i := 0; i < sendBuffer+1; i++ {
		h.Broadcast([]byte("x"))
	}
	require.Eventually(t, func() bool { return h.ClientCount() == 0 }, time.Second, 5*time.Millisecond)
}

func TestHub_StopClosesClients(t *testing.T) {
	h, cancel := startHub(t)
	c := registerClient(t, h)

	cancel()
	require.Eventually(t, func() bool { return h.ClientCount() == 0 }, time.Second, 5*time.Millisecond)
	for range c.send {
	}
}

func TestHub_CallsAfterStopReturn(t *testing.T) {
	h := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(stopped)
	}()
	registered := registerClient(t, h)

	cancel()
	<-stopped
	assert.True(t, h.Stopped())

	late := NewClient(h, nil)
	returned := make(chan struct{})
	go func() {
		h.Register(late)
		h.Unregister(late)
		h.Unregister(registered)
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("register after stop blocked")
	}
	_, open := <-late.send
	assert.False(t, open)
	assert.Zero(t, h.ClientCount())
}

func TestNotifier_SkillValidated(t *testing.T) {
	h, _ := startHub(t)
	c := registerClient(t, h)

	n := NewNotifier(h, nil)
	n.now = func() time.Time { return time.Date(2024, time.May, 10, 9, 30, 0, 0, time.UTC) }
	n.NotifySkillValidated("emp001", "skill001", "emp005", 4)

	var ev SkillValidatedEvent
	require.NoError(t, json.Unmarshal(receive(t, c), &ev))
	assert.Equal(t, SkillValidatedEvent{
		Type:        EventSkillValidated,
		EmployeeID:  "emp001",
		SkillID:     "skill001",
		AssessorID:  "emp005",
		Proficiency: 4,
		Timestamp:   "2024-05-10T09:30:00Z",
	}, ev)
}

func TestNilSafety(t *testing.T) {
	var h *Hub
	h.Broadcast([]byte("x"))
	assert.Zero(t, h.ClientCount())
	assert.True(t, h.Stopped())

	var n *Notifier
	n.NotifySkillValidated("a", "b", "c", 1)
	NewNotifier(nil, nil).NotifySkillValidated("a", "b", "c", 1)
}
