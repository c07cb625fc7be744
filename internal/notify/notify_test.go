package notify

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youriscent/storefront/internal/ui"
)

type recordingSink struct {
	mu       sync.Mutex
	messages []string
	hides    int
}

func (r *recordingSink) Show(message string, severity ui.Severity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
}

func (r *recordingSink) Hide() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hides++
}

func (r *recordingSink) snapshot() ([]string, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages...), r.hides
}

func TestShow_AutoHidesAfterDelay(t *testing.T) {
	sink := &recordingSink{}
	center := NewCenter(sink, 30*time.Millisecond)

	center.Show("Pesanan berhasil!", ui.SeveritySuccess)

	messages, hides := sink.snapshot()
	require.Equal(t, []string{"Pesanan berhasil!"}, messages)
	assert.Equal(t, 0, hides)

	time.Sleep(150 * time.Millisecond)

	_, hides = sink.snapshot()
	assert.Equal(t, 1, hides)
}

func TestShow_NewerNotificationSupersedesPendingDismissal(t *testing.T) {
	sink := &recordingSink{}
	center := NewCenter(sink, 100*time.Millisecond)

	center.Show("first", ui.SeverityInfo)
	time.Sleep(50 * time.Millisecond)
	center.Show("second", ui.SeverityInfo)

	// The first message's deadline has passed, but its timer was
	// superseded; the second message must still be visible.
	time.Sleep(75 * time.Millisecond)
	_, hides := sink.snapshot()
	assert.Equal(t, 0, hides)

	time.Sleep(100 * time.Millisecond)
	messages, hides := sink.snapshot()
	assert.Equal(t, []string{"first", "second"}, messages)
	assert.Equal(t, 1, hides)
}

func TestHide_CancelsPendingTimer(t *testing.T) {
	sink := &recordingSink{}
	center := NewCenter(sink, 30*time.Millisecond)

	center.Show("first", ui.SeverityInfo)
	center.Hide()

	_, hides := sink.snapshot()
	assert.Equal(t, 1, hides)

	time.Sleep(100 * time.Millisecond)
	_, hides = sink.snapshot()
	assert.Equal(t, 1, hides)
}
