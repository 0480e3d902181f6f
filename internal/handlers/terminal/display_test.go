package terminal

import (
	"context"
	"testing"

	"github.com/KirkDiggler/spinwheel/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestStatusLine_ShowAndHide(t *testing.T) {
	ctx := context.Background()
	s := NewStatusLine()

	first := models.Notification{Message: "first"}
	second := models.Notification{Message: "second"}

	assert.NoError(t, s.Show(ctx, first))
	assert.Equal(t, "first", s.Message())

	select {
	case <-s.Changed():
	default:
		t.Fatal("expected a change signal")
	}

	assert.NoError(t, s.Show(ctx, second))
	assert.NoError(t, s.Hide(ctx, first))
	assert.Equal(t, "second", s.Message())

	assert.NoError(t, s.Hide(ctx, second))
	assert.Empty(t, s.Message())
}

func TestStatusLine_SignalsCollapse(t *testing.T) {
	ctx := context.Background()
	s := NewStatusLine()

	for i := 0; i < 5; i++ {
		assert.NoError(t, s.Show(ctx, models.Notification{Message: "x"}))
	}

	<-s.Changed()
	select {
	case <-s.Changed():
		t.Fatal("signals should collapse")
	default:
	}
}
