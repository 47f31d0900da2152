package middleware

import (
	"fmt"
	"testing"

	"contestbot/internal/i18n"
	"contestbot/internal/service"
	"contestbot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

// fakeContext implements the tele.Context methods the gate touches
type fakeContext struct {
	tele.Context

	sender *tele.User
	text   string
	sent   []string
}

func (c *fakeContext) Sender() *tele.User { return c.sender }

func (c *fakeContext) Text() string { return c.text }

func (c *fakeContext) Send(what interface{}, opts ...interface{}) error {
	c.sent = append(c.sent, fmt.Sprint(what))
	return nil
}

func newGate(registry *testutil.MockRegistry, operators []int64) tele.MiddlewareFunc {
	logger := testutil.NewTestLogger()
	admin := service.NewAdminService(registry, new(testutil.MockMessenger), operators, logger)
	return OperatorOnly(admin, logger)
}

func TestOperatorOnly_RejectsNonOperator(t *testing.T) {
	registry := new(testutil.MockRegistry)
	gate := newGate(registry, []int64{100})

	nextCalled := false
	wrapped := gate(func(c tele.Context) error {
		nextCalled = true
		return nil
	})

	ctx := &fakeContext{sender: &tele.User{ID: 200}, text: "/registered_count"}
	require.NoError(t, wrapped(ctx))

	// The handler never runs and the registry is never touched
	assert.False(t, nextCalled)
	registry.AssertNotCalled(t, "LoadAll")

	require.Len(t, ctx.sent, 1)
	assert.Equal(t, i18n.Inline(i18n.AdminsOnly), ctx.sent[0])
}

func TestOperatorOnly_AllowsOperator(t *testing.T) {
	registry := new(testutil.MockRegistry)
	gate := newGate(registry, []int64{100})

	nextCalled := false
	wrapped := gate(func(c tele.Context) error {
		nextCalled = true
		return nil
	})

	ctx := &fakeContext{sender: &tele.User{ID: 100}, text: "/broadcast hi"}
	require.NoError(t, wrapped(ctx))

	assert.True(t, nextCalled)
	assert.Empty(t, ctx.sent)
}

func TestOperatorOnly_EmptyAllowListRejectsEveryone(t *testing.T) {
	registry := new(testutil.MockRegistry)
	gate := newGate(registry, nil)

	wrapped := gate(func(c tele.Context) error {
		t.Fatal("handler must not run")
		return nil
	})

	ctx := &fakeContext{sender: &tele.User{ID: 1}, text: "/registered_count"}
	require.NoError(t, wrapped(ctx))

	require.Len(t, ctx.sent, 1)
	assert.Equal(t, i18n.Inline(i18n.AdminsOnly), ctx.sent[0])
}
