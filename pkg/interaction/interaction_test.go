package interaction

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/arthur-debert/toss/pkg/types"
)

type mockConfirmer struct {
	mock.Mock
}

func (m *mockConfirmer) Confirm(prompt string) (bool, error) {
	args := m.Called(prompt)
	return args.Bool(0), args.Error(1)
}

func recorder(answer bool) (*[]string, types.Confirmer) {
	var prompts []string
	return &prompts, types.ConfirmFunc(func(p string) (bool, error) {
		prompts = append(prompts, p)
		return answer, nil
	})
}

func TestConfirmBatch(t *testing.T) {
	tests := []struct {
		name       string
		mode       types.InteractiveMode
		count      int
		recursive  bool
		answer     bool
		want       bool
		wantPrompt string
	}{
		{name: "never does not ask", mode: types.InteractiveNever, count: 10, recursive: true, want: true},
		{name: "always does not ask for batch", mode: types.InteractiveAlways, count: 10, want: true},
		{name: "once under threshold", mode: types.InteractiveOnce, count: 3, want: true},
		{name: "once over threshold accepted", mode: types.InteractiveOnce, count: 4, answer: true, want: true, wantPrompt: "remove 4 arguments?"},
		{name: "once over threshold declined", mode: types.InteractiveOnce, count: 4, answer: false, want: false, wantPrompt: "remove 4 arguments?"},
		{name: "once recursive single", mode: types.InteractiveOnce, count: 1, recursive: true, answer: true, want: true, wantPrompt: "remove 1 argument recursively?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompts, c := recorder(tt.answer)
			got := New(tt.mode, DefaultOnceThreshold, c).ConfirmBatch(tt.count, tt.recursive)
			assert.Equal(t, tt.want, got)
			if tt.wantPrompt == "" {
				assert.Empty(t, *prompts)
			} else {
				assert.Equal(t, []string{tt.wantPrompt}, *prompts)
			}
		})
	}
}

func TestConfirmBatch_CustomThreshold(t *testing.T) {
	prompts, c := recorder(true)
	p := New(types.InteractiveOnce, 0, c)
	assert.True(t, p.ConfirmBatch(1, false))
	assert.Equal(t, []string{"remove 1 argument?"}, *prompts)
}

func TestConfirmItem(t *testing.T) {
	entry := types.Entry{Path: "/home/a.txt"}

	m := &mockConfirmer{}
	m.On("Confirm", "remove '/home/a.txt'?").Return(true, nil).Once()
	m.On("Confirm", "remove empty directory '/home/a.txt'?").Return(false, nil).Once()

	p := New(types.InteractiveAlways, DefaultOnceThreshold, m)
	assert.True(t, p.ConfirmItem(entry, false))
	assert.False(t, p.ConfirmItem(entry, true))
	m.AssertExpectations(t)

	for _, mode := range []types.InteractiveMode{types.InteractiveNever, types.InteractiveOnce} {
		silent := &mockConfirmer{}
		assert.True(t, New(mode, DefaultOnceThreshold, silent).ConfirmItem(entry, false))
		silent.AssertNotCalled(t, "Confirm", mock.Anything)
	}
}

func TestConfirmPermanent(t *testing.T) {
	prompts, c := recorder(true)
	assert.True(t, New(types.InteractiveNever, -1, c).ConfirmPermanent("/x"))
	assert.Equal(t, []string{"remove '/x' PERMANENTLY?"}, *prompts)
}

func TestReadErrorIsRefusal(t *testing.T) {
	m := &mockConfirmer{}
	m.On("Confirm", mock.Anything).Return(true, io.EOF)
	assert.False(t, New(types.InteractiveAlways, 3, m).ConfirmItem(types.Entry{Path: "/a"}, false))

	failing := types.ConfirmFunc(func(string) (bool, error) { return false, errors.New("closed") })
	assert.False(t, New(types.InteractiveNever, 3, failing).ConfirmPermanent("/a"))

	assert.False(t, New(types.InteractiveNever, 3, nil).ConfirmPermanent("/a"))
}

func TestDefaults(t *testing.T) {
	p := New("", -5, nil)
	assert.Equal(t, types.InteractiveNever, p.Mode())
	assert.Equal(t, DefaultOnceThreshold, p.threshold)
}
