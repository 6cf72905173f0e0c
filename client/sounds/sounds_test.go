package sounds

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockPlayer struct {
	mock.Mock
}

func (m *mockPlayer) Rewind() error {
	args := m.Called()
	return args.Error(0)
}

func (m *mockPlayer) Play() {
	m.Called()
}

func (m *mockPlayer) SetVolume(volume float64) {
	m.Called(volume)
}

func TestBank_Play(t *testing.T) {
	flap := &mockPlayer{}
	flap.On("SetVolume", 0.5).Once()
	flap.On("Rewind").Return(nil).Once()
	flap.On("Play").Once()

	b := NewBank(NewBankOptions{
		Players: map[ID]Player{Flap: flap},
		Volume:  0.5,
	})
	b.Play(Flap)
	// unknown sounds are ignored
	b.Play(Hit)

	flap.AssertExpectations(t)
}

func TestBank_Play_rewindError(t *testing.T) {
	hit := &mockPlayer{}
	hit.On("SetVolume", 1.0).Once()
	hit.On("Rewind").Return(errors.New("closed")).Once()
	hit.On("Play").Once()

	b := NewBank(NewBankOptions{Players: map[ID]Player{Hit: hit}, Volume: 1})
	b.Play(Hit)

	hit.AssertExpectations(t)
}

func TestBank_muted(t *testing.T) {
	point := &mockPlayer{}
	point.On("SetVolume", 1.0).Once()

	b := NewBank(NewBankOptions{Players: map[ID]Player{Point: point}, Volume: 3, Muted: true})
	assert.Equal(t, 1.0, b.Volume())
	b.Play(Point)
	point.AssertNotCalled(t, "Play")

	assert.False(t, b.ToggleMute())
	assert.False(t, b.Muted())
}

func TestBank_Validate(t *testing.T) {
	fall := &mockPlayer{}
	fall.On("SetVolume", 0.0).Once()

	b := NewBank(NewBankOptions{Players: map[ID]Player{Fall: fall}})
	assert.NoError(t, b.Validate(Fall))
	assert.ErrorContains(t, b.Validate(Fall, Flap), "missing sound flap")
}
