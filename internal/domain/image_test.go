package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoraWeightsValid(t *testing.T) {
	tests := map[string]struct {
		weights  []float64
		expected bool
	}{
		"empty":             {nil, true},
		"single-full":       {[]float64{1.0}, true},
		"sum-0.97":          {[]float64{0.5, 0.47}, true},
		"sum-1.03":          {[]float64{0.53, 0.5}, true},
		"sum-0.95":          {[]float64{0.5, 0.45}, false},
		"sum-0.80":          {[]float64{0.4, 0.4}, false},
		"thirds":            {[]float64{0.33, 0.33, 0.33}, true},
		"sum-1.04":          {[]float64{0.54, 0.5}, false},
		"six-equal-weights": {EqualLoraWeights(6), true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var loras []LoraWeight
			for _, w := range tt.weights {
				loras = append(loras, LoraWeight{Repo: "r", Weight: w})
			}
			assert.Equal(t, tt.expected, LoraWeightsValid(loras))
		})
	}
}

func TestEqualLoraWeights(t *testing.T) {
	assert.Nil(t, EqualLoraWeights(0))
	assert.Equal(t, []float64{1}, EqualLoraWeights(1))
	assert.Equal(t, []float64{0.5, 0.5}, EqualLoraWeights(2))
	assert.Equal(t, []float64{0.33, 0.33, 0.34}, EqualLoraWeights(3))
	assert.Equal(t, []float64{0.14, 0.14, 0.14, 0.14, 0.14, 0.14, 0.16}, EqualLoraWeights(7))
}

func TestImageParams_Validate(t *testing.T) {
	steps := 0
	tests := map[string]struct {
		params      ImageParams
		expectedErr error
	}{
		"valid": {
			params: ImageParams{Prompt: "fox", Size: "1328x1328"},
		},
		"blank-prompt": {
			params:      ImageParams{Prompt: " \n"},
			expectedErr: NewValidationErr("prompt cannot be empty"),
		},
		"bad-size": {
			params:      ImageParams{Prompt: "fox", Size: "big"},
			expectedErr: NewValidationErr(`invalid image size "big"`),
		},
		"zero-steps": {
			params:      ImageParams{Prompt: "fox", Steps: &steps},
			expectedErr: NewValidationErr("steps must be greater than 0"),
		},
		"weight-out-of-range": {
			params:      ImageParams{Prompt: "fox", Loras: []LoraWeight{{Repo: "r", Weight: 1.2}}},
			expectedErr: NewValidationErr("LoRA r weight must be within [0,1]"),
		},
		"too-many-loras": {
			params:      ImageParams{Prompt: "fox", Loras: make([]LoraWeight, MaxLoras+1)},
			expectedErr: NewValidationErr("at most 6 LoRAs are allowed"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expectedErr, tt.params.Validate())
		})
	}
}

func TestImageParams_ActiveLoras(t *testing.T) {
	p := ImageParams{Loras: []LoraWeight{
		{Repo: " user/a ", Weight: 0.6},
		{Repo: "", Weight: 0.2},
		{Repo: "user/b", Weight: 0.4},
	}}
	assert.Equal(t, []LoraWeight{{Repo: "user/a", Weight: 0.6}, {Repo: "user/b", Weight: 0.4}}, p.ActiveLoras())
	assert.Nil(t, ImageParams{}.ActiveLoras())
}

func TestParseImageSize(t *testing.T) {
	w, h, err := ParseImageSize("928x1664")
	require.NoError(t, err)
	assert.Equal(t, 928, w)
	assert.Equal(t, 1664, h)

	for _, bad := range []string{"", "x", "0x10", "10x-1", "10*10", "axb"} {
		_, _, err := ParseImageSize(bad)
		assert.Error(t, err, bad)
	}
}

func TestImageTaskStatus_IsTerminal(t *testing.T) {
	assert.False(t, ImageTaskStatus_Running.IsTerminal())
	assert.True(t, ImageTaskStatus_Succeeded.IsTerminal())
	assert.True(t, ImageTaskStatus_Failed.IsTerminal())
}

func TestNewGeneratedImageRecord(t *testing.T) {
	sessionID := uuid.New()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	params := ImageParams{Model: "Qwen/Qwen-Image", Prompt: "fox"}

	rec, err := NewGeneratedImageRecord(sessionID, ImageJob{
		ID:         "job-1",
		Status:     ImageTaskStatus_Succeeded,
		ResultURLs: []string{"https://img/1.png", "https://img/2.png"},
	}, params, now)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, rec.ID)
	assert.Equal(t, GeneratedImageRecord{
		ID:        rec.ID,
		SessionID: sessionID,
		URL:       "https://img/1.png",
		Prompt:    "fox",
		Model:     "Qwen/Qwen-Image",
		Size:      DefaultImageSize,
		CreatedAt: now,
	}, rec)

	_, err = NewGeneratedImageRecord(sessionID, ImageJob{ID: "job-2", Status: ImageTaskStatus_Running}, params, now)
	assert.Equal(t, NewValidationErr("image job job-2 has not succeeded"), err)

	_, err = NewGeneratedImageRecord(sessionID, ImageJob{ID: "job-3", Status: ImageTaskStatus_Succeeded}, params, now)
	assert.Equal(t, NewProtocolViolationErr("image job job-3 succeeded without output images"), err)
}
