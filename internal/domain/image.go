package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// MaxLoras is the maximum number of LoRA adapters per request.
	MaxLoras = 6
	// LoraWeightTolerance is the accepted distance of the weight sum from 1.0,
	// inclusive. Sums of 0.97 and 1.03 pass, 0.95 does not.
	LoraWeightTolerance = 0.03
	// DefaultImageSize is used when a request names no size.
	DefaultImageSize = "1024x1024"
)

// ImageTaskStatus is the lifecycle status of a remote image job.
type ImageTaskStatus string

const (
	ImageTaskStatus_Running   ImageTaskStatus = "running"
	ImageTaskStatus_Succeeded ImageTaskStatus = "succeeded"
	ImageTaskStatus_Failed    ImageTaskStatus = "failed"
)

// IsTerminal reports whether no further transition can occur.
func (s ImageTaskStatus) IsTerminal() bool {
	return s == ImageTaskStatus_Succeeded || s == ImageTaskStatus_Failed
}

// ImageJob is an asynchronous image generation job tracked by id.
// ResultURLs stays empty until the job succeeded.
type ImageJob struct {
	ID         string
	Status     ImageTaskStatus
	ResultURLs []string
}

// LoraWeight is one LoRA adapter repository with its blend weight in [0,1].
type LoraWeight struct {
	Repo   string
	Weight float64
}

// ImageParams are the caller-facing parameters of an image generation request.
type ImageParams struct {
	Model          string
	Prompt         string
	NegativePrompt string
	Size           string
	Steps          *int
	Guidance       *float64
	Seed           *int64
	Loras          []LoraWeight
}

// Validate checks the prompt, size and LoRA list. The weight sum is checked
// separately by ValidateLoraWeights because it is a client-side precondition.
func (p ImageParams) Validate() error {
	if strings.TrimSpace(p.Prompt) == "" {
		return NewValidationErr("prompt cannot be empty")
	}
	if p.Size != "" {
		if _, _, err := ParseImageSize(p.Size); err != nil {
			return err
		}
	}
	if p.Steps != nil && *p.Steps <= 0 {
		return NewValidationErr("steps must be greater than 0")
	}
	if len(p.Loras) > MaxLoras {
		return NewValidationErr(fmt.Sprintf("at most %d LoRAs are allowed", MaxLoras))
	}
	for _, l := range p.Loras {
		if l.Weight < 0 || l.Weight > 1 {
			return NewValidationErr(fmt.Sprintf("LoRA %s weight must be within [0,1]", l.Repo))
		}
	}
	return nil
}

// ActiveLoras returns the adapters with a non-blank repository, trimmed.
func (p ImageParams) ActiveLoras() []LoraWeight {
	var active []LoraWeight
	for _, l := range p.Loras {
		repo := strings.TrimSpace(l.Repo)
		if repo == "" {
			continue
		}
		active = append(active, LoraWeight{Repo: repo, Weight: l.Weight})
	}
	return active
}

// LoraWeightsValid reports whether the weights sum to 1.0 within LoraWeightTolerance.
// An empty list is valid.
func LoraWeightsValid(loras []LoraWeight) bool {
	if len(loras) == 0 {
		return true
	}
	var total float64
	for _, l := range loras {
		total += l.Weight
	}
	// rounded to absorb float noise at the tolerance boundary
	diff := math.Round(math.Abs(total-1.0)*1e9) / 1e9
	return diff <= LoraWeightTolerance
}

// ValidateLoraWeights returns a ValidationErr when LoraWeightsValid fails.
func ValidateLoraWeights(loras []LoraWeight) error {
	if !LoraWeightsValid(loras) {
		return NewValidationErr("total LoRA weight must be 1.0")
	}
	return nil
}

// EqualLoraWeights splits 1.0 into count weights rounded to two decimals;
// the last weight absorbs the rounding remainder.
func EqualLoraWeights(count int) []float64 {
	if count <= 0 {
		return nil
	}
	avg := round2(1.0 / float64(count))
	weights := make([]float64, count)
	for i := range weights {
		weights[i] = avg
	}
	weights[count-1] = round2(1.0 - avg*float64(count-1))
	return weights
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ParseImageSize parses a WIDTHxHEIGHT size.
func ParseImageSize(size string) (int, int, error) {
	w, h, ok := strings.Cut(size, "x")
	if !ok {
		return 0, 0, NewValidationErr(fmt.Sprintf("invalid image size %q", size))
	}
	width, errW := strconv.Atoi(w)
	height, errH := strconv.Atoi(h)
	if errW != nil || errH != nil || width <= 0 || height <= 0 {
		return 0, 0, NewValidationErr(fmt.Sprintf("invalid image size %q", size))
	}
	return width, height, nil
}

// GeneratedImageRecord is a finished image kept in a session gallery.
type GeneratedImageRecord struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	URL       string
	Prompt    string
	Model     string
	Size      string
	CreatedAt time.Time
}

// NewGeneratedImageRecord builds the gallery record for a succeeded job.
// Only the first result URL is kept.
func NewGeneratedImageRecord(sessionID uuid.UUID, job ImageJob, params ImageParams, now time.Time) (GeneratedImageRecord, error) {
	if job.Status != ImageTaskStatus_Succeeded {
		return GeneratedImageRecord{}, NewValidationErr(fmt.Sprintf("image job %s has not succeeded", job.ID))
	}
	if len(job.ResultURLs) == 0 {
		return GeneratedImageRecord{}, NewProtocolViolationErr(fmt.Sprintf("image job %s succeeded without output images", job.ID))
	}
	size := params.Size
	if size == "" {
		size = DefaultImageSize
	}
	return GeneratedImageRecord{
		ID:        uuid.New(),
		SessionID: sessionID,
		URL:       job.ResultURLs[0],
		Prompt:    params.Prompt,
		Model:     params.Model,
		Size:      size,
		CreatedAt: now,
	}, nil
}
