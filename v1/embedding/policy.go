package embedding

import (
	"time"

	"github.com/embedforge/embedkit/v1/capability"
)

// Fixed policy profiles per performance mode.
const (
	gpuTimeout    = 10 * time.Second
	gpuMaxRetries = 2

	cpuTimeout    = 60 * time.Second
	cpuMaxRetries = 3

	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 2
)

// RequestPolicy is the timeout/retry budget applied to backend calls.
// A policy value is created fresh for every batch invocation and is owned
// exclusively by that batch: adaptive adjustment replaces the batch's copy
// and is never written back to anything that outlives the batch.
type RequestPolicy struct {
	// Timeout bounds each individual backend call.
	Timeout time.Duration

	// MaxRetries is the number of retries after the initial attempt for
	// transient failures.
	MaxRetries int

	// Mode is the performance mode the policy was derived from.
	Mode PerformanceMode
}

// derivePolicy builds the initial policy for a batch from the options.
func derivePolicy(opts Options) RequestPolicy {
	switch opts.PerformanceMode {
	case ModeGPU:
		return RequestPolicy{Timeout: gpuTimeout, MaxRetries: gpuMaxRetries, Mode: ModeGPU}
	case ModeCPU:
		return RequestPolicy{Timeout: cpuTimeout, MaxRetries: cpuMaxRetries, Mode: ModeCPU}
	case ModeCustom:
		timeout := opts.CustomTimeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		retries := defaultMaxRetries
		if opts.CustomMaxRetries != nil {
			retries = *opts.CustomMaxRetries
		}
		return RequestPolicy{Timeout: timeout, MaxRetries: retries, Mode: ModeCustom}
	default:
		return RequestPolicy{Timeout: defaultTimeout, MaxRetries: defaultMaxRetries, Mode: ModeAuto}
	}
}

// Thresholds are the latency cutoffs used by ModeAuto to infer backend
// hardware from the first successful call of a batch. Latency below GPU
// switches the batch to the GPU profile; latency above CPU switches to the
// CPU profile; anything between keeps the initial policy.
//
// The numbers are tuning parameters, not correctness requirements: they were
// chosen from rough observations per model family and can be overridden per
// client via WithThresholds.
type Thresholds struct {
	GPU time.Duration
	CPU time.Duration
}

// defaultThresholds maps model families to their latency cutoffs.
// Small fast families get tight cutoffs; unknown families get conservative
// ones so that auto-detection errs toward the CPU profile.
var defaultThresholds = map[capability.Family]Thresholds{
	capability.FamilyGemma:  {GPU: 80 * time.Millisecond, CPU: 300 * time.Millisecond},
	capability.FamilyNomic:  {GPU: 100 * time.Millisecond, CPU: 500 * time.Millisecond},
	capability.FamilyMiniLM: {GPU: 100 * time.Millisecond, CPU: 500 * time.Millisecond},
	capability.FamilyQwen:   {GPU: 150 * time.Millisecond, CPU: time.Second},
	capability.FamilyArctic: {GPU: 150 * time.Millisecond, CPU: time.Second},
	capability.FamilyMxbai:  {GPU: 150 * time.Millisecond, CPU: time.Second},
	capability.FamilyBGE:    {GPU: 150 * time.Millisecond, CPU: time.Second},
}

// conservativeThresholds is the fallback for families without an entry.
var conservativeThresholds = Thresholds{GPU: time.Second, CPU: 5 * time.Second}

// thresholdsFor returns the cutoffs for a family from the given table,
// falling back to the conservative defaults.
func thresholdsFor(table map[capability.Family]Thresholds, family capability.Family) Thresholds {
	if th, ok := table[family]; ok {
		return th
	}
	return conservativeThresholds
}

// adapted returns the policy to apply to the remaining requests of a batch
// after observing the latency of its first successful call. Only ModeAuto
// policies adapt; every other mode returns the receiver unchanged.
//
// The returned value replaces the batch's own policy copy. It must never be
// stored on the client or any other long-lived object.
func (p RequestPolicy) adapted(latency time.Duration, th Thresholds) RequestPolicy {
	if p.Mode != ModeAuto {
		return p
	}
	switch {
	case latency < th.GPU:
		return RequestPolicy{Timeout: gpuTimeout, MaxRetries: gpuMaxRetries, Mode: p.Mode}
	case latency > th.CPU:
		return RequestPolicy{Timeout: cpuTimeout, MaxRetries: cpuMaxRetries, Mode: p.Mode}
	default:
		return p
	}
}
