package embedding

import (
	"testing"
	"time"

	"github.com/embedforge/embedkit/v1/capability"
)

func TestDerivePolicyFixedModes(t *testing.T) {
	tests := []struct {
		mode    PerformanceMode
		timeout time.Duration
		retries int
	}{
		{ModeGPU, 10 * time.Second, 2},
		{ModeCPU, 60 * time.Second, 3},
		{ModeAuto, 30 * time.Second, 2},
		{"", 30 * time.Second, 2}, // unset defaults to auto
	}
	for _, tt := range tests {
		p := derivePolicy(Options{PerformanceMode: tt.mode})
		if p.Timeout != tt.timeout {
			t.Errorf("mode %q: expected timeout %v, got %v", tt.mode, tt.timeout, p.Timeout)
		}
		if p.MaxRetries != tt.retries {
			t.Errorf("mode %q: expected %d retries, got %d", tt.mode, tt.retries, p.MaxRetries)
		}
	}
}

func TestDerivePolicyCustom(t *testing.T) {
	retries := 5
	p := derivePolicy(Options{
		PerformanceMode:  ModeCustom,
		CustomTimeout:    7 * time.Second,
		CustomMaxRetries: &retries,
	})
	if p.Timeout != 7*time.Second || p.MaxRetries != 5 {
		t.Fatalf("unexpected custom policy: %+v", p)
	}
}

func TestDerivePolicyCustomDefaults(t *testing.T) {
	p := derivePolicy(Options{PerformanceMode: ModeCustom})
	if p.Timeout != 30*time.Second || p.MaxRetries != 2 {
		t.Fatalf("expected 30s/2 fallback, got %+v", p)
	}
}

func TestDerivePolicyCustomZeroRetries(t *testing.T) {
	zero := 0
	p := derivePolicy(Options{PerformanceMode: ModeCustom, CustomMaxRetries: &zero})
	if p.MaxRetries != 0 {
		t.Fatalf("explicit zero retries must be honored, got %d", p.MaxRetries)
	}
}

func TestAdaptedSwitchesToGPUProfile(t *testing.T) {
	p := derivePolicy(Options{PerformanceMode: ModeAuto})
	th := Thresholds{GPU: 150 * time.Millisecond, CPU: time.Second}

	next := p.adapted(40*time.Millisecond, th)
	if next.Timeout != gpuTimeout || next.MaxRetries != gpuMaxRetries {
		t.Fatalf("expected gpu profile, got %+v", next)
	}
	if next.Mode != ModeAuto {
		t.Errorf("mode must be preserved, got %q", next.Mode)
	}
}

func TestAdaptedSwitchesToCPUProfile(t *testing.T) {
	p := derivePolicy(Options{PerformanceMode: ModeAuto})
	th := Thresholds{GPU: 150 * time.Millisecond, CPU: time.Second}

	next := p.adapted(3*time.Second, th)
	if next.Timeout != cpuTimeout || next.MaxRetries != cpuMaxRetries {
		t.Fatalf("expected cpu profile, got %+v", next)
	}
}

func TestAdaptedKeepsDefaultInBetween(t *testing.T) {
	p := derivePolicy(Options{PerformanceMode: ModeAuto})
	th := Thresholds{GPU: 150 * time.Millisecond, CPU: time.Second}

	next := p.adapted(500*time.Millisecond, th)
	if next != p {
		t.Fatalf("expected unchanged policy, got %+v", next)
	}
}

func TestAdaptedNoopForFixedModes(t *testing.T) {
	th := Thresholds{GPU: time.Second, CPU: 5 * time.Second}
	for _, mode := range []PerformanceMode{ModeGPU, ModeCPU, ModeCustom} {
		p := derivePolicy(Options{PerformanceMode: mode})
		if next := p.adapted(time.Millisecond, th); next != p {
			t.Errorf("mode %q: fixed policy must not adapt, got %+v", mode, next)
		}
	}
}

func TestThresholdsForFallsBackConservative(t *testing.T) {
	th := thresholdsFor(defaultThresholds, capability.FamilyGeneric)
	if th != conservativeThresholds {
		t.Fatalf("expected conservative thresholds for unknown family, got %+v", th)
	}
}

func TestDefaultThresholdsOrdering(t *testing.T) {
	// The exact numbers are tuning parameters; what matters is that every
	// entry keeps GPU below CPU and that known fast families sit below the
	// conservative fallback.
	for family, th := range defaultThresholds {
		if th.GPU >= th.CPU {
			t.Errorf("%s: GPU threshold %v not below CPU threshold %v", family, th.GPU, th.CPU)
		}
		if th.CPU > conservativeThresholds.CPU {
			t.Errorf("%s: CPU threshold above conservative fallback", family)
		}
	}
}
