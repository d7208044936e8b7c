package health

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-health/internal/domain/model"
)

func TestEvaluator_Success(t *testing.T) {
	evaluator := NewEvaluator(time.Second)

	check := CheckFunc(func(_ context.Context) model.CheckResult {
		return model.UpResult(map[string]any{"addr": "localhost"})
	})

	result := evaluator.Evaluate(context.Background(), "db", check)
	if result.Status != model.StatusUp {
		t.Errorf("status = %s, want UP", result.Status)
	}
	if result.Name != "db" {
		t.Errorf("name = %q, want db", result.Name)
	}
	if result.Timestamp.IsZero() {
		t.Error("timestamp not stamped")
	}
	if result.Details["addr"] != "localhost" {
		t.Errorf("details lost: %v", result.Details)
	}
}

func TestEvaluator_CheckErrorFoldsToResult(t *testing.T) {
	evaluator := NewEvaluator(time.Second)
	cause := errors.New("dial tcp: connection refused")

	check := CheckFunc(func(_ context.Context) model.CheckResult {
		return model.DownResult(cause, nil)
	})

	result := evaluator.Evaluate(context.Background(), "db", check)
	if result.Status != model.StatusDown {
		t.Errorf("status = %s, want DOWN", result.Status)
	}
	if !errors.Is(result.Err, cause) {
		t.Errorf("error not carried: %v", result.Err)
	}
}

func TestEvaluator_PanicBecomesDown(t *testing.T) {
	evaluator := NewEvaluator(time.Second)

	check := CheckFunc(func(_ context.Context) model.CheckResult {
		panic("boom")
	})

	result := evaluator.Evaluate(context.Background(), "flaky", check)
	if result.Status != model.StatusDown {
		t.Errorf("status = %s, want DOWN", result.Status)
	}
	if !errors.Is(result.Err, ErrCheckPanic) {
		t.Errorf("expected ErrCheckPanic marker, got %v", result.Err)
	}
}

func TestEvaluator_TimeoutBecomesDown(t *testing.T) {
	evaluator := NewEvaluator(50 * time.Millisecond)

	check := CheckFunc(func(_ context.Context) model.CheckResult {
		time.Sleep(2 * time.Second)
		return model.UpResult(nil)
	})

	start := time.Now()
	result := evaluator.Evaluate(context.Background(), "slow", check)
	elapsed := time.Since(start)

	if result.Status != model.StatusDown {
		t.Errorf("status = %s, want DOWN", result.Status)
	}
	if !errors.Is(result.Err, ErrEvaluationTimeout) {
		t.Errorf("expected ErrEvaluationTimeout marker, got %v", result.Err)
	}
	if elapsed > time.Second {
		t.Errorf("evaluator blocked %s past its 50ms timeout", elapsed)
	}
}

func TestEvaluator_CancelledContext(t *testing.T) {
	evaluator := NewEvaluator(time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	check := CheckFunc(func(ctx context.Context) model.CheckResult {
		<-ctx.Done()
		return model.DownResult(ctx.Err(), nil)
	})

	result := evaluator.Evaluate(ctx, "dep", check)
	if result.Status != model.StatusDown {
		t.Errorf("status = %s, want DOWN", result.Status)
	}
}

func TestEvaluator_DefaultTimeout(t *testing.T) {
	if got := NewEvaluator(0).Timeout(); got != DefaultCheckTimeout {
		t.Errorf("timeout = %s, want default %s", got, DefaultCheckTimeout)
	}
	if got := NewEvaluator(time.Minute).Timeout(); got != time.Minute {
		t.Errorf("timeout = %s, want 1m", got)
	}
}
