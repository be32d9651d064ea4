package bcrypt_test

import (
	"testing"

	"github.com/eksblf/ekscrypt/bcrypt"
)

func TestWorkFactorBoundaries(t *testing.T) {
	if _, ok := bcrypt.Exp(3); ok {
		t.Error("Exp(3) should be rejected, cost must be >= 4")
	}
	if _, ok := bcrypt.Exp(32); ok {
		t.Error("Exp(32) should be rejected, cost must be <= 31")
	}

	wf, ok := bcrypt.Exp(4)
	if !ok || wf.LogRounds() != 4 {
		t.Errorf("Exp(4) = (%v, %v), want log_rounds 4", wf, ok)
	}

	wf, ok = bcrypt.Exp(31)
	if !ok || wf.LinearRounds() != 2147483648 {
		t.Errorf("Exp(31).LinearRounds() = %d, want 2147483648", wf.LinearRounds())
	}
}

func TestWorkFactorLinearRoundsIsPowerOfTwo(t *testing.T) {
	for cost := uint32(4); cost <= 31; cost++ {
		wf, ok := bcrypt.Exp(cost)
		if !ok {
			t.Fatalf("Exp(%d) unexpectedly rejected", cost)
		}
		if want := uint32(1) << cost; wf.LinearRounds() != want {
			t.Errorf("Exp(%d).LinearRounds() = %d, want %d", cost, wf.LinearRounds(), want)
		}
	}
}
