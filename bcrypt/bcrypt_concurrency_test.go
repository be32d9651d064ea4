package bcrypt_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/eksblf/ekscrypt/bcrypt"
)

// TestHashConcurrentCallsDoNotInterfere runs Hash from many goroutines over
// disjoint key/salt pairs and checks every call reproduces its
// single-threaded result, demonstrating that bcrypt.Hash holds no shared
// mutable state across calls (each call owns its own blowfish.State).
func TestHashConcurrentCallsDoNotInterfere(t *testing.T) {
	wf := testWorkFactor(t)

	const n = 32
	keys := make([][]byte, n)
	salts := make([]bcrypt.Salt, n)
	want := make([][bcrypt.HashSize]byte, n)

	for i := 0; i < n; i++ {
		keys[i] = []byte(fmt.Sprintf("key-%d", i))

		var b [bcrypt.SaltSize]byte
		for j := range b {
			b[j] = byte(i*7 + j)
		}
		salts[i] = bcrypt.SaltFromBytes(b)

		h, err := bcrypt.Hash(keys[i], salts[i], wf)
		if err != nil {
			t.Fatalf("baseline Hash(%d) failed: %v", i, err)
		}
		want[i] = h
	}

	var wg sync.WaitGroup
	errs := make([]error, n)
	got := make([][bcrypt.HashSize]byte, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			h, err := bcrypt.Hash(keys[i], salts[i], wf)
			got[i], errs[i] = h, err
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		if errs[i] != nil {
			t.Errorf("concurrent Hash(%d) failed: %v", i, errs[i])
			continue
		}
		if got[i] != want[i] {
			t.Errorf("concurrent Hash(%d) = %x, want %x", i, got[i], want[i])
		}
	}
}
