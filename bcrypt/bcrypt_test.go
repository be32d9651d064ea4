package bcrypt_test

import (
	"testing"

	"github.com/eksblf/ekscrypt/bcrypt"
)

func testSalt() bcrypt.Salt {
	return bcrypt.SaltFromBytes([bcrypt.SaltSize]byte{
		0x14, 0x4b, 0x3d, 0x69, 0x1a, 0x7b, 0x4e, 0xcf,
		0x39, 0xcf, 0x73, 0x5c, 0x7f, 0xa7, 0xa7, 0x9c,
	})
}

func testWorkFactor(t *testing.T) bcrypt.WorkFactor {
	t.Helper()
	wf, ok := bcrypt.Exp(4)
	if !ok {
		t.Fatal("Exp(4) unexpectedly rejected")
	}
	return wf
}

func TestHashRejectsOverlongKey(t *testing.T) {
	key := make([]byte, bcrypt.KeySizeMax+1)
	for i := range key {
		key[i] = 1
	}

	_, err := bcrypt.Hash(key, testSalt(), testWorkFactor(t))
	if err != bcrypt.ErrLength {
		t.Fatalf("Hash with 73-byte key: err = %v, want ErrLength", err)
	}
}

func TestHashAcceptsMaxLengthKey(t *testing.T) {
	key := make([]byte, bcrypt.KeySizeMax)
	for i := range key {
		key[i] = 1
	}

	if _, err := bcrypt.Hash(key, testSalt(), testWorkFactor(t)); err != nil {
		t.Fatalf("Hash with 72-byte key: unexpected error %v", err)
	}
}

func TestHashRejectsZeroByte(t *testing.T) {
	_, err := bcrypt.Hash([]byte("f\x00o"), testSalt(), testWorkFactor(t))
	if err != bcrypt.ErrZeroByte {
		t.Fatalf("Hash with embedded NUL: err = %v, want ErrZeroByte", err)
	}
}

func TestHashLengthCheckedBeforeZeroByte(t *testing.T) {
	// A key that is both too long and contains a zero byte must report
	// Length: the length check runs before the zero-byte scan.
	key := make([]byte, bcrypt.KeySizeMax+1)
	for i := range key {
		key[i] = 1
	}
	key[0] = 0

	_, err := bcrypt.Hash(key, testSalt(), testWorkFactor(t))
	if err != bcrypt.ErrLength {
		t.Fatalf("Hash with overlong+zero-byte key: err = %v, want ErrLength", err)
	}
}

func TestHashAcceptsEmptyKey(t *testing.T) {
	if _, err := bcrypt.Hash(nil, testSalt(), testWorkFactor(t)); err != nil {
		t.Fatalf("Hash with empty key: unexpected error %v", err)
	}
}

func TestHashIsDeterministic(t *testing.T) {
	key := []byte("correct horse battery staple")
	salt := testSalt()
	wf := testWorkFactor(t)

	a, err := bcrypt.Hash(key, salt, wf)
	if err != nil {
		t.Fatalf("first Hash call failed: %v", err)
	}
	b, err := bcrypt.Hash(key, salt, wf)
	if err != nil {
		t.Fatalf("second Hash call failed: %v", err)
	}

	if a != b {
		t.Fatalf("Hash is not deterministic: %x != %x", a, b)
	}
}

func TestHashDiffersBySalt(t *testing.T) {
	key := []byte("correct horse battery staple")
	wf := testWorkFactor(t)

	a, err := bcrypt.Hash(key, testSalt(), wf)
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}

	otherSalt := bcrypt.SaltFromBytes([bcrypt.SaltSize]byte{
		0x7a, 0xe8, 0x8b, 0xdc, 0xc7, 0xa9, 0xa8, 0xf3,
		0x5c, 0xe4, 0x9b, 0x5c, 0x50, 0x8c, 0xf4, 0xa4,
	})
	b, err := bcrypt.Hash(key, otherSalt, wf)
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}

	if a == b {
		t.Fatal("Hash produced identical output for two different salts")
	}
}

func TestHashDiffersByCost(t *testing.T) {
	key := []byte("correct horse battery staple")
	salt := testSalt()

	low, _ := bcrypt.Exp(4)
	high, _ := bcrypt.Exp(5)

	a, err := bcrypt.Hash(key, salt, low)
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	b, err := bcrypt.Hash(key, salt, high)
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}

	if a == b {
		t.Fatal("Hash produced identical output for two different work factors")
	}
}
